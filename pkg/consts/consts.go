package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// ConfigFile is the name of the project configuration file
	ConfigFile = "sqlddl.yaml"

	// SchemaFileSuffix is appended to the input file's base name when
	// dumping parsed schema records to disk
	SchemaFileSuffix = "_schema.json"

	// DefaultTargetDir is where schema files are written when no target
	// directory is configured
	DefaultTargetDir = "schemas"

	// DefaultOutputMode is used when no output mode is configured
	DefaultOutputMode = "sql"
)
