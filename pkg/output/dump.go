package output

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlddl/pkg/consts"
)

// Dump writes records to <dir>/<name>_schema.json, creating dir as needed,
// and returns the path written. name is the source file's base name without
// extension.
func Dump(dir, name string, records []Record) (string, error) {
	if err := os.MkdirAll(dir, consts.ModeDir); err != nil {
		return "", errors.Wrapf(err, "failed to create target directory %s", dir)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to encode records")
	}

	path := filepath.Join(dir, name+consts.SchemaFileSuffix)
	if err := os.WriteFile(path, append(data, '\n'), consts.ModeFile); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", path)
	}

	return path, nil
}
