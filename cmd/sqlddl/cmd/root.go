package cmd

import (
	"context"
	"os"

	"github.com/pseudomuto/sqlddl/pkg/config"
	"github.com/pseudomuto/sqlddl/pkg/consts"
	"github.com/urfave/cli/v3"
)

var currentConfig *config.Config

// Run creates and executes the main sqlddl CLI application with the given
// version and command-line arguments. This function serves as the main entry
// point for all CLI operations and handles global configuration.
//
// The function creates a CLI application with:
//   - Global --dir flag for specifying project directory
//   - Config auto-detection based on sqlddl.yaml presence
//   - Command registration and routing
//   - Context propagation for cancellation support
//
// The application automatically looks for sqlddl.yaml in the specified
// directory. If found, it initializes the global currentConfig variable,
// whose values act as defaults for the subcommands; command-line flags
// always win.
//
// Example usage:
//
//	# Run in current directory (auto-detect config)
//	err := Run(ctx, "v1.0.0", []string{"sqlddl", "parse", "schema.sql"})
//
//	# Run in specific directory
//	err := Run(ctx, "v1.0.0", []string{"sqlddl", "--dir", "/path/to/project", "parse", "schema.sql"})
//
// Returns an error if command execution fails or if config loading
// encounters issues.
func Run(ctx context.Context, version string, args []string) error {
	app := &cli.Command{
		Name:  "sqlddl",
		Usage: "A tool for extracting schema metadata from SQL DDL files",
		Description: `sqlddl parses CREATE TABLE, ALTER TABLE, CREATE INDEX and CREATE SEQUENCE
statements across SQL dialects (ANSI, PostgreSQL, MySQL, Hive) and emits
normalized, JSON-ready schema records.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "the project directory",
				Value:       ".",
				DefaultText: "Current directory",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			projectDir := cmd.String("dir")

			// Change to project directory first
			if err := os.Chdir(projectDir); err != nil {
				return ctx, err
			}

			// Pick up project defaults when sqlddl.yaml is present
			_, err := os.Stat(consts.ConfigFile)
			if os.IsNotExist(err) {
				return ctx, nil
			}

			if err != nil {
				return ctx, err
			}

			currentConfig, err = config.LoadConfigFile(consts.ConfigFile)
			return ctx, err
		},
		Commands: []*cli.Command{
			parseCmd(),
		},
	}

	return app.Run(ctx, args)
}
