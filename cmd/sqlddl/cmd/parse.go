package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlddl/pkg/consts"
	"github.com/pseudomuto/sqlddl/pkg/output"
	"github.com/pseudomuto/sqlddl/pkg/parser"
	"github.com/urfave/cli/v3"
)

// parseCmd returns a CLI command that parses one or more DDL files and emits
// normalized schema records. Each input file is parsed independently: a
// tokenizer error in one file aborts that file only, and malformed statements
// within a file are reported and skipped without affecting their neighbors.
//
// By default each file's records are written to <target>/<name>_schema.json.
// With --no-dump the records are printed to stdout as a single JSON document
// per file instead.
//
// Optional flags:
//   - --target, -t: Directory for schema JSON files (defaults to "schemas")
//   - --output-mode, -m: "sql" or "hql" field exposure (defaults to "sql")
//   - --no-dump: Print records to stdout instead of writing files
//   - --verbose, -v: Print a per-file summary table after parsing
//
// Example usage:
//
//	# Parse a single file into the default target directory
//	sqlddl parse schema.sql
//
//	# Expose Hive fields and write to a custom directory
//	sqlddl parse --output-mode hql --target build/schemas warehouse.hql
//
//	# Inspect records without touching the filesystem
//	sqlddl parse --no-dump schema.sql
//
// The command returns an error if any input file failed to tokenize, after
// all files have been attempted.
func parseCmd() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parse DDL files and emit normalized schema records",
		ArgsUsage: "FILE [FILE...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "target",
				Aliases: []string{"t"},
				Usage:   "directory where schema JSON files are written",
				Sources: cli.EnvVars("SQLDDL_TARGET"),
			},
			&cli.StringFlag{
				Name:    "output-mode",
				Aliases: []string{"m"},
				Usage:   "output mode (sql or hql)",
				Sources: cli.EnvVars("SQLDDL_OUTPUT_MODE"),
			},
			&cli.BoolFlag{
				Name:  "no-dump",
				Usage: "print records to stdout instead of writing schema files",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "print a per-file parse summary",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return errors.New("no input files given")
			}

			opts := parseOptions(cmd)
			mode, err := output.ParseMode(opts.outputMode)
			if err != nil {
				return err
			}

			var rows []table.Row
			var failed []string

			for _, path := range cmd.Args().Slice() {
				row, err := parseFile(cmd, path, mode, opts)
				if err != nil {
					slog.Error("Failed to parse file", "file", path, "err", err)
					failed = append(failed, path)
					continue
				}
				rows = append(rows, row)
			}

			if opts.verbose && len(rows) > 0 {
				renderSummary(cmd, rows)
			}

			if len(failed) > 0 {
				return errors.Errorf("failed to parse: %s", strings.Join(failed, ", "))
			}

			return nil
		},
	}
}

type parseOpts struct {
	target     string
	outputMode string
	noDump     bool
	verbose    bool
}

// parseOptions merges flag values over the project config. Flags always win;
// unset flags fall back to sqlddl.yaml values, then to the built-in defaults.
func parseOptions(cmd *cli.Command) parseOpts {
	opts := parseOpts{
		target:     consts.DefaultTargetDir,
		outputMode: consts.DefaultOutputMode,
	}

	if currentConfig != nil {
		opts.target = currentConfig.Target
		opts.outputMode = currentConfig.OutputMode
		opts.noDump = currentConfig.NoDump
		opts.verbose = currentConfig.Verbose
	}

	if cmd.IsSet("target") {
		opts.target = cmd.String("target")
	}
	if cmd.IsSet("output-mode") {
		opts.outputMode = cmd.String("output-mode")
	}
	if cmd.IsSet("no-dump") {
		opts.noDump = cmd.Bool("no-dump")
	}
	if cmd.IsSet("verbose") {
		opts.verbose = cmd.Bool("verbose")
	}

	return opts
}

// parseFile parses a single DDL file and writes (or prints) its records.
// It returns a summary row for the verbose table.
func parseFile(cmd *cli.Command, path string, mode output.Mode, opts parseOpts) (table.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	res, err := parser.Parse(string(data))
	if err != nil {
		return nil, err
	}

	for _, w := range res.Warnings {
		slog.Warn("Parse warning", "file", path, "statement", w.Statement, "detail", w.String())
	}
	for _, e := range res.Errors {
		slog.Warn("Skipped malformed statement", "file", path, "statement", e.Statement, "err", e.Error())
	}

	records := output.Normalize(res, mode)

	dest := "stdout"
	if opts.noDump {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode records")
		}
		fmt.Fprintln(cmd.Writer, string(data))
	} else {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		dest, err = output.Dump(opts.target, name, records)
		if err != nil {
			return nil, err
		}
		slog.Info("Wrote schema file", "file", path, "output", dest)
	}

	return table.Row{path, len(res.Statements), len(res.Warnings), len(res.Errors), dest}, nil
}

func renderSummary(cmd *cli.Command, rows []table.Row) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.Writer)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"File", "Statements", "Warnings", "Errors", "Output"})
	t.AppendRows(rows)
	t.Render()
}
