// Package cmd provides CLI commands for the sqlddl tool.
//
// This package implements the command-line interface for sqlddl, which
// extracts normalized schema records from SQL DDL files. It supports both
// standalone invocations and project-based workflows configured through
// sqlddl.yaml.
//
// # Available Commands
//
// The cmd package currently provides:
//   - parse: Parse DDL files and write schema JSON files (or print records)
//
// # Command Structure
//
// Each command is implemented as a separate function that returns a
// *cli.Command, following the urfave/cli/v3 pattern. Commands are
// designed to be composable and testable, with proper error handling
// and comprehensive help text.
//
// # Global Options
//
// All commands support global flags:
//   - --dir, -d: Specify project directory (defaults to current directory)
//   - --help, -h: Display command help
//   - --version: Display version information
//
// # Example Usage
//
//	sqlddl parse schema.sql                      # Write schema.sql -> schemas/schema_schema.json
//	sqlddl parse -m hql warehouse.hql            # Expose Hive-specific fields
//	sqlddl parse --no-dump schema.sql            # Print records to stdout instead
//	sqlddl parse -t build/schemas -v *.sql       # Custom target dir with summary table
//
// When the project directory contains a sqlddl.yaml file its settings act
// as defaults; command-line flags override them.
package cmd
