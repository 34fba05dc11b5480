// Package config loads project configuration for the sqlddl CLI from
// sqlddl.yaml files.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlddl/pkg/consts"
	"gopkg.in/yaml.v3"
)

// Config represents the project configuration for DDL extraction.
type Config struct {
	// Target specifies the directory where schema JSON files are written
	Target string `yaml:"target"`

	// OutputMode selects which dialect-specific fields the records expose.
	// One of "sql" or "hql"; defaults to "sql".
	OutputMode string `yaml:"output_mode"`

	// NoDump disables writing schema files; records go to stdout instead
	NoDump bool `yaml:"no_dump,omitempty"`

	// Verbose enables the per-file parse summary table
	Verbose bool `yaml:"verbose,omitempty"`
}

// LoadConfig parses a project configuration from the provided io.Reader.
//
// The function expects YAML-formatted configuration data. Absent fields
// fall back to their defaults: target defaults to "schemas" and
// output_mode to "sql".
//
// Example:
//
//	import (
//		"strings"
//		"github.com/pseudomuto/sqlddl/pkg/config"
//	)
//
//	yamlData := `
//	target: build/schemas
//	output_mode: hql
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("Schema target: %s\n", cfg.Target)
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal project config")
	}

	if cfg.Target == "" {
		cfg.Target = consts.DefaultTargetDir
	}
	if cfg.OutputMode == "" {
		cfg.OutputMode = consts.DefaultOutputMode
	}

	return &cfg, nil
}

// LoadConfigFile loads a project configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
//
// Example:
//
//	cfg, err := config.LoadConfigFile("sqlddl.yaml")
//	if err != nil {
//		log.Fatal("Failed to load config:", err)
//	}
//
//	fmt.Printf("Target: %s, Output mode: %s\n", cfg.Target, cfg.OutputMode)
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}
