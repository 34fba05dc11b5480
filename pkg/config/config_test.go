package config_test

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	. "github.com/pseudomuto/sqlddl/pkg/config"
	"github.com/pseudomuto/sqlddl/pkg/consts"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/sqlddl.yaml
var testConfigYAML string

func TestLoadConfig(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader(testConfigYAML))
		require.NoError(t, err)
		validateTestConfig(t, config)
	})

	t.Run("error", func(t *testing.T) {
		// Invalid YAML
		config, err := LoadConfig(strings.NewReader("invalid: yaml: ["))
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "failed to unmarshal project config")

		// Empty input
		config, err = LoadConfig(strings.NewReader(""))
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "failed to unmarshal project config")
	})

	t.Run("sets defaults when fields missing", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader("no_dump: true"))
		require.NoError(t, err)
		require.Equal(t, consts.DefaultTargetDir, config.Target)
		require.Equal(t, consts.DefaultOutputMode, config.OutputMode)
		require.True(t, config.NoDump)
		require.False(t, config.Verbose)
	})
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		config, err := LoadConfigFile("testdata/sqlddl.yaml")
		require.NoError(t, err)
		validateTestConfig(t, config)
	})

	t.Run("missing file", func(t *testing.T) {
		config, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		require.Nil(t, config)
		require.True(t, os.IsNotExist(errors.Cause(err)))
	})
}

func validateTestConfig(t *testing.T, config *Config) {
	t.Helper()
	require.Equal(t, "build/schemas", config.Target)
	require.Equal(t, "hql", config.OutputMode)
	require.True(t, config.Verbose)
	require.False(t, config.NoDump)
}
