package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultFrom, cfg.From)
	assert.Equal(t, DefaultTo, cfg.To)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sqlbridge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("from: cloudberry\nto: postgres\nverbose: true\n"), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "cloudberry", cfg.From)
	assert.Equal(t, "postgres", cfg.To)
	assert.True(t, cfg.Verbose)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sqlbridge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("from: postgres\n"), 0o644))

	t.Setenv("SQLBRIDGE_FROM", "cloudberry")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "cloudberry", cfg.From)
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("SQLBRIDGE_FROM", "postgres")
	t.Setenv("SQLBRIDGE_LOG_LEVEL", "info")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("from", "", "")
	flags.String("log-level", "", "")
	require.NoError(t, flags.Parse([]string{"--from=cloudberry"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, "cloudberry", cfg.From)
	// Unchanged flags do not clobber lower-precedence sources.
	assert.Equal(t, "info", cfg.LogLevel)
}
