package ioconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
database:
  host: config-file-host
  port: 5433
  user: annotator
  password: secret
  database: annotations
  ssl_mode: require
log:
  format: json
  level: debug
jobs_number: 4
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(configPath, []byte(content), 0644)
	require.NoError(t, err)
	return configPath
}

func TestLoad_FromFile(t *testing.T) {
	configPath := writeTestConfig(t, testConfig)

	res, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "file", res.Source)
	assert.Equal(t, configPath, res.SourcePath)

	cfg := res.Config
	assert.Equal(t, "config-file-host", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "annotator", cfg.Database.User)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 4, cfg.JobsNumber)
}

func TestLoad_EnvVarOverride(t *testing.T) {
	configPath := writeTestConfig(t, testConfig)

	t.Setenv("EMDB_DATABASE_HOST", "env-override-host")

	res, err := Load(configPath)
	require.NoError(t, err)

	// Environment variable wins over the config file.
	assert.Equal(t, "env-override-host", res.Config.Database.Host)
	// Other values remain from the config file.
	assert.Equal(t, 5433, res.Config.Database.Port)
	assert.Equal(t, "annotator", res.Config.Database.User)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	configPath := writeTestConfig(t, "database:\n  host: only-host\n")

	res, err := Load(configPath)
	require.NoError(t, err)

	cfg := res.Config
	assert.Equal(t, "only-host", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port, "omitted keys keep defaults")
	assert.Equal(t, "annotations", cfg.Database.Database)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	configPath := writeTestConfig(t, `
database:
  host: good-host
  ssl_mode: bogus-mode
log:
  level: shouting
`)

	res, err := Load(configPath)
	require.NoError(t, err)

	cfg := res.Config
	assert.Equal(t, "good-host", cfg.Database.Host)
	// Invalid enum values fall back to defaults instead of failing.
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nope.yaml")

	_, err := Load(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_MalformedYAML(t *testing.T) {
	configPath := writeTestConfig(t, "database: [not: a: map\n")

	_, err := Load(configPath)
	require.Error(t, err)
}
