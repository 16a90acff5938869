package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
port: "8080"
mode: release
database:
  driver: mysql
  mysql:
    host: db.internal
    username: camp
    db_name: summer
log:
  file_path: /var/log/camp.log
  max_size: 10
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, ModeRelease, c.Mode)
	assert.Equal(t, DriverMysql, c.Database.Driver)
	assert.Equal(t, "db.internal", c.Database.Mysql.Host)
	assert.Equal(t, "3306", c.Database.Mysql.Port)
	assert.Equal(t, "summer", c.Database.Mysql.DBName)
	assert.Equal(t, "/var/log/camp.log", c.Log.FilePath)
	assert.Equal(t, 10, c.Log.MaxSize)
	assert.Equal(t, 5, c.Log.MaxBackups)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "port: \"8080\"\n")
	t.Setenv("CAMP_PORT", "9090")
	t.Setenv("CAMP_DATABASE_SQLITE_PATH", ":memory:")
	t.Setenv("CAMP_LOG_MAX_AGE", "7")
	t.Setenv("CAMP_SENTRY_SAMPLE_RATE", "0.25")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, ":memory:", c.Database.Sqlite.Path)
	assert.Equal(t, 7, c.Log.MaxAge)
	assert.InDelta(t, 0.25, c.Sentry.SampleRate, 1e-9)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestGetFallsBackToDefault(t *testing.T) {
	Set(nil)
	t.Cleanup(func() { Set(nil) })
	assert.Equal(t, Default(), Get())

	custom := Default()
	custom.Prefix = "api"
	Set(custom)
	assert.Equal(t, "api", Get().Prefix)
}
