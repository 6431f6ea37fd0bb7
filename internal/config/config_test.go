package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "student_portal", cfg.Database.DBName)
	assert.Equal(t, "http://localhost:3000", cfg.CORS.Origin)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Empty(t, cfg.Seed.AdminPassword)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: "8080"
  mode: production
database:
  dbname: mentoring
logging:
  format: text
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Mode)
	assert.Equal(t, "mentoring", cfg.Database.DBName)
	assert.Equal(t, "text", cfg.Logging.Format)
	// Untouched keys keep their defaults.
	assert.Equal(t, "localhost", cfg.Database.Host)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"8080\"\n"), 0o600))

	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SEED_ADMIN_PASSWORD", "s3cret")
	t.Setenv("CORS_ORIGIN", "https://mentoring.example.edu")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "s3cret", cfg.Seed.AdminPassword)
	assert.Equal(t, "https://mentoring.example.edu", cfg.CORS.Origin)
}

func TestLoadConfig_RejectsInvalidEmailPattern(t *testing.T) {
	t.Setenv("VALIDATION_EMAIL_PATTERN", "([")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	cfg.Database.User = "app"
	cfg.Database.Password = "pw"
	cfg.Database.Host = "db"
	cfg.Database.Port = "5432"
	cfg.Database.DBName = "mentoring"

	assert.Equal(t, "postgres://app:pw@db:5432/mentoring?sslmode=disable", cfg.GetPostgresConnectionString())
}
