package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnv = []string{
	"ENV", "DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
	"HOST", "PORT", "SESSION_SECRET", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE", "AUTO_MIGRATE", "SEED_DEMO",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnv {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://fyyur@localhost:5432/fyyur?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:5001", cfg.Server.Addr())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.AutoMigrate)
	assert.False(t, cfg.SeedDemo)
	assert.Equal(t, devSessionSecret, cfg.Session.Secret)
	assert.False(t, cfg.IsProduction())
}

func TestLoadBuildsURLFromParts(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "fyyur")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "directory")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgresql://fyyur:secret@db:5432/directory?sslmode=disable", cfg.Database.URL)
}

func TestLoadCollectsValidationErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "verbose")
	t.Setenv("PORT", "70000")

	_, err := Load()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "DATABASE_URL is required")
	assert.Contains(t, msg, "SESSION_SECRET is required in production")
	assert.Contains(t, msg, "PORT must be between 1 and 65535")
	assert.Contains(t, msg, "LOG_LEVEL must be one of")
}

func TestLoadRejectsShortSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/fyyur")
	t.Setenv("SESSION_SECRET", "short")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 32 characters")
}

func TestLoadRejectsMalformedFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/fyyur")
	t.Setenv("AUTO_MIGRATE", "sometimes")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTO_MIGRATE")
}
