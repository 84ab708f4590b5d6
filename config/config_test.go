package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SECRETS_DIR", t.TempDir())
	t.Setenv("DB_USER", "recipebook")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "recipebook")
	t.Setenv("JWT_SECRET", "test-jwt-secret")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.ServerPort)
	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, 30, cfg.AccessTokenExpireMinutes)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Equal(t, "migrations", cfg.MigrationsDir)
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "120")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, 120, cfg.AccessTokenExpireMinutes)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
}

func TestLoadConfigInvalidTokenTTL(t *testing.T) {
	setRequiredEnv(t)

	for _, ttl := range []string{"abc", "0", "-5"} {
		t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", ttl)
		_, err := LoadConfig()
		assert.Error(t, err, "ttl %q", ttl)
	}
}

func TestLoadConfigMissingRequired(t *testing.T) {
	t.Setenv("SECRETS_DIR", t.TempDir())
	t.Setenv("DB_USER", "")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("DB_NAME", "recipebook")
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_USER is required")
	assert.Contains(t, err.Error(), "DB_PASSWORD is required")
	assert.Contains(t, err.Error(), "JWT_SECRET is required")
}

func TestLoadConfigSecretFileFallback(t *testing.T) {
	secretsDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(secretsDir, "db_password"), []byte("from-secret-file\n"), 0o600))

	t.Setenv("SECRETS_DIR", secretsDir)
	t.Setenv("DB_USER", "recipebook")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("DB_NAME", "recipebook")
	t.Setenv("JWT_SECRET", "test-jwt-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-secret-file", cfg.DBPassword)
}

func TestEnvironmentDetection(t *testing.T) {
	t.Setenv("CI", "")

	t.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())

	t.Setenv("ENV", "test")
	assert.True(t, IsTest())

	t.Setenv("ENV", "")
	assert.Equal(t, Development, GetEnvironment())

	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())
}
