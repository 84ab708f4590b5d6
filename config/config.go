package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Default access-token lifetime when ACCESS_TOKEN_EXPIRE_MINUTES is
// unset.
const defaultAccessTokenTTLMinutes = 30

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration (rate limiting)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Token configuration
	JWTSecret                string
	AccessTokenExpireMinutes int

	// CORS
	AllowedOrigins []string

	// MigrationsDir is where RunMigrations looks for SQL files
	MigrationsDir string
}

// LoadConfig creates a new Config instance with values from
// environment variables, falling back to Docker-secret files for
// sensitive values.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort: getValue("SERVER_PORT", "8000"),
		ServerHost: getValue("SERVER_HOST", "0.0.0.0"),

		DBHost:     getValue("DB_HOST", "localhost"),
		DBPort:     getValue("DB_PORT", "5432"),
		DBUser:     getValue("DB_USER", ""),
		DBPassword: getValue("DB_PASSWORD", ""),
		DBName:     getValue("DB_NAME", ""),
		DBSSLMode:  getValue("DB_SSL_MODE", "disable"),

		RedisHost:     getValue("REDIS_HOST", "localhost"),
		RedisPort:     getValue("REDIS_PORT", "6379"),
		RedisPassword: getValue("REDIS_PASSWORD", ""),
		RedisDB:       0,
		RedisURL:      getValue("REDIS_URL", ""),

		JWTSecret:     getValue("JWT_SECRET", ""),
		MigrationsDir: getValue("MIGRATIONS_DIR", "migrations"),
	}

	ttl := getValue("ACCESS_TOKEN_EXPIRE_MINUTES", "")
	if ttl == "" {
		cfg.AccessTokenExpireMinutes = defaultAccessTokenTTLMinutes
	} else {
		minutes, err := strconv.Atoi(ttl)
		if err != nil || minutes < 1 {
			return nil, fmt.Errorf("invalid ACCESS_TOKEN_EXPIRE_MINUTES: %q", ttl)
		}
		cfg.AccessTokenExpireMinutes = minutes
	}

	if origins := getValue("CORS_ALLOWED_ORIGINS", "http://localhost:5173"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// getValue reads a configuration value from the environment, then from
// a Docker secret file named after the lowercased key, then falls back
// to the default.
func getValue(envVar, fallback string) string {
	if value := os.Getenv(envVar); value != "" {
		return value
	}
	if value := readSecret(strings.ToLower(envVar)); value != "" {
		return value
	}
	return fallback
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
