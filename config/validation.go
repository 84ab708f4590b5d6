package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks that values without sensible defaults are set.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.DBUser == "" {
		errors = append(errors, "DB_USER is required")
	}
	if cfg.DBPassword == "" {
		errors = append(errors, "DB_PASSWORD is required")
	}
	if cfg.DBName == "" {
		errors = append(errors, "DB_NAME is required")
	}
	if cfg.JWTSecret == "" {
		errors = append(errors, "JWT_SECRET is required")
	}

	if IsProduction() {
		if cfg.DBSSLMode == "" {
			errors = append(errors, "DB_SSL_MODE must be set explicitly in production")
		}
		if len(cfg.JWTSecret) < 32 {
			errors = append(errors, "JWT_SECRET must be at least 32 bytes in production")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}
	return nil
}
