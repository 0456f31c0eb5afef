package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks if the configuration meets the requirements for the
// current environment. Development and test fall back to an insecure local
// JWT secret; production and CI must provide one.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.MongoURI == "" {
		errors = append(errors, "MONGO_URI is required")
	}
	if cfg.MongoDatabase == "" {
		errors = append(errors, "MONGO_DB is required")
	}
	if cfg.ServerPort == "" {
		errors = append(errors, "SERVER_PORT is required")
	}

	if cfg.JWTSecret == "" {
		switch GetEnvironment() {
		case Production, CI:
			errors = append(errors, "JWT_SECRET is required outside development")
		default:
			cfg.JWTSecret = "local-dev-secret"
		}
	}

	if cfg.TokenTTL <= 0 {
		errors = append(errors, "TOKEN_TTL must be positive")
	}
	if cfg.QueryTimeout <= 0 {
		errors = append(errors, "QUERY_TIMEOUT must be positive")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "\n"))
	}

	return nil
}
