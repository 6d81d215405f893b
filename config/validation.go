package config

import (
	"fmt"
	"strconv"
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

// ValidateConfig checks that the configuration is usable before startup.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		errors = append(errors, ValidationError{"SERVER_PORT", fmt.Sprintf("must be numeric, got %q", cfg.ServerPort)}.Error())
	}

	if cfg.RedisURL == "" {
		if cfg.RedisHost == "" {
			errors = append(errors, ValidationError{"REDIS_HOST", "must be set when REDIS_URL is empty"}.Error())
		}
		if _, err := strconv.Atoi(cfg.RedisPort); err != nil {
			errors = append(errors, ValidationError{"REDIS_PORT", fmt.Sprintf("must be numeric, got %q", cfg.RedisPort)}.Error())
		}
	}

	// Production deployments must not run against an unauthenticated store.
	if IsProduction() && cfg.RedisPassword == "" && cfg.RedisURL == "" {
		errors = append(errors, ValidationError{"REDIS_PASSWORD", "required in production"}.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
