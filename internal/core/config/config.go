// Package config provides configuration management for the semguard CLI.
package config

import (
	"fmt"
)

// CheckerConfig holds configuration for guard expression checking.
type CheckerConfig struct {
	FixturePath string
	DBURL       string
	LogLevel    string
	LogFormat   string
	TraceLimit  int
}

// DefaultCheckerConfig returns configuration with default values.
func DefaultCheckerConfig() *CheckerConfig {
	return &CheckerConfig{
		FixturePath: "",
		DBURL:       "",
		LogLevel:    "info",
		LogFormat:   "text",
		TraceLimit:  20,
	}
}

// validateConfig checks log level/format membership and positive limits.
func validateConfig(cfg *CheckerConfig) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", cfg.LogLevel)
	}

	switch cfg.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("log_format must be json or text; got %q", cfg.LogFormat)
	}

	if cfg.TraceLimit <= 0 {
		return fmt.Errorf("trace_limit must be positive, got %d", cfg.TraceLimit)
	}

	return nil
}
