package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoadConfig loads configuration from file using viper.
// CLI flags > environment > config file > defaults precedence.
func LoadConfig(configPath string) (*CheckerConfig, error) {
	v := viper.New()

	// Set defaults matching DefaultCheckerConfig
	v.SetDefault("checker.fixture", "")
	v.SetDefault("checker.db_url", "")
	v.SetDefault("checker.log_level", "info")
	v.SetDefault("checker.log_format", "text")
	v.SetDefault("checker.trace_limit", 20)

	// Bind environment variables with SEMGUARD_ prefix
	v.SetEnvPrefix("SEMGUARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Load config file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &CheckerConfig{
		FixturePath: v.GetString("checker.fixture"),
		DBURL:       v.GetString("checker.db_url"),
		LogLevel:    v.GetString("checker.log_level"),
		LogFormat:   v.GetString("checker.log_format"),
		TraceLimit:  v.GetInt("checker.trace_limit"),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
