package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parsekit/semguard/internal/core/config"
)

const Version = "0.1.0"

var (
	configFile  string
	fixturePath string
	dbURL       string
	logLevel    string
	logFormat   string
)

var rootCmd = &cobra.Command{
	Use:   "semguard",
	Short: "semguard guard condition checker",
	Long:  `semguard canonicalizes, simplifies, and evaluates the semantic and precedence guard conditions an adaptive parser attaches to grammar alternatives.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&fixturePath, "fixture", "", "recognizer fixture file (YAML)")
	rootCmd.PersistentFlags().StringVar(&dbURL, "db-url", "", "trace store URL (sqlite://path or postgres://...)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (json, text)")
}

func Execute() error {
	return rootCmd.Execute()
}

// loadCheckerConfig applies flag overrides on top of the viper chain.
// Flags beat environment and file values only when explicitly set.
func loadCheckerConfig(cmd *cobra.Command) (*config.CheckerConfig, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("fixture") {
		cfg.FixturePath = fixturePath
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DBURL = dbURL
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = logFormat
	}

	return cfg, nil
}
