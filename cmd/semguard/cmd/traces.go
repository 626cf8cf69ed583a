package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parsekit/semguard/internal/core/db"
)

var tracesCmd = &cobra.Command{
	Use:   "traces",
	Short: "List recent persisted evaluation traces",
	RunE:  runTraces,
}

func init() {
	rootCmd.AddCommand(tracesCmd)
	tracesCmd.Flags().Int("limit", 0, "maximum traces to list (default from config)")
}

func runTraces(cmd *cobra.Command, args []string) error {
	cfg, err := loadCheckerConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.DBURL == "" {
		return fmt.Errorf("--db-url required")
	}
	if cmd.Flags().Changed("limit") {
		limit, _ := cmd.Flags().GetInt("limit")
		cfg.TraceLimit = limit
	}

	database, err := db.Open(cfg.DBURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	store, err := db.NewStore(database)
	if err != nil {
		return err
	}

	traces, err := store.ListTraces(cfg.TraceLimit)
	if err != nil {
		return err
	}

	for _, t := range traces {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %-5t  %s\n", t.TraceID, t.CreatedAt, t.Outcome, t.Expression)
	}

	return nil
}
