package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/parsekit/semguard/internal/core/db"
	"github.com/parsekit/semguard/internal/dsl"
	"github.com/parsekit/semguard/internal/guard"
	"github.com/parsekit/semguard/internal/stub"
	"github.com/parsekit/semguard/internal/trace"
)

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate a guard expression against a recognizer fixture",
	Args:  cobra.ExactArgs(1),
	RunE:  runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().Bool("steps", false, "print every recorded leaf test")
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := loadCheckerConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	recognizer, err := loadFixture(cfg.FixturePath)
	if err != nil {
		return err
	}

	cond, err := dsl.Parse(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse expression: %w", err)
	}

	recorder := trace.Wrap(recognizer, logger)

	outcome, err := evaluateGuard(cond, recorder)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), outcome)

	if showSteps, _ := cmd.Flags().GetBool("steps"); showSteps {
		for i, step := range recorder.Steps() {
			switch step.Kind {
			case trace.StepSemantic:
				fmt.Fprintf(cmd.OutOrStdout(), "  %d: {%d:%d}? -> %t (%s)\n",
					i, step.RuleIndex, step.PredIndex, step.Outcome, step.Elapsed)
			case trace.StepPrecedence:
				fmt.Fprintf(cmd.OutOrStdout(), "  %d: {%d>=prec}? -> %t (%s)\n",
					i, step.Precedence, step.Outcome, step.Elapsed)
			}
		}
	}

	if cfg.DBURL != "" {
		if err := persistTrace(cfg.DBURL, recorder, renderCondition(cond), outcome); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "trace: %s\n", recorder.ID())
	}

	return nil
}

// evaluateGuard runs full evaluation, converting a strict-fixture panic
// back into an ordinary error at the command boundary.
func evaluateGuard(cond guard.Condition, recognizer guard.Recognizer) (outcome bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			if recovered, ok := r.(error); ok {
				err = fmt.Errorf("evaluation failed: %w", recovered)
				return
			}
			panic(r)
		}
	}()
	return cond.Evaluate(recognizer, nil), nil
}

func loadFixture(path string) (*stub.Recognizer, error) {
	if path == "" {
		return nil, fmt.Errorf("--fixture required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	recognizer, err := stub.FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load fixture %s: %w", path, err)
	}
	return recognizer, nil
}

func persistTrace(url string, recorder *trace.Recognizer, expression string, outcome bool) error {
	database, err := db.Open(url)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	if err := db.MigrateUp(database); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	store, err := db.NewStore(database)
	if err != nil {
		return err
	}

	if err := store.SaveTrace(recorder.ID(), expression, outcome, recorder.Steps()); err != nil {
		return fmt.Errorf("failed to persist trace: %w", err)
	}

	return nil
}
