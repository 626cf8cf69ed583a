package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parsekit/semguard/internal/dsl"
)

var simplifyCmd = &cobra.Command{
	Use:   "simplify <expression>",
	Short: "Run the precedence pass and print the residual expression",
	Long: `Resolves every precedence predicate in the expression against the
fixture's current precedence and prints what remains: "true" when the
guard is fully satisfied, "false" when it can never pass, or the residual
expression of semantic predicates still awaiting full evaluation.`,
	Args: cobra.ExactArgs(1),
	RunE: runSimplify,
}

func init() {
	rootCmd.AddCommand(simplifyCmd)
}

func runSimplify(cmd *cobra.Command, args []string) error {
	cfg, err := loadCheckerConfig(cmd)
	if err != nil {
		return err
	}

	recognizer, err := loadFixture(cfg.FixturePath)
	if err != nil {
		return err
	}

	cond, err := dsl.Parse(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse expression: %w", err)
	}

	residual := cond.SimplifyPrecedence(recognizer, nil)
	fmt.Fprintln(cmd.OutOrStdout(), renderCondition(residual))

	return nil
}
