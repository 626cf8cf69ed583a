package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parsekit/semguard/internal/dsl"
	"github.com/parsekit/semguard/internal/guard"
)

var canonCmd = &cobra.Command{
	Use:   "canon <expression>",
	Short: "Print the canonical form of a guard expression",
	Args:  cobra.ExactArgs(1),
	RunE:  runCanon,
}

func init() {
	rootCmd.AddCommand(canonCmd)
	canonCmd.Flags().Bool("hash", false, "also print the structural hash")
}

func runCanon(cmd *cobra.Command, args []string) error {
	cond, err := dsl.Parse(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse expression: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderCondition(cond))

	if showHash, _ := cmd.Flags().GetBool("hash"); showHash {
		fmt.Fprintf(cmd.OutOrStdout(), "hash: %d\n", cond.Hash())
	}

	return nil
}

// renderCondition maps the two degenerate conditions to the keywords the
// expression syntax uses for them. A nil condition only arises from
// precedence simplification, never from parsing.
func renderCondition(cond guard.Condition) string {
	if cond == nil {
		return "false"
	}
	if guard.AlwaysTrue.Equals(cond) {
		return "true"
	}
	return cond.String()
}
