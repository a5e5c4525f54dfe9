package main

import (
	"fmt"

	"github.com/au-prob/gamut/symbolic/interval"
	"github.com/spf13/cobra"
)

// extractCmd folds a constraint into its dotted interval.
var extractCmd = &cobra.Command{
	Use:   "extract CONSTRAINT",
	Short: "Extract the dotted interval of a constraint",
	Long: `Extract folds the bound constraints on the index variable into a
closed interval and keeps everything else as residual dots.

Examples:
  gamut extract "x >= 2 && x < 10 && x != 5"
  gamut extract "i >= 0 && i <= n" --index i --var n:int`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	index, e, err := parseConstraint(args[0])
	if err != nil {
		return err
	}
	d, err := interval.FromConstraints(index, e)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), d)
	return nil
}
