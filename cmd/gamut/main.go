package main

import (
	"os"

	"github.com/au-prob/gamut/utils"
	"github.com/spf13/cobra"
)

var (
	flagIndex      string
	flagVars       []string
	flagNoColorize bool
	flagVerbose    bool
)

// rootCmd is the entry point of the gamut CLI.
var rootCmd = &cobra.Command{
	Use:   "gamut",
	Short: "Extract intervals and case splits from symbolic constraints",
	Long: `gamut turns boolean constraints over an integer index variable into
closed intervals with residual dots, case-split trees, and enumerations.

Constraints use Go expression syntax:

  gamut extract "x >= 2 && x < 10 && x != 5"
  gamut split "x >= 10 || x <= 5" --dot tree.svg
  gamut enum "x > 0 && x < 4"

Variables other than the index are declared with --var:

  gamut extract "x >= n && x <= 10" --var n:int`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.SetNoColorize(flagNoColorize)
		utils.SetVerbose(flagVerbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagIndex, "index", "x",
		"name of the index variable")
	rootCmd.PersistentFlags().StringArrayVar(&flagVars, "var", nil,
		"declare a variable as name:sort (sorts: int, real, bool)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColorize, "no-colorize", false,
		"disable colorized output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"print parsing and timing diagnostics")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
