package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/au-prob/gamut/render"
	"github.com/au-prob/gamut/symbolic/interval"
	"github.com/spf13/cobra"
)

var flagDotOut string

// splitCmd builds and prints the case-split tree of a constraint.
var splitCmd = &cobra.Command{
	Use:   "split CONSTRAINT",
	Short: "Build the case-split tree of a constraint",
	Long: `Split builds a decision tree over the conditions that cannot fold
into a single interval; every leaf holds the interval of its path.

Examples:
  gamut split "x >= 0 && (x >= 10 || x <= 5)"
  gamut split "x >= 10 || x <= 5" --dot tree.svg`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func init() {
	splitCmd.Flags().StringVar(&flagDotOut, "dot", "",
		"write the tree to this path; .dot keeps source, other extensions render")
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	index, e, err := parseConstraint(args[0])
	if err != nil {
		return err
	}
	tree, err := interval.BuildSplitTree(index, e)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), tree)

	if flagDotOut == "" {
		return nil
	}
	g := render.SplitTreeGraph(tree)
	g.Title = args[0]
	switch format := strings.TrimPrefix(filepath.Ext(flagDotOut), "."); format {
	case "", "dot":
		return os.WriteFile(flagDotOut, g.Bytes(), 0o644)
	default:
		return render.WriteImage(flagDotOut, format, g.Bytes())
	}
}
