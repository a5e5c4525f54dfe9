package main

import (
	"fmt"

	"github.com/au-prob/gamut/symbolic/interval"
	"github.com/spf13/cobra"
)

// enumCmd lists the members of a concrete domain.
var enumCmd = &cobra.Command{
	Use:   "enum CONSTRAINT",
	Short: "Enumerate the members of a concrete domain",
	Long: `Enum extracts the dotted interval of the constraint and lists its
members, one per line. Enumeration requires ground integer bounds and no
residual dots.

Examples:
  gamut enum "x > 0 && x < 4"`,
	Args: cobra.ExactArgs(1),
	RunE: runEnum,
}

func init() {
	rootCmd.AddCommand(enumCmd)
}

func runEnum(cmd *cobra.Command, args []string) error {
	index, e, err := parseConstraint(args[0])
	if err != nil {
		return err
	}
	d, err := interval.FromConstraints(index, e)
	if err != nil {
		return err
	}
	vs, err := d.Enumerate()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for _, v := range vs {
		fmt.Fprintln(w, v)
	}
	return nil
}
