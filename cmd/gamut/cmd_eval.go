package main

import (
	"fmt"
	"strings"

	"github.com/au-prob/gamut/symbolic"
	"github.com/au-prob/gamut/symbolic/interp"
	"github.com/au-prob/gamut/symbolic/parse"
	"github.com/spf13/cobra"
)

var (
	flagBinds    []string
	flagSimplify bool
)

// evalCmd folds an expression to a constant under variable bindings.
var evalCmd = &cobra.Command{
	Use:   "eval EXPRESSION",
	Short: "Evaluate an expression under variable bindings",
	Long: `Eval resolves the bindings and folds the expression to a constant.
With --simplify the residual form prints instead, so a partially bound
expression reports what remains of it.

Examples:
  gamut eval "x*x + 1" --bind x=4
  gamut eval "x + n" --var n:int --bind x=2 --simplify`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringArrayVar(&flagBinds, "bind", nil,
		"bind a declared variable as name=value")
	evalCmd.Flags().BoolVar(&flagSimplify, "simplify", false,
		"print the simplified form instead of requiring a constant")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	_, decls, err := declarations(flagIndex, flagVars)
	if err != nil {
		return err
	}
	e, err := parse.Parse(args[0], decls...)
	if err != nil {
		return err
	}
	ctx := symbolic.TrueContext()
	for _, bind := range flagBinds {
		v, c, err := parseBinding(decls, bind)
		if err != nil {
			return err
		}
		ctx = ctx.Bind(v, c)
	}

	if flagSimplify {
		fmt.Fprintln(cmd.OutOrStdout(), interp.Simplify(e, ctx))
		return nil
	}
	val, err := interp.Evaluate(e, ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), val)
	return nil
}

// parseBinding parses a name=value binding against the declared variables.
func parseBinding(vars []*symbolic.Variable, bind string) (*symbolic.Variable, *symbolic.Constant, error) {
	name, value, ok := strings.Cut(bind, "=")
	if !ok || name == "" {
		return nil, nil, fmt.Errorf("binding %q is not of the form name=value", bind)
	}
	var v *symbolic.Variable
	for _, d := range vars {
		if d.Name() == name {
			v = d
			break
		}
	}
	if v == nil {
		return nil, nil, fmt.Errorf("binding %q: identifier %s is not declared", bind, name)
	}
	parsed, err := parse.Parse(value)
	if err != nil {
		return nil, nil, fmt.Errorf("binding %q: %w", bind, err)
	}
	c, isConst := parsed.(*symbolic.Constant)
	if !isConst {
		return nil, nil, fmt.Errorf("binding %q: %s is not a constant", bind, value)
	}
	if c.Sort() != v.Sort() {
		return nil, nil, fmt.Errorf("binding %q: value %v is not %v-sorted", bind, c, v.Sort())
	}
	return v, c, nil
}
