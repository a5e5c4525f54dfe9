// Package symbolic implements the small expression algebra the interval
// canonicalization is built on. Expressions are immutable trees of sorted
// constants, variables and function applications. Every structural update
// (replacement, positional set) produces a fresh value, so expressions may
// be shared freely across branches of a case split without aliasing.
package symbolic

import (
	"fmt"

	"github.com/au-prob/gamut/utils"

	"github.com/fatih/color"
)

var errPatternMatch = func(v interface{}) error {
	return fmt.Errorf("invalid pattern match: %v %T", v, v)
}

// Hash tags keep structurally similar trees of different node kinds apart.
const (
	hashTagConstant uint32 = iota + 0xa11
	hashTagVariable
	hashTagApplication
)

var colorize = struct {
	Var   func(...interface{}) string
	Const func(...interface{}) string
}{
	Var: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgYellow).SprintFunc())(is...)
	},
	Const: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgCyan).SprintFunc())(is...)
	},
}

// Expression is implemented by every node of the expression algebra,
// including the interval forms, which lets intervals compose with
// substitution and rewriting like any other expression.
type Expression interface {
	// Subexpressions returns the ordered direct children of the expression.
	Subexpressions() []Expression

	// SyntacticEq checks for structural equality. It is never semantic:
	// the variable `n` and the constant 5 are distinct even under a
	// context binding n to 5.
	SyntacticEq(Expression) bool

	// Replace substitutes every subtree structurally equal to from by to,
	// returning a fresh expression. Replacing a subtree by itself yields a
	// structurally equal expression.
	Replace(from, to Expression) Expression

	// Set replaces the i-th subexpression, returning a fresh expression.
	Set(i int, e Expression) (Expression, error)

	// Sort returns the sort of the expression.
	Sort() Sort

	// Hash returns a structural hash consistent with SyntacticEq.
	Hash() uint32

	String() string
}

type hasher struct{}

func (hasher) Hash(e Expression) uint32   { return e.Hash() }
func (hasher) Equal(a, b Expression) bool { return a.SyntacticEq(b) }

// ExprHasher is a hasher keying immutable maps and hmaps on expression
// structure.
func ExprHasher() hasher { return hasher{} }
