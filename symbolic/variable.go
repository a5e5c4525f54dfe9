package symbolic

import (
	"fmt"

	"github.com/au-prob/gamut/utils"
)

// Variable is a named leaf expression with a declared sort. The index
// variable of an extraction is always a variable.
type Variable struct {
	name string
	sort Sort
}

// Var creates a variable of the given sort.
func Var(name string, sort Sort) *Variable {
	return &Variable{name: name, sort: sort}
}

// IntVar creates an int-sorted variable.
func IntVar(name string) *Variable {
	return Var(name, IntSort)
}

// Name returns the name of the variable.
func (v *Variable) Name() string {
	return v.name
}

// Subexpressions returns the ordered direct children; variables have none.
func (v *Variable) Subexpressions() []Expression {
	return nil
}

// SyntacticEq checks for structural equality. Variables are equal when both
// name and sort agree.
func (v *Variable) SyntacticEq(o Expression) bool {
	ov, ok := o.(*Variable)
	return ok && v.name == ov.name && v.sort == ov.sort
}

// Replace substitutes the whole variable if it matches from.
func (v *Variable) Replace(from, to Expression) Expression {
	if v.SyntacticEq(from) {
		return to
	}
	return v
}

// Set fails; variables have no subexpressions.
func (v *Variable) Set(i int, e Expression) (Expression, error) {
	return nil, fmt.Errorf("set position %d out of range for variable %s", i, v)
}

// Sort returns the declared sort of the variable.
func (v *Variable) Sort() Sort {
	return v.sort
}

func (v *Variable) Hash() uint32 {
	return utils.HashCombine(hashTagVariable, uint32(v.sort), utils.HashString(v.name))
}

func (v *Variable) String() string {
	return colorize.Var(v.name)
}
