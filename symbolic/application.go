package symbolic

import (
	"fmt"
	"strings"

	"github.com/au-prob/gamut/utils"
)

// Application is a function application node. The function sits at
// subexpression position 0 and the arguments follow, so positional update
// can rewrite the applied function like any other child. Atomic relations
// are applications of a comparison operator to two arguments.
type Application struct {
	subs []Expression
	sort Sort
}

// NewApplication creates an application of fn to args. The shape is not
// validated against the operator's arity; consumers classify shapes
// dynamically and report malformed ones.
func NewApplication(fn Expression, args ...Expression) *Application {
	subs := make([]Expression, 0, len(args)+1)
	subs = append(subs, fn)
	subs = append(subs, args...)
	return &Application{subs: subs, sort: applicationSort(fn, args)}
}

// rebuildApplication reassembles an application from raw subexpressions,
// recomputing the sort but applying no normalization, so that structural
// rebuilds preserve shape exactly.
func rebuildApplication(subs []Expression) *Application {
	return &Application{subs: subs, sort: applicationSort(subs[0], subs[1:])}
}

// applicationSort derives the sort of an application. The semantics is:
//
//	.--------------------------------------------.
//	|      function      |        sort           |
//	|====================|=======================|
//	| comparison, logic  |  bool                 |
//	|--------------------|-----------------------|
//	| arithmetic         |  real if any operand  |
//	|                    |  is real, else int    |
//	|--------------------|-----------------------|
//	| ite                |  sort of then-arm     |
//	|--------------------|-----------------------|
//	| uninterpreted      |  unknown              |
//	 --------------------------------------------
func applicationSort(fn Expression, args []Expression) Sort {
	c, ok := fn.(*Constant)
	if !ok {
		return UnknownSort
	}
	op, ok := c.AsOp()
	if !ok {
		return UnknownSort
	}
	switch {
	case op.IsCompare() || op.IsLogical():
		return BoolSort
	case op.IsArithmetic():
		sort := IntSort
		for _, a := range args {
			switch a.Sort() {
			case IntSort:
			case RealSort:
				sort = RealSort
			default:
				return UnknownSort
			}
		}
		return sort
	case op == ITE && len(args) == 3:
		return args[1].Sort()
	}
	return UnknownSort
}

// Fn returns the applied function.
func (a *Application) Fn() Expression {
	return a.subs[0]
}

// Args returns the arguments of the application.
func (a *Application) Args() []Expression {
	return a.subs[1:]
}

// AppliedOp unpacks the applied operator, if the function position holds an
// operator constant.
func (a *Application) AppliedOp() (Op, bool) {
	if c, ok := a.subs[0].(*Constant); ok {
		return c.AsOp()
	}
	return ILLEGAL, false
}

// Subexpressions returns the ordered direct children, function first.
func (a *Application) Subexpressions() []Expression {
	return a.subs
}

// SyntacticEq checks for structural equality over all children.
func (a *Application) SyntacticEq(o Expression) bool {
	oa, ok := o.(*Application)
	if !ok || len(a.subs) != len(oa.subs) {
		return false
	}
	for i, s := range a.subs {
		if !s.SyntacticEq(oa.subs[i]) {
			return false
		}
	}
	return true
}

// Replace substitutes every subtree structurally equal to from by to.
func (a *Application) Replace(from, to Expression) Expression {
	if a.SyntacticEq(from) {
		return to
	}
	subs := make([]Expression, len(a.subs))
	for i, s := range a.subs {
		subs[i] = s.Replace(from, to)
	}
	return rebuildApplication(subs)
}

// Set replaces the i-th subexpression, position 0 being the function.
func (a *Application) Set(i int, e Expression) (Expression, error) {
	if i < 0 || i >= len(a.subs) {
		return nil, fmt.Errorf("set position %d out of range for application %s", i, a)
	}
	subs := make([]Expression, len(a.subs))
	copy(subs, a.subs)
	subs[i] = e
	return rebuildApplication(subs), nil
}

// Sort returns the sort of the application.
func (a *Application) Sort() Sort {
	return a.sort
}

func (a *Application) Hash() uint32 {
	hs := make([]uint32, 0, len(a.subs)+1)
	hs = append(hs, hashTagApplication)
	for _, s := range a.subs {
		hs = append(hs, s.Hash())
	}
	return utils.HashCombine(hs...)
}

func (a *Application) String() string {
	if op, ok := a.AppliedOp(); ok {
		switch {
		case op == NOT && len(a.subs) == 2:
			return op.String() + paren(a.subs[1])
		case (op == LAND || op == LOR) && len(a.subs) >= 3:
			strs := make([]string, len(a.subs)-1)
			for i, arg := range a.subs[1:] {
				strs[i] = paren(arg)
			}
			return strings.Join(strs, " "+op.String()+" ")
		case op == ITE && len(a.subs) == 4:
			return fmt.Sprintf("ite(%s, %s, %s)", a.subs[1], a.subs[2], a.subs[3])
		case op.Arity() == 2 && len(a.subs) == 3:
			return paren(a.subs[1]) + " " + op.String() + " " + paren(a.subs[2])
		}
	}
	strs := make([]string, len(a.subs)-1)
	for i, arg := range a.subs[1:] {
		strs[i] = arg.String()
	}
	return paren(a.subs[0]) + "(" + strings.Join(strs, ", ") + ")"
}

// paren wraps nested applications in parentheses for unambiguous printing.
func paren(e Expression) string {
	if _, ok := e.(*Application); ok {
		return "(" + e.String() + ")"
	}
	return e.String()
}
