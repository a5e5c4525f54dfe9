package interval

import (
	"fmt"

	"github.com/au-prob/gamut/symbolic"
)

// Tagged views of constraint shapes. The extractor and the tree builder
// dispatch on these variants exhaustively instead of probing expression
// structure at every use site.
type (
	// relational is an atomic binary relation lhs ⋈ rhs. The atom field
	// keeps the original expression for verbatim preservation in dots.
	relational struct {
		op       symbolic.Op
		lhs, rhs symbolic.Expression
		atom     symbolic.Expression
	}
	// conjunction is a constraint whose children all must hold.
	conjunction struct {
		children []symbolic.Expression
	}
	// disjunction is a constraint with at least one child holding. The
	// expr field keeps the original expression; for a ⇒ b and boolean
	// ite forms the children carry the equivalent disjuncts.
	disjunction struct {
		expr     symbolic.Expression
		children []symbolic.Expression
	}
	// malformed is a connective or relation with an impossible arity.
	malformed struct {
		expr   symbolic.Expression
		reason string
	}
	// other is any constraint with no further structure to exploit.
	other struct {
		expr symbolic.Expression
	}
)

// classify assigns a constraint its shape variant. Negations of atomic
// relations are normalized into the complementary relation, so the
// extractor sees ¬(x < 5) as x ≥ 5.
func classify(e symbolic.Expression) interface{} {
	app, ok := e.(*symbolic.Application)
	if !ok {
		return other{expr: e}
	}
	op, ok := app.AppliedOp()
	if !ok {
		return other{expr: e}
	}
	args := app.Args()
	switch {
	case op.IsCompare():
		if len(args) != 2 {
			return malformed{expr: e, reason: fmt.Sprintf("comparison of arity %d", len(args))}
		}
		return relational{op: op, lhs: args[0], rhs: args[1], atom: e}

	case op == symbolic.LAND:
		if len(args) == 0 {
			return malformed{expr: e, reason: "empty conjunction"}
		}
		return conjunction{children: args}

	case op == symbolic.LOR:
		if len(args) == 0 {
			return malformed{expr: e, reason: "empty disjunction"}
		}
		return disjunction{expr: e, children: args}

	case op == symbolic.NOT:
		if len(args) != 1 {
			return malformed{expr: e, reason: fmt.Sprintf("negation of arity %d", len(args))}
		}
		if r, ok := classify(args[0]).(relational); ok {
			if neg, ok := r.op.Negated(); ok {
				return relational{op: neg, lhs: r.lhs, rhs: r.rhs, atom: e}
			}
		}
		return other{expr: e}

	case op == symbolic.IMPL:
		if len(args) != 2 {
			return malformed{expr: e, reason: fmt.Sprintf("implication of arity %d", len(args))}
		}
		return disjunction{expr: e, children: []symbolic.Expression{
			symbolic.Not(args[0]),
			args[1],
		}}

	case op == symbolic.ITE:
		if len(args) != 3 {
			return malformed{expr: e, reason: fmt.Sprintf("conditional of arity %d", len(args))}
		}
		if e.Sort() != symbolic.BoolSort {
			return other{expr: e}
		}
		return disjunction{expr: e, children: []symbolic.Expression{
			symbolic.And(args[0], args[1]),
			symbolic.And(symbolic.Not(args[0]), args[2]),
		}}
	}
	return other{expr: e}
}
