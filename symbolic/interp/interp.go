// Package interp evaluates and simplifies expressions under a context.
//
// Both operations substitute the context's variable bindings and then
// rebuild the expression bottom-up through the smart constructors, so
// every ground application folds and every unit law applies. Evaluation
// additionally demands that nothing but a single constant remains.
package interp

import (
	"fmt"

	"github.com/au-prob/gamut/symbolic"
	"github.com/au-prob/gamut/utils/hmap"
)

// NotGroundError reports an evaluation whose simplified residue is not a
// plain constant. Either a free variable survived the context's bindings,
// or an application fell outside the ground operator table, as division
// by zero does.
type NotGroundError struct {
	Expression symbolic.Expression
	Residue    symbolic.Expression
}

func (err *NotGroundError) Error() string {
	return fmt.Sprintf("%v does not evaluate to a constant: %v is not ground",
		err.Expression, err.Residue)
}

// Evaluate computes the value of e under the bindings of ctx. The result
// is the folded constant, or a NotGroundError carrying the partially
// simplified residue when folding gets stuck.
func Evaluate(e symbolic.Expression, ctx symbolic.Context) (*symbolic.Constant, error) {
	res := Simplify(e, ctx)
	if c, ok := res.(*symbolic.Constant); ok {
		if _, isOp := c.AsOp(); !isOp {
			return c, nil
		}
	}
	return nil, &NotGroundError{Expression: e, Residue: res}
}

// Simplify rewrites e under the bindings of ctx. Bound variables are
// substituted and applications are rebuilt bottom-up through the smart
// constructors, folding ground subexpressions and applying unit laws.
// Shapes the constructors cannot improve are kept as they are, so the
// rewrite is total and idempotent. Within a call, structurally shared
// subtrees are rewritten once.
func Simplify(e symbolic.Expression, ctx symbolic.Context) symbolic.Expression {
	s := simplifier{memo: hmap.NewMap[symbolic.Expression](symbolic.ExprHasher())}
	return s.rewrite(ctx.Resolve(e))
}

type simplifier struct {
	memo *hmap.Map[symbolic.Expression, symbolic.Expression]
}

func (s simplifier) rewrite(e symbolic.Expression) symbolic.Expression {
	if cached, ok := s.memo.GetOk(e); ok {
		return cached
	}
	res := s.rebuild(e)
	s.memo.Set(e, res)
	return res
}

// rebuild reconstructs an application from its rewritten arguments.
// Applications of a known operator go through Build to fold; anything
// Build rejects, such as an arity outside the operator table, keeps its
// shape. Leaves and composite non-application nodes pass through.
func (s simplifier) rebuild(e symbolic.Expression) symbolic.Expression {
	a, ok := e.(*symbolic.Application)
	if !ok {
		return e
	}
	args := a.Args()
	next := make([]symbolic.Expression, len(args))
	for i, arg := range args {
		next[i] = s.rewrite(arg)
	}
	if op, ok := a.AppliedOp(); ok {
		if built, err := symbolic.Build(op, next...); err == nil {
			return built
		}
	}
	return symbolic.NewApplication(s.rewrite(a.Fn()), next...)
}
