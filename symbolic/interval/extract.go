package interval

import (
	"fmt"

	"github.com/au-prob/gamut/symbolic"
)

// FromConstraints folds a constraint over the index variable into a
// single dotted interval. The constraint may be a conjunction, whose
// children fold in order, or a single atom. Atomic relations mentioning
// the index on exactly one side tighten the interval bounds; everything
// else lands verbatim in the dots, in discovery order. Shape errors are
// fatal and yield no partial result.
//
// Bound tightening moves strict comparisons one unit inward, which is
// sound only over ℤ; index variables of any other sort are rejected up
// front.
func FromConstraints(index *symbolic.Variable, constraint symbolic.Expression) (DottedIntervals, error) {
	if index.Sort() != symbolic.IntSort {
		return DottedIntervals{}, &UnsupportedConstraintError{
			Constraint: constraint,
			Reason:     fmt.Sprintf("index variable %v is %v-sorted, bound tightening requires ℤ", index, index.Sort()),
		}
	}
	ext := extraction{index: index, interval: Unbounded()}
	if err := ext.fold(constraint); err != nil {
		return DottedIntervals{}, err
	}
	return NewDotted(ext.interval, ext.dots...), nil
}

// FromContext folds the assumptions of a context in assumption order.
func FromContext(index *symbolic.Variable, ctx symbolic.Context) (DottedIntervals, error) {
	return FromConstraints(index, ctx.Formula())
}

// ExtractBound probes a single atomic relation for the bound it imposes
// on the index variable. The relation must mention the index on exactly
// one side; the returned position names the bound the opposite side
// tightens, with strict comparisons already normalized to inclusive
// candidates. A *UnsupportedConstraintError reports a shape the extractor
// cannot read at all, a *UnsupportedOperatorError a well-shaped relation
// whose operator expresses no bound.
func ExtractBound(index *symbolic.Variable, atom symbolic.Expression) (Bound, symbolic.Expression, error) {
	r, ok := classify(atom).(relational)
	if !ok {
		return 0, nil, &UnsupportedConstraintError{Constraint: atom, Reason: "not an atomic relation"}
	}
	return extractBound(index, r)
}

// extractBound reads a classified relation as index ⋈ bound, mirroring
// the operator when the index sits on the right.
func extractBound(index *symbolic.Variable, r relational) (Bound, symbolic.Expression, error) {
	op, bound := r.op, r.rhs
	switch {
	case r.lhs.SyntacticEq(index):
	case r.rhs.SyntacticEq(index):
		op, bound = op.Mirrored(), r.lhs
	default:
		return 0, nil, &UnsupportedConstraintError{
			Constraint: r.atom,
			Reason:     fmt.Sprintf("index variable %v appears on neither side", index),
		}
	}
	switch op {
	case symbolic.GEQ:
		return Lower, bound, nil
	case symbolic.GTR:
		return Lower, symbolic.Add(bound, symbolic.Int(1)), nil
	case symbolic.LEQ:
		return Upper, bound, nil
	case symbolic.LSS:
		return Upper, symbolic.Sub(bound, symbolic.Int(1)), nil
	}
	return 0, nil, &UnsupportedOperatorError{Op: r.op, Constraint: r.atom}
}

// extraction accumulates the tightened interval and the residual dots
// over one constraint walk.
type extraction struct {
	index    *symbolic.Variable
	interval ClosedInterval
	dots     []symbolic.Expression
}

func (x *extraction) fold(e symbolic.Expression) error {
	switch c := classify(e).(type) {
	case conjunction:
		for _, child := range c.children {
			if err := x.fold(child); err != nil {
				return err
			}
		}
		return nil
	case relational:
		return x.foldAtom(c)
	case disjunction:
		x.dots = append(x.dots, c.expr)
		return nil
	case malformed:
		return &UnsupportedConstraintError{Constraint: c.expr, Reason: c.reason}
	case other:
		if c, ok := c.expr.(*symbolic.Constant); ok {
			if c.IsTrue() {
				return nil
			}
			if c.IsFalse() {
				x.interval = Empty()
				return nil
			}
		}
		x.dots = append(x.dots, c.expr)
		return nil
	default:
		panic(errPatternMatch(c))
	}
}

// foldAtom tightens a bound with a classified relation, or records the
// relation verbatim when it expresses no bound the interval can absorb.
func (x *extraction) foldAtom(r relational) error {
	pos, candidate, err := extractBound(x.index, r)
	switch err.(type) {
	case nil:
	case *UnsupportedOperatorError:
		x.dots = append(x.dots, r.atom)
		return nil
	default:
		return err
	}
	if !x.tighten(pos, candidate) {
		x.dots = append(x.dots, r.atom)
	}
	return nil
}

// tighten installs candidate as the bound at pos when it is at least as
// tight as the current bound, and reports whether the candidate could be
// judged against the current bound at all. The rules are:
//
//	.--------------------------------------------------------.
//	|     current vs candidate      |         verdict        |
//	|===============================|========================|
//	|  current unset                |  install               |
//	|-------------------------------|------------------------|
//	|  structurally equal           |  install (keep latest) |
//	|-------------------------------|------------------------|
//	|  both ground, cand. tighter   |  install               |
//	|-------------------------------|------------------------|
//	|  both ground, cand. equal     |  install (keep latest) |
//	|-------------------------------|------------------------|
//	|  both ground, cand. looser    |  drop (subsumed)       |
//	|-------------------------------|------------------------|
//	|  not comparable               |  unjudged              |
//	 --------------------------------------------------------
//
// An unjudged candidate must be preserved by the caller; it is never
// installed and never dropped.
func (x *extraction) tighten(pos Bound, candidate symbolic.Expression) bool {
	current := x.interval.lower
	if pos == Upper {
		current = x.interval.upper
	}
	if current == nil || current.SyntacticEq(candidate) {
		x.interval = x.interval.ReplaceBound(pos, candidate)
		return true
	}
	cand, ok1 := candidate.(*symbolic.Constant)
	cur, ok2 := current.(*symbolic.Constant)
	if !ok1 || !ok2 {
		return false
	}
	cmp, ok := symbolic.Compare(cand, cur)
	if !ok {
		return false
	}
	if (pos == Lower && cmp >= 0) || (pos == Upper && cmp <= 0) {
		x.interval = x.interval.ReplaceBound(pos, candidate)
	}
	return true
}
