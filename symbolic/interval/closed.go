package interval

import (
	"fmt"

	"github.com/au-prob/gamut/symbolic"
	"github.com/au-prob/gamut/utils"
)

// ClosedInterval is an inclusive range [lower, upper] over expressions.
// Either bound may be unset while constraints are still being folded, and
// bounds may be symbolic. Intervals are expressions themselves, so they
// participate in substitution and structural equality like any other node.
//
// An interval whose ground bounds are inverted denotes the empty domain.
// It is a legal value: extraction may produce it, and every consumer that
// would iterate or constrain by it must surface the emptiness through
// DomainError instead.
type ClosedInterval struct {
	lower symbolic.Expression
	upper symbolic.Expression
}

// Unbounded creates the interval with both bounds unset.
func Unbounded() ClosedInterval {
	return ClosedInterval{}
}

// New creates an interval with the given bounds. A nil bound is unset.
func New(lower, upper symbolic.Expression) ClosedInterval {
	return ClosedInterval{lower: lower, upper: upper}
}

// Finite creates an interval with ground integer bounds.
func Finite(lower, upper int64) ClosedInterval {
	return ClosedInterval{lower: symbolic.Int(lower), upper: symbolic.Int(upper)}
}

// Empty returns the canonical empty interval [1, 0].
func Empty() ClosedInterval {
	return Finite(1, 0)
}

// Lower returns the lower bound, if set.
func (i ClosedInterval) Lower() (symbolic.Expression, bool) {
	return i.lower, i.lower != nil
}

// Upper returns the upper bound, if set.
func (i ClosedInterval) Upper() (symbolic.Expression, bool) {
	return i.upper, i.upper != nil
}

// Bounded checks that both bounds are set.
func (i ClosedInterval) Bounded() bool {
	return i.lower != nil && i.upper != nil
}

// IsEmpty checks whether the interval statically denotes the empty domain,
// i.e. both bounds are ground numbers with lower > upper. Intervals with
// unset or symbolic bounds are never statically empty.
func (i ClosedInterval) IsEmpty() bool {
	lo, hi, ok := i.groundBounds()
	if !ok {
		return false
	}
	cmp, ok := symbolic.Compare(lo, hi)
	return ok && cmp > 0
}

// groundBounds unpacks both bounds as constants, if ground.
func (i ClosedInterval) groundBounds() (lo, hi *symbolic.Constant, ok bool) {
	if !i.Bounded() {
		return nil, nil, false
	}
	lo, ok1 := i.lower.(*symbolic.Constant)
	hi, ok2 := i.upper.(*symbolic.Constant)
	if !ok1 || !ok2 {
		return nil, nil, false
	}
	return lo, hi, true
}

// Size computes upper − lower + 1 as an expression, symbolic when the
// bounds are. Unset bounds have no size.
func (i ClosedInterval) Size() (symbolic.Expression, error) {
	if !i.Bounded() {
		return nil, ErrUnbounded
	}
	return symbolic.Add(symbolic.Sub(i.upper, i.lower), symbolic.Int(1)), nil
}

// DomainConstraint renders the interval as lower ≤ index ∧ index ≤ upper
// over the given index variable. Unset bounds contribute no conjunct, so
// the unbounded interval renders as true. A statically empty interval
// yields a DomainError rather than an unsatisfiable constraint.
func (i ClosedInterval) DomainConstraint(index *symbolic.Variable) (symbolic.Expression, error) {
	if i.IsEmpty() {
		return nil, &DomainError{Interval: i}
	}
	cs := []symbolic.Expression{}
	if i.lower != nil {
		cs = append(cs, symbolic.Le(i.lower, index))
	}
	if i.upper != nil {
		cs = append(cs, symbolic.Le(index, i.upper))
	}
	return symbolic.And(cs...), nil
}

// Context assumes the domain constraint of the interval in a fresh context.
func (i ClosedInterval) Context(index *symbolic.Variable) (symbolic.Context, error) {
	c, err := i.DomainConstraint(index)
	if err != nil {
		return symbolic.Context{}, err
	}
	return symbolic.TrueContext().Assume(c), nil
}

// Bound selects one of the two interval bounds positionally.
type Bound int

const (
	// Lower is the position of the lower bound.
	Lower Bound = iota
	// Upper is the position of the upper bound.
	Upper
)

func (b Bound) String() string {
	if b == Lower {
		return "lower"
	}
	return "upper"
}

// ReplaceBound rebuilds the interval with the bound at the given position
// replaced. The receiver is unchanged.
func (i ClosedInterval) ReplaceBound(b Bound, e symbolic.Expression) ClosedInterval {
	if b == Lower {
		return ClosedInterval{lower: e, upper: i.upper}
	}
	return ClosedInterval{lower: i.lower, upper: e}
}

// Each enumerates the concrete values of the interval in increasing order,
// inclusive of both endpoints, applying do until it reports false.
// Enumeration is defined only when both bounds are ground integers;
// re-running Each re-derives the same sequence.
func (i ClosedInterval) Each(do func(*symbolic.Constant) bool) error {
	lo, hi, err := i.enumerable()
	if err != nil {
		return err
	}
	for v := lo; v <= hi; v++ {
		if !do(symbolic.Int(v)) {
			return nil
		}
	}
	return nil
}

// Enumerate materializes the value sequence of Each.
func (i ClosedInterval) Enumerate() ([]*symbolic.Constant, error) {
	vs := []*symbolic.Constant{}
	err := i.Each(func(c *symbolic.Constant) bool {
		vs = append(vs, c)
		return true
	})
	if err != nil {
		return nil, err
	}
	return vs, nil
}

// enumerable unpacks the bounds as ground integers. The possible verdicts
// are:
//
//	.-------------------------------------------------.
//	|         bounds           |       verdict        |
//	|==========================|======================|
//	|  one unset               |  NotEnumerableError  |
//	|--------------------------|----------------------|
//	|  ground, lower > upper   |  DomainError         |
//	|--------------------------|----------------------|
//	|  symbolic or non-integer |  NotEnumerableError  |
//	|--------------------------|----------------------|
//	|  ground integers, l ≤ u  |  (l, u)              |
//	 -------------------------------------------------
func (i ClosedInterval) enumerable() (lo, hi int64, err error) {
	if !i.Bounded() {
		return 0, 0, &NotEnumerableError{Interval: i, Reason: "a bound is unset"}
	}
	if i.IsEmpty() {
		return 0, 0, &DomainError{Interval: i}
	}
	lo, ok := groundInt(i.lower)
	if !ok {
		return 0, 0, &NotEnumerableError{
			Interval: i,
			Cause:    i.lower,
			Reason:   "lower bound is not a ground integer",
		}
	}
	hi, ok = groundInt(i.upper)
	if !ok {
		return 0, 0, &NotEnumerableError{
			Interval: i,
			Cause:    i.upper,
			Reason:   "upper bound is not a ground integer",
		}
	}
	return lo, hi, nil
}

func groundInt(e symbolic.Expression) (int64, bool) {
	c, ok := e.(*symbolic.Constant)
	if !ok {
		return 0, false
	}
	return c.AsInt()
}

// Subexpressions returns the set bounds, lower first.
func (i ClosedInterval) Subexpressions() []symbolic.Expression {
	subs := []symbolic.Expression{}
	if i.lower != nil {
		subs = append(subs, i.lower)
	}
	if i.upper != nil {
		subs = append(subs, i.upper)
	}
	return subs
}

// SyntacticEq checks structural equality of the bounds. A symbolic bound n
// stays distinct from any ground bound it may later resolve to.
func (i ClosedInterval) SyntacticEq(o symbolic.Expression) bool {
	switch o := o.(type) {
	case ClosedInterval:
		return boundEq(i.lower, o.lower) && boundEq(i.upper, o.upper)
	}
	return false
}

func boundEq(a, b symbolic.Expression) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.SyntacticEq(b)
}

// Replace substitutes to for from within both bounds, or replaces the
// interval wholesale when it matches from. The receiver is unchanged.
func (i ClosedInterval) Replace(from, to symbolic.Expression) symbolic.Expression {
	if i.SyntacticEq(from) {
		return to
	}
	next := i
	if i.lower != nil {
		next.lower = i.lower.Replace(from, to)
	}
	if i.upper != nil {
		next.upper = i.upper.Replace(from, to)
	}
	return next
}

// Set updates a bound positionally: position 0 is the lower bound and 1
// the upper, whether or not the bound is currently set.
func (i ClosedInterval) Set(pos int, e symbolic.Expression) (symbolic.Expression, error) {
	switch pos {
	case 0:
		return i.ReplaceBound(Lower, e), nil
	case 1:
		return i.ReplaceBound(Upper, e), nil
	}
	return nil, fmt.Errorf("set position %d out of range for interval %s", pos, i)
}

// Sort of an interval is Set: the interval stands for its set of
// admissible index values.
func (ClosedInterval) Sort() symbolic.Sort {
	return symbolic.SetSort
}

func (i ClosedInterval) Hash() uint32 {
	return utils.HashCombine(hashTagInterval, boundHash(i.lower), boundHash(i.upper))
}

func boundHash(e symbolic.Expression) uint32 {
	if e == nil {
		return 0
	}
	return e.Hash()
}

func (i ClosedInterval) String() string {
	if i.IsEmpty() {
		return colorize.Empty("∅")
	}
	return "[" + boundString(i.lower) + ", " + boundString(i.upper) + "]"
}

func boundString(e symbolic.Expression) string {
	if e == nil {
		return colorize.Unset("?")
	}
	return e.String()
}
