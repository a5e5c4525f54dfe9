package interval

import (
	"errors"
	"testing"

	"github.com/au-prob/gamut/symbolic"
)

func TestIntervalShape(t *testing.T) {
	n := symbolic.IntVar("n")

	tests := []struct {
		interval       ClosedInterval
		bounded, empty bool
	}{
		{Unbounded(), false, false},
		{New(symbolic.Int(0), nil), false, false},
		{New(nil, symbolic.Int(10)), false, false},
		{Finite(1, 5), true, false},
		{Finite(3, 3), true, false},
		{Finite(5, 3), true, true},
		{Empty(), true, true},
		{New(n, symbolic.Int(10)), true, false},
		{New(symbolic.Real(2.5), symbolic.Real(1.5)), true, true},
	}

	for _, test := range tests {
		if got := test.interval.Bounded(); got != test.bounded {
			t.Errorf("%s.Bounded() = %v, expected %v", test.interval, got, test.bounded)
		}
		if got := test.interval.IsEmpty(); got != test.empty {
			t.Errorf("%s.IsEmpty() = %v, expected %v", test.interval, got, test.empty)
		}
	}
}

func TestIntervalBounds(t *testing.T) {
	n := symbolic.IntVar("n")
	i := New(n, nil)

	if lo, ok := i.Lower(); !ok || !lo.SyntacticEq(n) {
		t.Errorf("lower bound of %s = %v, expected n", i, lo)
	}
	if up, ok := i.Upper(); ok {
		t.Errorf("upper bound of %s = %v, expected unset", i, up)
	}

	j := i.ReplaceBound(Upper, symbolic.Int(10))
	if up, ok := j.Upper(); !ok || !up.SyntacticEq(symbolic.Int(10)) {
		t.Errorf("upper bound of %s = %v, expected 10", j, up)
	}
	if _, ok := i.Upper(); ok {
		t.Errorf("ReplaceBound mutated its receiver: %s", i)
	}

	if Lower.String() != "lower" || Upper.String() != "upper" {
		t.Errorf("bound positions print as %s/%s", Lower, Upper)
	}
}

func TestIntervalSize(t *testing.T) {
	n := symbolic.IntVar("n")

	tests := []struct {
		interval ClosedInterval
		expected symbolic.Expression
	}{
		{Finite(3, 3), symbolic.Int(1)},
		{Finite(0, 10), symbolic.Int(11)},
		{Finite(-2, 2), symbolic.Int(5)},
		{Empty(), symbolic.Int(0)},
		{Finite(5, 3), symbolic.Int(-1)},
		{New(n, symbolic.Int(10)), symbolic.Add(symbolic.Sub(symbolic.Int(10), n), symbolic.Int(1))},
	}

	for _, test := range tests {
		size, err := test.interval.Size()
		if err != nil {
			t.Errorf("size of %s failed: %v", test.interval, err)
		} else if !size.SyntacticEq(test.expected) {
			t.Errorf("size of %s = %s, expected %s", test.interval, size, test.expected)
		} else {
			t.Logf("size of %s = %s", test.interval, size)
		}
	}

	if _, err := Unbounded().Size(); !errors.Is(err, ErrUnbounded) {
		t.Errorf("size of %s: %v, expected ErrUnbounded", Unbounded(), err)
	}
	if _, err := New(nil, symbolic.Int(3)).Size(); !errors.Is(err, ErrUnbounded) {
		t.Errorf("size of a half-bounded interval: %v, expected ErrUnbounded", err)
	}
}

func TestDomainConstraint(t *testing.T) {
	x := symbolic.IntVar("x")
	n := symbolic.IntVar("n")

	tests := []struct {
		interval ClosedInterval
		expected symbolic.Expression
	}{
		{Finite(3, 7), symbolic.And(symbolic.Le(symbolic.Int(3), x), symbolic.Le(x, symbolic.Int(7)))},
		{New(n, symbolic.Int(10)), symbolic.And(symbolic.Le(n, x), symbolic.Le(x, symbolic.Int(10)))},
		{New(nil, symbolic.Int(10)), symbolic.Le(x, symbolic.Int(10))},
		{New(symbolic.Int(0), nil), symbolic.Le(symbolic.Int(0), x)},
		{Unbounded(), symbolic.Bool(true)},
	}

	for _, test := range tests {
		c, err := test.interval.DomainConstraint(x)
		if err != nil {
			t.Errorf("constraining by %s failed: %v", test.interval, err)
		} else if !c.SyntacticEq(test.expected) {
			t.Errorf("%s constrains x by %s, expected %s", test.interval, c, test.expected)
		} else {
			t.Logf("%s constrains x by %s", test.interval, c)
		}
	}
}

func TestDomainConstraintEmpty(t *testing.T) {
	x := symbolic.IntVar("x")

	for _, i := range []ClosedInterval{Empty(), Finite(5, 3)} {
		_, err := i.DomainConstraint(x)
		domErr := &DomainError{}
		if !errors.As(err, &domErr) {
			t.Fatalf("constraining by %s: %v, expected a domain error", i, err)
		}
		if !domErr.Interval.SyntacticEq(i) {
			t.Errorf("domain error carries %s, expected %s", domErr.Interval, i)
		}
	}
}

func TestIntervalContext(t *testing.T) {
	x := symbolic.IntVar("x")

	ctx, err := Finite(0, 4).Context(x)
	if err != nil {
		t.Fatalf("context over [0, 4] failed: %v", err)
	}
	expected := symbolic.And(symbolic.Le(symbolic.Int(0), x), symbolic.Le(x, symbolic.Int(4)))
	if !ctx.Formula().SyntacticEq(expected) {
		t.Errorf("context formula is %s, expected %s", ctx.Formula(), expected)
	}

	if _, err := Empty().Context(x); err == nil {
		t.Errorf("context over %s succeeded, expected a domain error", Empty())
	}
}

func TestIntervalEnumeration(t *testing.T) {
	tests := []struct {
		interval ClosedInterval
		expected []int64
	}{
		{Finite(2, 5), []int64{2, 3, 4, 5}},
		{Finite(3, 3), []int64{3}},
		{Finite(-1, 1), []int64{-1, 0, 1}},
	}

	for _, test := range tests {
		vs, err := test.interval.Enumerate()
		if err != nil {
			t.Errorf("enumerating %s failed: %v", test.interval, err)
			continue
		}
		if len(vs) != len(test.expected) {
			t.Errorf("%s enumerates %d values, expected %d", test.interval, len(vs), len(test.expected))
			continue
		}
		for j, c := range vs {
			if v, ok := c.AsInt(); !ok || v != test.expected[j] {
				t.Errorf("%s enumerates %s at position %d, expected %d", test.interval, c, j, test.expected[j])
			}
		}
	}
}

func TestIntervalEachStops(t *testing.T) {
	i := Finite(0, 1000)

	seen := []int64{}
	err := i.Each(func(c *symbolic.Constant) bool {
		v, _ := c.AsInt()
		seen = append(seen, v)
		return v < 2
	})
	if err != nil {
		t.Fatalf("enumerating %s failed: %v", i, err)
	}
	if len(seen) != 3 || seen[2] != 2 {
		t.Errorf("early stop visited %v, expected [0 1 2]", seen)
	}

	// A second pass re-derives the sequence from the start.
	var first int64 = -1
	if err := i.Each(func(c *symbolic.Constant) bool {
		first, _ = c.AsInt()
		return false
	}); err != nil {
		t.Fatalf("enumerating %s failed: %v", i, err)
	}
	if first != 0 {
		t.Errorf("second pass starts at %d, expected 0", first)
	}
}

func TestIntervalEnumerationErrors(t *testing.T) {
	n := symbolic.IntVar("n")

	notEnumerable := []ClosedInterval{
		Unbounded(),
		New(nil, symbolic.Int(10)),
		New(n, symbolic.Int(10)),
		New(symbolic.Real(1.5), symbolic.Real(2.5)),
	}
	for _, i := range notEnumerable {
		_, err := i.Enumerate()
		enumErr := &NotEnumerableError{}
		if !errors.As(err, &enumErr) {
			t.Errorf("enumerating %s: %v, expected a not-enumerable error", i, err)
		}
	}

	_, err := Finite(5, 3).Enumerate()
	domErr := &DomainError{}
	if !errors.As(err, &domErr) {
		t.Errorf("enumerating the inverted interval: %v, expected a domain error", err)
	}

	// The offending bound rides along for reporting.
	_, err = New(n, symbolic.Int(10)).Enumerate()
	enumErr := &NotEnumerableError{}
	if errors.As(err, &enumErr) && !enumErr.Cause.SyntacticEq(n) {
		t.Errorf("refusal cause is %v, expected n", enumErr.Cause)
	}
}

func TestIntervalExpression(t *testing.T) {
	n := symbolic.IntVar("n")
	i := New(n, symbolic.Int(10))

	subs := i.Subexpressions()
	if len(subs) != 2 || !subs[0].SyntacticEq(n) || !subs[1].SyntacticEq(symbolic.Int(10)) {
		t.Errorf("subexpressions of %s = %v, expected [n 10]", i, subs)
	}
	if len(Unbounded().Subexpressions()) != 0 {
		t.Errorf("the unbounded interval has subexpressions %v", Unbounded().Subexpressions())
	}
	if i.Sort() != symbolic.SetSort {
		t.Errorf("sort of %s = %v, expected Set", i, i.Sort())
	}

	resolved := i.Replace(n, symbolic.Int(5))
	if !resolved.SyntacticEq(Finite(5, 10)) {
		t.Errorf("%s with n ↦ 5 = %s, expected [5, 10]", i, resolved)
	}
	if !i.SyntacticEq(New(n, symbolic.Int(10))) {
		t.Errorf("Replace mutated its receiver: %s", i)
	}

	if !i.Replace(i, Finite(0, 0)).SyntacticEq(Finite(0, 0)) {
		t.Errorf("wholesale replacement failed for %s", i)
	}
	if !i.Replace(n, n).SyntacticEq(i) {
		t.Errorf("identity substitution changed %s", i)
	}
}

func TestIntervalSet(t *testing.T) {
	i := Finite(3, 7)

	lowered, err := i.Set(0, symbolic.Int(1))
	if err != nil || !lowered.SyntacticEq(Finite(1, 7)) {
		t.Errorf("%s.Set(0, 1) = %v (err %v), expected [1, 7]", i, lowered, err)
	}
	raised, err := i.Set(1, symbolic.Int(9))
	if err != nil || !raised.SyntacticEq(Finite(3, 9)) {
		t.Errorf("%s.Set(1, 9) = %v (err %v), expected [3, 9]", i, raised, err)
	}
	if _, err := i.Set(2, symbolic.Int(0)); err == nil {
		t.Errorf("%s.Set(2, ...) succeeded, expected out of range", i)
	}
}

func TestIntervalEquality(t *testing.T) {
	n := symbolic.IntVar("n")

	tests := []struct {
		a, b     ClosedInterval
		expected bool
	}{
		{Finite(3, 7), Finite(3, 7), true},
		{Finite(3, 7), Finite(3, 8), false},
		{New(n, symbolic.Int(10)), New(n, symbolic.Int(10)), true},
		{New(n, symbolic.Int(10)), Finite(5, 10), false},
		{New(nil, symbolic.Int(5)), New(symbolic.Int(5), nil), false},
		{Unbounded(), Unbounded(), true},
		{Empty(), Finite(1, 0), true},
		{Empty(), Finite(5, 3), false},
	}

	for _, test := range tests {
		if got := test.a.SyntacticEq(test.b); got != test.expected {
			t.Errorf("%s ≡ %s is %v, expected %v", test.a, test.b, got, test.expected)
		}
		if test.expected && test.a.Hash() != test.b.Hash() {
			t.Errorf("%s and %s are equal but hash apart", test.a, test.b)
		}
	}

	if Finite(3, 7).SyntacticEq(symbolic.Int(3)) {
		t.Errorf("an interval equals a bare constant")
	}
	if New(nil, symbolic.Int(5)).Hash() == New(symbolic.Int(5), nil).Hash() {
		t.Errorf("[?, 5] and [5, ?] hash alike")
	}
}

func TestIntervalString(t *testing.T) {
	n := symbolic.IntVar("n")

	tests := []struct {
		interval ClosedInterval
		expected string
	}{
		{Unbounded(), "[?, ?]"},
		{Finite(3, 7), "[3, 7]"},
		{New(n, symbolic.Int(10)), "[n, 10]"},
		{New(nil, symbolic.Int(10)), "[?, 10]"},
		{Empty(), "∅"},
		{Finite(5, 3), "∅"},
	}

	for _, test := range tests {
		if got := test.interval.String(); got != test.expected {
			t.Errorf("interval prints as %q, expected %q", got, test.expected)
		}
	}
}
