package interval

import (
	"fmt"
	"strings"

	"github.com/au-prob/gamut/symbolic"
	"github.com/au-prob/gamut/utils"
)

// DottedIntervals pairs a closed interval with the ordered residual
// constraints ("dots") that could not be folded into its bounds. Dots are
// preserved verbatim in discovery order; reordering them is a different
// value, since a different decision path could have discovered them in a
// different order.
type DottedIntervals struct {
	interval ClosedInterval
	dots     dotList
}

// NewDotted pairs an interval with residual constraints in discovery order.
func NewDotted(i ClosedInterval, dots ...symbolic.Expression) DottedIntervals {
	dl := emptyDots()
	for _, d := range dots {
		dl = dl.append(d)
	}
	return DottedIntervals{interval: i, dots: dl}
}

// Interval returns the bound part.
func (d DottedIntervals) Interval() ClosedInterval {
	return d.interval
}

// Dots returns the residual constraints in discovery order.
func (d DottedIntervals) Dots() []symbolic.Expression {
	if d.dots.List == nil {
		return []symbolic.Expression{}
	}
	return d.dots.slice()
}

// Each enumerates the underlying interval. Dots restrict the domain in
// ways the interval cannot express, so any residual constraint refuses
// enumeration; callers handle dots before enumerating.
func (d DottedIntervals) Each(do func(*symbolic.Constant) bool) error {
	if d.dots.List != nil && d.dots.Len() > 0 {
		return &NotEnumerableError{
			Interval: d.interval,
			Cause:    d.dots.Get(0),
			Reason:   "a residual constraint restricts the domain",
		}
	}
	return d.interval.Each(do)
}

// Enumerate materializes the value sequence of Each.
func (d DottedIntervals) Enumerate() ([]*symbolic.Constant, error) {
	vs := []*symbolic.Constant{}
	err := d.Each(func(c *symbolic.Constant) bool {
		vs = append(vs, c)
		return true
	})
	if err != nil {
		return nil, err
	}
	return vs, nil
}

// Subexpressions returns the interval followed by the dots.
func (d DottedIntervals) Subexpressions() []symbolic.Expression {
	return append([]symbolic.Expression{d.interval}, d.Dots()...)
}

// SyntacticEq defers to interval equality first, then position-wise dot
// equality.
func (d DottedIntervals) SyntacticEq(o symbolic.Expression) bool {
	switch o := o.(type) {
	case DottedIntervals:
		if !d.interval.SyntacticEq(o.interval) {
			return false
		}
		ds, os := d.Dots(), o.Dots()
		if len(ds) != len(os) {
			return false
		}
		for i, e := range ds {
			if !e.SyntacticEq(os[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Replace substitutes to for from within the interval and every dot, or
// replaces the dotted interval wholesale when it matches from. The
// interval slot always holds a closed interval; a substitution replacing
// it with any other expression panics.
func (d DottedIntervals) Replace(from, to symbolic.Expression) symbolic.Expression {
	if d.SyntacticEq(from) {
		return to
	}
	next, ok := d.interval.Replace(from, to).(ClosedInterval)
	if !ok {
		panic(errIntervalSlot)
	}
	dl := emptyDots()
	if d.dots.List != nil {
		d.dots.foreach(func(_ int, e symbolic.Expression) {
			dl = dl.append(e.Replace(from, to))
		})
	}
	return DottedIntervals{interval: next, dots: dl}
}

// Set updates a slot positionally: position 0 is the interval, positions
// 1..n the dots in discovery order.
func (d DottedIntervals) Set(pos int, e symbolic.Expression) (symbolic.Expression, error) {
	if pos == 0 {
		i, ok := e.(ClosedInterval)
		if !ok {
			return nil, fmt.Errorf("set position 0 of %s requires a closed interval, got %v", d, e)
		}
		return DottedIntervals{interval: i, dots: d.dots}, nil
	}
	if d.dots.List == nil || pos < 0 || pos > d.dots.Len() {
		return nil, fmt.Errorf("set position %d out of range for dotted interval %s", pos, d)
	}
	return DottedIntervals{interval: d.interval, dots: d.dots.set(pos-1, e)}, nil
}

// Sort of a dotted interval is Set, like the interval it refines.
func (DottedIntervals) Sort() symbolic.Sort {
	return symbolic.SetSort
}

func (d DottedIntervals) Hash() uint32 {
	hs := []uint32{hashTagDotted, d.interval.Hash()}
	if d.dots.List != nil {
		d.dots.foreach(func(_ int, e symbolic.Expression) {
			hs = append(hs, e.Hash())
		})
	}
	return utils.HashCombine(hs...)
}

func (d DottedIntervals) String() string {
	ds := d.Dots()
	if len(ds) == 0 {
		return d.interval.String()
	}
	strs := make([]string, 0, len(ds))
	for _, e := range ds {
		strs = append(strs, e.String())
	}
	return d.interval.String() + " • {" + strings.Join(strs, ", ") + "}"
}
