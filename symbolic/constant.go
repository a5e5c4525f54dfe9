package symbolic

import (
	"fmt"
	"math"
	"strconv"

	"github.com/au-prob/gamut/utils"
)

// Constant is a leaf expression carrying a ground Go value, or an operator
// in function position.
type Constant struct {
	value any
	sort  Sort
}

// Int creates an int-sorted constant.
func Int(v int64) *Constant {
	return &Constant{value: v, sort: IntSort}
}

// Bool creates a bool-sorted constant.
func Bool(v bool) *Constant {
	return &Constant{value: v, sort: BoolSort}
}

// Real creates a real-sorted constant.
func Real(v float64) *Constant {
	return &Constant{value: v, sort: RealSort}
}

// Operator creates the fn-sorted constant denoting op.
func Operator(op Op) *Constant {
	return &Constant{value: op, sort: FnSort}
}

// constantOf wraps a ground value produced by Op.Apply.
func constantOf(v any) *Constant {
	switch v := v.(type) {
	case int64:
		return Int(v)
	case bool:
		return Bool(v)
	case float64:
		return Real(v)
	}
	panic(errPatternMatch(v))
}

// Value returns the carried value.
func (c *Constant) Value() any {
	return c.value
}

// AsInt unpacks an integer constant.
func (c *Constant) AsInt() (int64, bool) {
	v, ok := c.value.(int64)
	return v, ok
}

// AsBool unpacks a boolean constant.
func (c *Constant) AsBool() (bool, bool) {
	v, ok := c.value.(bool)
	return v, ok
}

// AsReal unpacks a real constant.
func (c *Constant) AsReal() (float64, bool) {
	v, ok := c.value.(float64)
	return v, ok
}

// AsOp unpacks an operator constant.
func (c *Constant) AsOp() (Op, bool) {
	v, ok := c.value.(Op)
	return v, ok
}

// IsTrue checks whether the constant is the literal true.
func (c *Constant) IsTrue() bool {
	return c.value == true
}

// IsFalse checks whether the constant is the literal false.
func (c *Constant) IsFalse() bool {
	return c.value == false
}

// Subexpressions returns the ordered direct children; constants have none.
func (c *Constant) Subexpressions() []Expression {
	return nil
}

// SyntacticEq checks for structural equality. Constants of distinct sorts
// are never equal, so 3 and 3.0 are distinct.
func (c *Constant) SyntacticEq(o Expression) bool {
	oc, ok := o.(*Constant)
	return ok && c.sort == oc.sort && c.value == oc.value
}

// Replace substitutes the whole constant if it matches from.
func (c *Constant) Replace(from, to Expression) Expression {
	if c.SyntacticEq(from) {
		return to
	}
	return c
}

// Set fails; constants have no subexpressions.
func (c *Constant) Set(i int, e Expression) (Expression, error) {
	return nil, fmt.Errorf("set position %d out of range for constant %s", i, c)
}

// Sort returns the sort of the constant.
func (c *Constant) Sort() Sort {
	return c.sort
}

func (c *Constant) Hash() uint32 {
	var h uint32
	switch v := c.value.(type) {
	case int64:
		h = uint32(v) ^ uint32(uint64(v)>>32)
	case bool:
		if v {
			h = 1
		}
	case float64:
		bits := math.Float64bits(v)
		h = uint32(bits) ^ uint32(bits>>32)
	case Op:
		h = uint32(v)
	}
	return utils.HashCombine(hashTagConstant, uint32(c.sort), h)
}

func (c *Constant) String() string {
	switch v := c.value.(type) {
	case int64:
		return colorize.Const(strconv.FormatInt(v, 10))
	case bool:
		return colorize.Const(strconv.FormatBool(v))
	case float64:
		return colorize.Const(strconv.FormatFloat(v, 'g', -1, 64))
	case Op:
		return v.String()
	}
	return colorize.Const(fmt.Sprintf("%v", c.value))
}

// Compare orders two constants numerically, yielding -1, 0 or 1. Constants
// that are not both numeric are incomparable.
func Compare(c1, c2 *Constant) (int, bool) {
	i1, r1, isInt1, ok := numval(c1.value)
	if !ok {
		return 0, false
	}
	i2, r2, isInt2, ok := numval(c2.value)
	if !ok {
		return 0, false
	}
	if isInt1 && isInt2 {
		switch {
		case i1 < i2:
			return -1, true
		case i1 > i2:
			return 1, true
		}
		return 0, true
	}
	switch {
	case r1 < r2:
		return -1, true
	case r1 > r2:
		return 1, true
	}
	return 0, true
}
