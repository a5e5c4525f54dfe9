package symbolic

import (
	"fmt"
	"go/token"
)

// Op identifies a builtin operator. Operators are stored as the function
// position of an application, wrapped in an fn-sorted constant, so that
// "which function is applied" is answered by ordinary constant extraction.
type Op int

const (
	ILLEGAL Op = iota

	arithmetic_op_begin
	ADD // +
	SUB // -
	MUL // *
	QUO // /
	REM // %
	arithmetic_op_end

	compare_op_begin
	EQL // =
	NEQ // ≠
	LSS // <
	LEQ // ≤
	GTR // >
	GEQ // ≥
	compare_op_end

	logical_op_begin
	LAND // ∧
	LOR  // ∨
	NOT  // ¬
	IMPL // ⇒
	logical_op_end

	// ITE is the three-armed conditional operator.
	ITE
)

var opStrings = [...]string{
	ADD:  "+",
	SUB:  "-",
	MUL:  "*",
	QUO:  "/",
	REM:  "%",
	EQL:  "=",
	NEQ:  "≠",
	LSS:  "<",
	LEQ:  "≤",
	GTR:  ">",
	GEQ:  "≥",
	LAND: "∧",
	LOR:  "∨",
	NOT:  "¬",
	IMPL: "⇒",
	ITE:  "ite",
}

// String returns the mathematical glyph of the operator.
func (op Op) String() string {
	if op >= 0 && op < Op(len(opStrings)) && opStrings[op] != "" {
		return opStrings[op]
	}
	return fmt.Sprintf("Op(%d)", op)
}

// IsArithmetic checks whether op is an arithmetic operator.
func (op Op) IsArithmetic() bool {
	return arithmetic_op_begin < op && op < arithmetic_op_end
}

// IsCompare checks whether op is a comparison operator.
func (op Op) IsCompare() bool {
	return compare_op_begin < op && op < compare_op_end
}

// IsLogical checks whether op is a logical connective.
func (op Op) IsLogical() bool {
	return logical_op_begin < op && op < logical_op_end
}

// Arity returns the argument count of the operator, or -1 for the variadic
// connectives ∧ and ∨, which take two or more arguments.
func (op Op) Arity() int {
	switch {
	case op == NOT:
		return 1
	case op == ITE:
		return 3
	case op == LAND || op == LOR:
		return -1
	case op.IsArithmetic() || op.IsCompare() || op == IMPL:
		return 2
	}
	return 0
}

// Mirrored returns the operator op' such that a op b ⟺ b op' a.
func (op Op) Mirrored() Op {
	switch op {
	case LSS:
		return GTR
	case GTR:
		return LSS
	case LEQ:
		return GEQ
	case GEQ:
		return LEQ
	}
	return op
}

// Negated returns the comparison operator op' such that ¬(a op b) ⟺ a op' b,
// if one exists.
func (op Op) Negated() (Op, bool) {
	switch op {
	case EQL:
		return NEQ, true
	case NEQ:
		return EQL, true
	case LSS:
		return GEQ, true
	case LEQ:
		return GTR, true
	case GTR:
		return LEQ, true
	case GEQ:
		return LSS, true
	}
	return ILLEGAL, false
}

// FromToken translates a Go operator token.
func FromToken(tok token.Token) (Op, bool) {
	switch tok {
	case token.ADD:
		return ADD, true
	case token.SUB:
		return SUB, true
	case token.MUL:
		return MUL, true
	case token.QUO:
		return QUO, true
	case token.REM:
		return REM, true
	case token.EQL:
		return EQL, true
	case token.NEQ:
		return NEQ, true
	case token.LSS:
		return LSS, true
	case token.LEQ:
		return LEQ, true
	case token.GTR:
		return GTR, true
	case token.GEQ:
		return GEQ, true
	case token.LAND:
		return LAND, true
	case token.LOR:
		return LOR, true
	case token.NOT:
		return NOT, true
	}
	return ILLEGAL, false
}

// Apply evaluates the operator over ground operand values. The semantics of
// ground application is:
//
//	.--------------------------------------------.
//	|     op      |     operands     |  result   |
//	|=============|==================|===========|
//	| + - * / %   |  int, int        |   int     |
//	|-------------|------------------|-----------|
//	| + - * /     |  real or mixed   |   real    |
//	|-------------|------------------|-----------|
//	| = ≠ < ≤ > ≥ |  numeric         |   bool    |
//	|-------------|------------------|-----------|
//	| = ≠ ⇒       |  bool, bool      |   bool    |
//	|-------------|------------------|-----------|
//	| ∧ ∨         |  bool, bool, ... |   bool    |
//	|-------------|------------------|-----------|
//	| ¬           |  bool            |   bool    |
//	|-------------|------------------|-----------|
//	| ite         |  bool, v₁, v₂    |  v₁ or v₂ |
//	 --------------------------------------------
//
// Division and remainder by zero are left unevaluated. Any combination
// outside the table reports supported = false.
func (op Op) Apply(vs ...any) (val any, supported bool) {
	switch op {
	case NOT:
		if len(vs) == 1 {
			if b, ok := vs[0].(bool); ok {
				return !b, true
			}
		}
		return nil, false
	case LAND, LOR:
		if len(vs) < 2 {
			return nil, false
		}
		acc := op == LAND
		for _, v := range vs {
			b, ok := v.(bool)
			if !ok {
				return nil, false
			}
			if op == LAND {
				acc = acc && b
			} else {
				acc = acc || b
			}
		}
		return acc, true
	case ITE:
		if len(vs) == 3 {
			if c, ok := vs[0].(bool); ok {
				if c {
					return vs[1], true
				}
				return vs[2], true
			}
		}
		return nil, false
	}

	if len(vs) != 2 {
		return nil, false
	}
	if b1, ok := vs[0].(bool); ok {
		b2, ok := vs[1].(bool)
		if !ok {
			return nil, false
		}
		return boolBinOp(b1, b2, op)
	}
	i1, r1, isInt1, ok := numval(vs[0])
	if !ok {
		return nil, false
	}
	i2, r2, isInt2, ok := numval(vs[1])
	if !ok {
		return nil, false
	}
	if isInt1 && isInt2 {
		return intBinOp(i1, i2, op)
	}
	return realBinOp(r1, r2, op)
}

// numval unpacks a ground numeric value into both integer and real form.
func numval(v any) (i int64, r float64, isInt bool, ok bool) {
	switch v := v.(type) {
	case int64:
		return v, float64(v), true, true
	case float64:
		return 0, v, false, true
	}
	return 0, 0, false, false
}

func intBinOp(v1, v2 int64, op Op) (val any, supported bool) {
	supported = true
	switch op {
	case ADD:
		val = v1 + v2
	case SUB:
		val = v1 - v2
	case MUL:
		val = v1 * v2
	case QUO:
		if v2 == 0 {
			return nil, false
		}
		val = v1 / v2
	case REM:
		if v2 == 0 {
			return nil, false
		}
		val = v1 % v2
	case EQL:
		val = v1 == v2
	case NEQ:
		val = v1 != v2
	case LSS:
		val = v1 < v2
	case LEQ:
		val = v1 <= v2
	case GTR:
		val = v1 > v2
	case GEQ:
		val = v1 >= v2
	default:
		supported = false
	}
	return
}

func realBinOp(v1, v2 float64, op Op) (val any, supported bool) {
	supported = true
	switch op {
	case ADD:
		val = v1 + v2
	case SUB:
		val = v1 - v2
	case MUL:
		val = v1 * v2
	case QUO:
		if v2 == 0 {
			return nil, false
		}
		val = v1 / v2
	case EQL:
		val = v1 == v2
	case NEQ:
		val = v1 != v2
	case LSS:
		val = v1 < v2
	case LEQ:
		val = v1 <= v2
	case GTR:
		val = v1 > v2
	case GEQ:
		val = v1 >= v2
	default:
		supported = false
	}
	return
}

func boolBinOp(v1, v2 bool, op Op) (val any, supported bool) {
	supported = true
	switch op {
	case EQL:
		val = v1 == v2
	case NEQ:
		val = v1 != v2
	case IMPL:
		val = !v1 || v2
	default:
		supported = false
	}
	return
}
