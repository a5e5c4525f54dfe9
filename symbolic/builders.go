package symbolic

import "fmt"

// Smart constructors for operator applications. Ground operands are folded
// through Op.Apply and a few unit laws are applied, but shapes are otherwise
// preserved: no reordering, no canonicalization of comparison direction.

// apply2 folds a binary application of op when both operands are ground.
func apply2(op Op, e1, e2 Expression) Expression {
	if c1, ok := e1.(*Constant); ok {
		if c2, ok := e2.(*Constant); ok {
			if v, ok := op.Apply(c1.Value(), c2.Value()); ok {
				return constantOf(v)
			}
		}
	}
	return NewApplication(Operator(op), e1, e2)
}

func isIntConst(e Expression, v int64) bool {
	c, ok := e.(*Constant)
	if !ok {
		return false
	}
	i, ok := c.AsInt()
	return ok && i == v
}

// Add builds e1 + e2, dropping integer zero terms.
func Add(e1, e2 Expression) Expression {
	switch {
	case isIntConst(e1, 0):
		return e2
	case isIntConst(e2, 0):
		return e1
	}
	return apply2(ADD, e1, e2)
}

// Sub builds e1 - e2, dropping an integer zero subtrahend.
func Sub(e1, e2 Expression) Expression {
	if isIntConst(e2, 0) {
		return e1
	}
	return apply2(SUB, e1, e2)
}

// Mul builds e1 * e2, dropping integer unit factors and absorbing integer
// zero factors.
func Mul(e1, e2 Expression) Expression {
	switch {
	case isIntConst(e1, 1):
		return e2
	case isIntConst(e2, 1):
		return e1
	case isIntConst(e1, 0) && e2.Sort() == IntSort:
		return Int(0)
	case isIntConst(e2, 0) && e1.Sort() == IntSort:
		return Int(0)
	}
	return apply2(MUL, e1, e2)
}

// Div builds e1 / e2, dropping an integer unit divisor. Integer division
// truncates; division by a ground zero stays symbolic.
func Div(e1, e2 Expression) Expression {
	if isIntConst(e2, 1) {
		return e1
	}
	return apply2(QUO, e1, e2)
}

// Rem builds e1 % e2.
func Rem(e1, e2 Expression) Expression {
	return apply2(REM, e1, e2)
}

// Neg builds the arithmetic negation of e.
func Neg(e Expression) Expression {
	if c, ok := e.(*Constant); ok {
		if v, ok := c.AsInt(); ok {
			return Int(-v)
		}
		if v, ok := c.AsReal(); ok {
			return Real(-v)
		}
	}
	return Sub(Int(0), e)
}

// Eq builds e1 = e2.
func Eq(e1, e2 Expression) Expression {
	return apply2(EQL, e1, e2)
}

// Ne builds e1 ≠ e2.
func Ne(e1, e2 Expression) Expression {
	return apply2(NEQ, e1, e2)
}

// Lt builds e1 < e2.
func Lt(e1, e2 Expression) Expression {
	return apply2(LSS, e1, e2)
}

// Le builds e1 ≤ e2.
func Le(e1, e2 Expression) Expression {
	return apply2(LEQ, e1, e2)
}

// Gt builds e1 > e2.
func Gt(e1, e2 Expression) Expression {
	return apply2(GTR, e1, e2)
}

// Ge builds e1 ≥ e2.
func Ge(e1, e2 Expression) Expression {
	return apply2(GEQ, e1, e2)
}

// And builds the conjunction of es. Nested conjunctions are flattened,
// literal true conjuncts are dropped and a literal false conjunct absorbs
// the whole conjunction. An empty conjunction is true.
func And(es ...Expression) Expression {
	flat := make([]Expression, 0, len(es))
	for _, e := range es {
		if c, ok := e.(*Constant); ok {
			if c.IsTrue() {
				continue
			}
			if c.IsFalse() {
				return Bool(false)
			}
		}
		if a, ok := e.(*Application); ok {
			if op, ok := a.AppliedOp(); ok && op == LAND {
				flat = append(flat, a.Args()...)
				continue
			}
		}
		flat = append(flat, e)
	}
	switch len(flat) {
	case 0:
		return Bool(true)
	case 1:
		return flat[0]
	}
	return NewApplication(Operator(LAND), flat...)
}

// Or builds the disjunction of es, dually to And. An empty disjunction is
// false.
func Or(es ...Expression) Expression {
	flat := make([]Expression, 0, len(es))
	for _, e := range es {
		if c, ok := e.(*Constant); ok {
			if c.IsFalse() {
				continue
			}
			if c.IsTrue() {
				return Bool(true)
			}
		}
		if a, ok := e.(*Application); ok {
			if op, ok := a.AppliedOp(); ok && op == LOR {
				flat = append(flat, a.Args()...)
				continue
			}
		}
		flat = append(flat, e)
	}
	switch len(flat) {
	case 0:
		return Bool(false)
	case 1:
		return flat[0]
	}
	return NewApplication(Operator(LOR), flat...)
}

// Not builds ¬e. Double negations cancel and negated comparisons flip into
// the complementary comparison, so ¬(x < 5) is x ≥ 5.
func Not(e Expression) Expression {
	if c, ok := e.(*Constant); ok {
		if b, ok := c.AsBool(); ok {
			return Bool(!b)
		}
	}
	if a, ok := e.(*Application); ok {
		if op, ok := a.AppliedOp(); ok {
			args := a.Args()
			if op == NOT && len(args) == 1 {
				return args[0]
			}
			if neg, ok := op.Negated(); ok && len(args) == 2 {
				return NewApplication(Operator(neg), args[0], args[1])
			}
		}
	}
	return NewApplication(Operator(NOT), e)
}

// Implies builds e1 ⇒ e2.
func Implies(e1, e2 Expression) Expression {
	return apply2(IMPL, e1, e2)
}

// Ite builds the conditional, selecting an arm when the condition is ground.
func Ite(cond, then, els Expression) Expression {
	if c, ok := cond.(*Constant); ok {
		if b, ok := c.AsBool(); ok {
			if b {
				return then
			}
			return els
		}
	}
	return NewApplication(Operator(ITE), cond, then, els)
}

// Build dispatches to the smart constructor for op. It is the single entry
// point for rebuilding applications from operator identity, as done by the
// parser and the simplifier.
func Build(op Op, args ...Expression) (Expression, error) {
	if n := op.Arity(); (n >= 0 && n != len(args)) || (n < 0 && len(args) < 2) {
		return nil, fmt.Errorf("operator %v applied to %d arguments", op, len(args))
	}
	switch op {
	case ADD:
		return Add(args[0], args[1]), nil
	case SUB:
		return Sub(args[0], args[1]), nil
	case MUL:
		return Mul(args[0], args[1]), nil
	case QUO:
		return Div(args[0], args[1]), nil
	case REM:
		return Rem(args[0], args[1]), nil
	case EQL:
		return Eq(args[0], args[1]), nil
	case NEQ:
		return Ne(args[0], args[1]), nil
	case LSS:
		return Lt(args[0], args[1]), nil
	case LEQ:
		return Le(args[0], args[1]), nil
	case GTR:
		return Gt(args[0], args[1]), nil
	case GEQ:
		return Ge(args[0], args[1]), nil
	case LAND:
		return And(args...), nil
	case LOR:
		return Or(args...), nil
	case NOT:
		return Not(args[0]), nil
	case IMPL:
		return Implies(args[0], args[1]), nil
	case ITE:
		return Ite(args[0], args[1], args[2]), nil
	}
	return nil, fmt.Errorf("cannot build application of %v", op)
}

// groundValue evaluates an expression bottom-up when every leaf is ground.
func groundValue(e Expression) (any, bool) {
	switch e := e.(type) {
	case *Constant:
		if _, isOp := e.AsOp(); isOp {
			return nil, false
		}
		return e.Value(), true
	case *Application:
		op, ok := e.AppliedOp()
		if !ok {
			return nil, false
		}
		args := e.Args()
		vs := make([]any, len(args))
		for i, a := range args {
			v, ok := groundValue(a)
			if !ok {
				return nil, false
			}
			vs[i] = v
		}
		return op.Apply(vs...)
	}
	return nil, false
}
