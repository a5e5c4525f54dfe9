package symbolic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationShape(t *testing.T) {
	x := IntVar("x")
	atom := Ge(x, Int(2))

	app, ok := atom.(*Application)
	require.True(t, ok, "x ≥ 2 should stay an application")

	subs := app.Subexpressions()
	require.Len(t, subs, 3)

	op, ok := app.AppliedOp()
	require.True(t, ok)
	assert.Equal(t, GEQ, op, "function position should hold the operator")
	assert.True(t, subs[1].SyntacticEq(x))
	assert.True(t, subs[2].SyntacticEq(Int(2)))
	assert.Equal(t, BoolSort, app.Sort())
}

func TestSyntacticEqIsStructural(t *testing.T) {
	x := IntVar("x")
	n := IntVar("n")

	assert.True(t, Ge(x, n).SyntacticEq(Ge(x, n)))
	assert.False(t, Ge(x, n).SyntacticEq(Ge(x, Int(5))),
		"a symbolic bound n is distinct from a concrete 5")
	assert.False(t, Int(3).SyntacticEq(Real(3)),
		"3 and 3.0 differ in sort")
	assert.False(t, IntVar("x").SyntacticEq(Var("x", RealSort)),
		"variables of the same name but different sorts are distinct")
	assert.False(t, Ge(x, Int(2)).SyntacticEq(Le(Int(2), x)),
		"comparison direction is part of the structure")
}

func TestReplace(t *testing.T) {
	x, n := IntVar("x"), IntVar("n")
	e := And(Ge(x, n), Lt(x, Int(10)))

	replaced := e.Replace(n, Int(5))
	expected := And(Ge(x, Int(5)), Lt(x, Int(10)))
	assert.True(t, replaced.SyntacticEq(expected))
	assert.True(t, e.SyntacticEq(And(Ge(x, n), Lt(x, Int(10)))),
		"the source expression must be left intact")

	// Replacing a subtree by itself preserves structure.
	assert.True(t, e.Replace(n, n).SyntacticEq(e))
	assert.True(t, e.Replace(e, e).SyntacticEq(e))
}

func TestReplaceWholeNode(t *testing.T) {
	x := IntVar("x")
	atom := Ge(x, Int(2))
	assert.True(t, atom.Replace(atom, Bool(true)).SyntacticEq(Bool(true)))
}

func TestSet(t *testing.T) {
	x := IntVar("x")
	app := Ge(x, Int(2)).(*Application)

	updated, err := app.Set(2, Int(7))
	require.NoError(t, err)
	assert.True(t, updated.SyntacticEq(Ge(x, Int(7))))
	assert.True(t, app.SyntacticEq(Ge(x, Int(2))), "set must not mutate in place")

	_, err = app.Set(3, Int(7))
	assert.Error(t, err)
	_, err = Int(1).Set(0, Int(2))
	assert.Error(t, err)
	_, err = x.Set(0, Int(2))
	assert.Error(t, err)
}

func TestSetFunctionPosition(t *testing.T) {
	x := IntVar("x")
	app := Ge(x, Int(2)).(*Application)

	updated, err := app.Set(0, Operator(LEQ))
	require.NoError(t, err)
	op, ok := updated.(*Application).AppliedOp()
	require.True(t, ok)
	assert.Equal(t, LEQ, op)
}

func TestHashConsistency(t *testing.T) {
	x, n := IntVar("x"), IntVar("n")
	pairs := []struct {
		a, b Expression
	}{
		{Int(3), Int(3)},
		{Ge(x, n), Ge(x, n)},
		{And(Ge(x, Int(0)), Le(x, n)), And(Ge(x, Int(0)), Le(x, n))},
	}
	for _, p := range pairs {
		assert.True(t, p.a.SyntacticEq(p.b))
		assert.Equal(t, p.a.Hash(), p.b.Hash(), "equal expressions must hash alike")
	}

	assert.NotEqual(t, Int(3).Hash(), Real(3).Hash())
	assert.NotEqual(t, Ge(x, n).Hash(), Le(x, n).Hash())
}

func TestExpressionStrings(t *testing.T) {
	x, n := IntVar("x"), IntVar("n")
	tests := []struct {
		e        Expression
		expected string
	}{
		{Int(-3), "-3"},
		{Real(2.5), "2.5"},
		{Bool(true), "true"},
		{x, "x"},
		{Ge(x, Int(2)), "x ≥ 2"},
		{And(Gt(x, Int(2)), Lt(x, Int(4))), "(x > 2) ∧ (x < 4)"},
		{Or(Lt(x, n), Eq(x, n)), "(x < n) ∨ (x = n)"},
		{Not(Var("p", BoolSort)), "¬p"},
		{Ite(Var("p", BoolSort), x, n), "ite(p, x, n)"},
		{NewApplication(Var("f", FnSort), x, Int(1)), "f(x, 1)"},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, test.e.String())
	}
}

func TestFreeVariables(t *testing.T) {
	x, n, m := IntVar("x"), IntVar("n"), IntVar("m")
	vars := FreeVariables(And(Ge(x, n), Le(x, Add(n, m))))

	require.Equal(t, 3, vars.Len())
	assert.Equal(t, []*Variable{x, n, m}, vars.Slice(), "discovery order")
	assert.True(t, vars.Contains(IntVar("n")), "membership is structural")
	assert.False(t, vars.Remove(x).Contains(x))
	assert.True(t, vars.Intersects(FreeVariables(Gt(m, Int(0)))))
	assert.False(t, FreeVariables(Int(3)).Intersects(vars))
}
