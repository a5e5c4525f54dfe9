package parse

import (
	"testing"

	"github.com/au-prob/gamut/symbolic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConstraints(t *testing.T) {
	x := symbolic.IntVar("x")
	n := symbolic.IntVar("n")
	y := symbolic.Var("y", symbolic.RealSort)

	tests := []struct {
		src      string
		expected symbolic.Expression
	}{
		{
			"x > 2 && x < 4",
			symbolic.And(symbolic.Gt(x, symbolic.Int(2)), symbolic.Lt(x, symbolic.Int(4))),
		},
		{
			"x >= 0 || x == n",
			symbolic.Or(symbolic.Ge(x, symbolic.Int(0)), symbolic.Eq(x, n)),
		},
		{
			// Chained conjunctions flatten into one connective.
			"x > 0 && x < 9 && x != 5",
			symbolic.And(
				symbolic.Gt(x, symbolic.Int(0)),
				symbolic.Lt(x, symbolic.Int(9)),
				symbolic.Ne(x, symbolic.Int(5))),
		},
		{
			// Negated comparisons lower to the flipped operator.
			"!(x < 5)",
			symbolic.Ge(x, symbolic.Int(5)),
		},
		{
			"x % 2 == 0",
			symbolic.Eq(symbolic.Rem(x, symbolic.Int(2)), symbolic.Int(0)),
		},
		{
			"x + n*2 <= 10",
			symbolic.Le(symbolic.Add(x, symbolic.Mul(n, symbolic.Int(2))), symbolic.Int(10)),
		},
		{
			"-x < 3",
			symbolic.Lt(symbolic.Neg(x), symbolic.Int(3)),
		},
		{
			"2.5 <= y",
			symbolic.Le(symbolic.Real(2.5), y),
		},
		{
			"ite(x > 5, x, 0) == x",
			symbolic.Eq(symbolic.Ite(symbolic.Gt(x, symbolic.Int(5)), x, symbolic.Int(0)), x),
		},
		{
			"true",
			symbolic.Bool(true),
		},
	}

	for _, test := range tests {
		t.Run(test.src, func(t *testing.T) {
			res, err := Parse(test.src, x, n, y)
			require.NoError(t, err)
			assert.True(t, res.SyntacticEq(test.expected), "got %v", res)
		})
	}
}

func TestParseFoldsGround(t *testing.T) {
	tests := []struct {
		src      string
		expected symbolic.Expression
	}{
		{"3*4 - 2", symbolic.Int(10)},
		{"7/2", symbolic.Int(3)},
		{"-7/2", symbolic.Int(-3)},
		{"1/0", symbolic.Div(symbolic.Int(1), symbolic.Int(0))},
	}

	for _, test := range tests {
		t.Run(test.src, func(t *testing.T) {
			res, err := Parse(test.src)
			require.NoError(t, err)
			assert.True(t, res.SyntacticEq(test.expected), "got %v", res)
		})
	}
}

func TestParseVariableIdentity(t *testing.T) {
	x := symbolic.IntVar("x")
	res, err := Parse("x", x)
	require.NoError(t, err)
	assert.Same(t, x, res)
}

func TestParseErrors(t *testing.T) {
	x := symbolic.IntVar("x")

	_, err := Parse("x >", x)
	assert.ErrorContains(t, err, `parse "x >"`)

	_, err = Parse("y > 2", x)
	undeclared := &UndeclaredError{}
	require.ErrorAs(t, err, &undeclared)
	assert.Equal(t, "y", undeclared.Name)

	// Undeclared identifiers surface from nested positions too.
	_, err = Parse("ite(x > 0, y, 0)", x)
	require.ErrorAs(t, err, &undeclared)
	assert.Equal(t, "y", undeclared.Name)

	unsupported := []string{
		"x << 2",
		"x[0] > 1",
		"f(x) > 2",
		`"a" == x`,
		"func() {}",
	}
	for _, src := range unsupported {
		_, err := Parse(src, x)
		unsErr := &UnsupportedSyntaxError{}
		require.ErrorAs(t, err, &unsErr, "parsing %s", src)
		assert.ErrorContains(t, err, "does not denote a constraint")
	}
}

func TestParseRoundTripsArithmetic(t *testing.T) {
	x := symbolic.IntVar("x")
	n := symbolic.IntVar("n")

	// Arithmetic renders in Go syntax, so printing and reparsing is the
	// identity up to structure. Comparisons and connectives print their
	// mathematical glyphs and are excluded on purpose.
	exprs := []symbolic.Expression{
		symbolic.Add(x, symbolic.Int(3)),
		symbolic.Sub(symbolic.Mul(x, symbolic.Int(4)), n),
		symbolic.Div(n, symbolic.Int(2)),
		symbolic.Rem(symbolic.Add(x, n), symbolic.Int(7)),
	}
	for _, e := range exprs {
		parsed, err := Parse(e.String(), x, n)
		require.NoError(t, err, "reparsing %s", e)
		assert.True(t, parsed.SyntacticEq(e), "%s reparsed as %s", e, parsed)
	}
}
