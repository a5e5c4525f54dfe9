// Package parse turns Go expression syntax into symbolic expressions.
//
// Constraints in tests and on the command line read as ordinary Go, e.g.
// x > 2 && x < 4. The lowering accepts the boolean connectives,
// comparisons, arithmetic, integer and float literals, the conditional
// form ite(cond, then, else), and declared variables; every other
// expression form is rejected. Ground arithmetic folds during lowering,
// with Go's truncating integer division.
package parse

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strconv"

	"github.com/au-prob/gamut/symbolic"
	"golang.org/x/tools/go/ast/astutil"
)

// UndeclaredError reports an identifier with no declared variable.
type UndeclaredError struct {
	Name string
}

func (err *UndeclaredError) Error() string {
	return fmt.Sprintf("identifier %s is not declared", err.Name)
}

// UnsupportedSyntaxError reports a Go expression form with no constraint
// counterpart, such as indexing or function literals.
type UnsupportedSyntaxError struct {
	Node ast.Expr
}

func (err *UnsupportedSyntaxError) Error() string {
	return fmt.Sprintf("%s does not denote a constraint", types.ExprString(err.Node))
}

// Parse lowers src, a Go expression, into a symbolic expression. decls
// declares the variables identifiers may refer to; the literals true and
// false are built in.
func Parse(src string, decls ...*symbolic.Variable) (symbolic.Expression, error) {
	node, err := parser.ParseExpr(src)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", src, err)
	}
	scope := make(resolver, len(decls))
	for _, v := range decls {
		scope[v.Name()] = v
	}
	return scope.lower(node)
}

type resolver map[string]*symbolic.Variable

func (r resolver) lower(e ast.Expr) (symbolic.Expression, error) {
	switch e := astutil.Unparen(e).(type) {
	case *ast.BasicLit:
		return lowerLiteral(e)
	case *ast.Ident:
		return r.lowerIdent(e)
	case *ast.BinaryExpr:
		op, ok := symbolic.FromToken(e.Op)
		if !ok {
			return nil, &UnsupportedSyntaxError{Node: e}
		}
		x, err := r.lower(e.X)
		if err != nil {
			return nil, err
		}
		y, err := r.lower(e.Y)
		if err != nil {
			return nil, err
		}
		return symbolic.Build(op, x, y)
	case *ast.UnaryExpr:
		x, err := r.lower(e.X)
		if err != nil {
			return nil, err
		}
		switch e.Op {
		case token.NOT:
			return symbolic.Not(x), nil
		case token.SUB:
			return symbolic.Neg(x), nil
		case token.ADD:
			return x, nil
		}
		return nil, &UnsupportedSyntaxError{Node: e}
	case *ast.CallExpr:
		return r.lowerCall(e)
	default:
		return nil, &UnsupportedSyntaxError{Node: e}
	}
}

func lowerLiteral(lit *ast.BasicLit) (symbolic.Expression, error) {
	switch lit.Kind {
	case token.INT:
		v, err := strconv.ParseInt(lit.Value, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("integer literal %s: %w", lit.Value, err)
		}
		return symbolic.Int(v), nil
	case token.FLOAT:
		v, err := strconv.ParseFloat(lit.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("float literal %s: %w", lit.Value, err)
		}
		return symbolic.Real(v), nil
	}
	return nil, &UnsupportedSyntaxError{Node: lit}
}

func (r resolver) lowerIdent(id *ast.Ident) (symbolic.Expression, error) {
	switch id.Name {
	case "true":
		return symbolic.Bool(true), nil
	case "false":
		return symbolic.Bool(false), nil
	}
	if v, ok := r[id.Name]; ok {
		return v, nil
	}
	return nil, &UndeclaredError{Name: id.Name}
}

// lowerCall accepts the conditional form ite(cond, then, else). No other
// call denotes a constraint.
func (r resolver) lowerCall(call *ast.CallExpr) (symbolic.Expression, error) {
	fn, ok := astutil.Unparen(call.Fun).(*ast.Ident)
	if !ok || fn.Name != "ite" || len(call.Args) != 3 {
		return nil, &UnsupportedSyntaxError{Node: call}
	}
	args := make([]symbolic.Expression, len(call.Args))
	for i, a := range call.Args {
		e, err := r.lower(a)
		if err != nil {
			return nil, err
		}
		args[i] = e
	}
	return symbolic.Ite(args[0], args[1], args[2]), nil
}
