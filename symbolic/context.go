package symbolic

import (
	"strings"

	"github.com/benbjohnson/immutable"
)

type varHasher struct{}

func (varHasher) Hash(v *Variable) uint32   { return v.Hash() }
func (varHasher) Equal(a, b *Variable) bool { return a.SyntacticEq(b) }

// Context is a symbolic evaluation context: an ordered conjunction of
// assumed constraints plus concrete variable bindings. Contexts are
// immutable; Assume and Bind return extended copies.
type Context struct {
	assumptions *immutable.List[Expression]
	bindings    *immutable.Map[*Variable, *Constant]
}

// TrueContext creates the empty context, which assumes nothing and is
// trivially satisfiable.
func TrueContext() Context {
	return Context{
		assumptions: immutable.NewList[Expression](),
		bindings:    immutable.NewMap[*Variable, *Constant](varHasher{}),
	}
}

// Assume extends the context with a constraint. Assumption order is
// preserved for consumers that fold constraints in discovery order.
func (c Context) Assume(e Expression) Context {
	res := c.init()
	res.assumptions = res.assumptions.Append(e)
	return res
}

// Bind extends the context with a concrete value for v, shadowing any
// previous binding.
func (c Context) Bind(v *Variable, val *Constant) Context {
	res := c.init()
	res.bindings = res.bindings.Set(v, val)
	return res
}

func (c Context) init() Context {
	if c.assumptions == nil {
		c.assumptions = immutable.NewList[Expression]()
	}
	if c.bindings == nil {
		c.bindings = immutable.NewMap[*Variable, *Constant](varHasher{})
	}
	return c
}

// Value looks up the binding of v.
func (c Context) Value(v *Variable) (*Constant, bool) {
	if c.bindings == nil {
		return nil, false
	}
	return c.bindings.Get(v)
}

// Bindings returns the variable bindings of the context.
func (c Context) Bindings() *immutable.Map[*Variable, *Constant] {
	return c.init().bindings
}

// Assumptions returns the assumed constraints in assumption order.
func (c Context) Assumptions() []Expression {
	if c.assumptions == nil {
		return nil
	}
	res := make([]Expression, 0, c.assumptions.Len())
	itr := c.assumptions.Iterator()
	for !itr.Done() {
		_, e := itr.Next()
		res = append(res, e)
	}
	return res
}

// Formula returns the conjunction of all assumptions.
func (c Context) Formula() Expression {
	return And(c.Assumptions()...)
}

// Resolve substitutes every bound variable in e by its bound constant.
func (c Context) Resolve(e Expression) Expression {
	if c.bindings == nil {
		return e
	}
	itr := c.bindings.Iterator()
	for {
		v, val, ok := itr.Next()
		if !ok {
			break
		}
		e = e.Replace(v, val)
	}
	return e
}

// Satisfiable conservatively decides whether the assumptions admit a model.
// Ground assumptions are evaluated after resolving bindings, and pairs of
// syntactically contradictory assumptions answer False. Everything beyond
// that answers Unknown; the context performs no solver-level reasoning.
func (c Context) Satisfiable() Truth {
	res := True
	as := c.Assumptions()
	for i, a := range as {
		switch v, ok := groundValue(c.Resolve(a)); {
		case ok && v == false:
			return False
		case !ok || v != true:
			res = Unknown
		}
		na := Not(a)
		for _, b := range as[i+1:] {
			if na.SyntacticEq(b) {
				return False
			}
		}
	}
	return res
}

func (c Context) String() string {
	strs := []string{}
	for _, a := range c.Assumptions() {
		strs = append(strs, paren(a))
	}
	if c.bindings != nil {
		itr := c.bindings.Iterator()
		for {
			v, val, ok := itr.Next()
			if !ok {
				break
			}
			strs = append(strs, v.String()+" ↦ "+val.String())
		}
	}
	if len(strs) == 0 {
		return "⟨true⟩"
	}
	return "⟨" + strings.Join(strs, " ∧ ") + "⟩"
}
