package symbolic

import "strings"

// VarSet is an insertion-ordered set of variables. Operations return fresh
// sets; the zero value is the empty set.
type VarSet struct {
	vars []*Variable
}

// Contains checks membership by structural variable equality.
func (s VarSet) Contains(v *Variable) bool {
	for _, m := range s.vars {
		if m.SyntacticEq(v) {
			return true
		}
	}
	return false
}

// Add extends the set with v, preserving insertion order.
func (s VarSet) Add(v *Variable) VarSet {
	if s.Contains(v) {
		return s
	}
	vars := make([]*Variable, len(s.vars), len(s.vars)+1)
	copy(vars, s.vars)
	return VarSet{vars: append(vars, v)}
}

// Remove drops v from the set.
func (s VarSet) Remove(v *Variable) VarSet {
	if !s.Contains(v) {
		return s
	}
	vars := make([]*Variable, 0, len(s.vars)-1)
	for _, m := range s.vars {
		if !m.SyntacticEq(v) {
			vars = append(vars, m)
		}
	}
	return VarSet{vars: vars}
}

// Union joins two sets, keeping the receiver's members first.
func (s VarSet) Union(o VarSet) VarSet {
	res := s
	for _, m := range o.vars {
		res = res.Add(m)
	}
	return res
}

// Intersects checks whether the sets share a member.
func (s VarSet) Intersects(o VarSet) bool {
	for _, m := range s.vars {
		if o.Contains(m) {
			return true
		}
	}
	return false
}

// Len returns the number of members.
func (s VarSet) Len() int {
	return len(s.vars)
}

// Slice returns the members in insertion order.
func (s VarSet) Slice() []*Variable {
	return s.vars
}

func (s VarSet) String() string {
	strs := make([]string, len(s.vars))
	for i, m := range s.vars {
		strs[i] = m.String()
	}
	return "{" + strings.Join(strs, ", ") + "}"
}

// FreeVariables collects the variables of e in discovery order. Every
// variable of the algebra is free; the algebra has no binders.
func FreeVariables(e Expression) VarSet {
	return freeVariables(e, VarSet{})
}

func freeVariables(e Expression, acc VarSet) VarSet {
	if v, ok := e.(*Variable); ok {
		return acc.Add(v)
	}
	for _, s := range e.Subexpressions() {
		acc = freeVariables(s, acc)
	}
	return acc
}
