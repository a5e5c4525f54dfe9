package interval

import (
	"fmt"

	"github.com/au-prob/gamut/symbolic"
	"github.com/au-prob/gamut/utils/indenter"
)

// SplitTree is a decision tree over residual constraints. Internal nodes
// split on a condition, asserted true towards the then-subtree and false
// towards the else-subtree; leaves carry the dotted interval extracted
// from the bound constraints remaining on their path. Along any
// root-to-leaf path the accumulated conditions are mutually consistent,
// or the leaf wraps an empty interval.
type SplitTree interface {
	fmt.Stringer

	// Leaf safely converts the tree to a leaf node.
	Leaf() Leaf
	// Branch safely converts the tree to a branch node.
	Branch() Branch
	// IsLeaf checks whether the tree is a single leaf.
	IsLeaf() bool

	// Eq checks structural tree equality.
	Eq(SplitTree) bool
	// Walk visits every node depth-first, then-subtree before else.
	Walk(func(SplitTree))
	// Leaves collects the leaves left to right, then-subtree first.
	Leaves() []Leaf
}

// Leaf wraps the dotted interval of a fully folded residue.
type Leaf struct {
	dotted DottedIntervals
}

// NewLeaf wraps a dotted interval as a tree.
func NewLeaf(d DottedIntervals) Leaf {
	return Leaf{dotted: d}
}

// emptyLeaf is the leaf of a statically contradictory path.
func emptyLeaf() Leaf {
	return NewLeaf(NewDotted(Empty()))
}

// Dotted returns the dotted interval at the leaf.
func (l Leaf) Dotted() DottedIntervals {
	return l.dotted
}

// Leaf safely converts the tree to a leaf node.
func (l Leaf) Leaf() Leaf {
	return l
}

// Branch safely converts the tree to a branch node.
func (Leaf) Branch() Branch {
	panic(errUnsupportedTypeConversion)
}

// IsLeaf checks whether the tree is a single leaf.
func (Leaf) IsLeaf() bool {
	return true
}

// Eq checks structural tree equality.
func (l Leaf) Eq(o SplitTree) bool {
	return o.IsLeaf() && l.dotted.SyntacticEq(o.Leaf().dotted)
}

// Walk visits the leaf.
func (l Leaf) Walk(visit func(SplitTree)) {
	visit(l)
}

// Leaves collects the leaf itself.
func (l Leaf) Leaves() []Leaf {
	return []Leaf{l}
}

func (l Leaf) String() string {
	return l.dotted.String()
}

// Branch splits on a condition: the then-subtree assumes the condition
// holds, the else-subtree that it does not.
type Branch struct {
	cond symbolic.Expression
	then SplitTree
	els  SplitTree
}

// NewBranch creates a branch splitting on cond.
func NewBranch(cond symbolic.Expression, then, els SplitTree) Branch {
	return Branch{cond: cond, then: then, els: els}
}

// Cond returns the branch condition.
func (b Branch) Cond() symbolic.Expression {
	return b.cond
}

// Then returns the subtree under the asserted condition.
func (b Branch) Then() SplitTree {
	return b.then
}

// Else returns the subtree under the negated condition.
func (b Branch) Else() SplitTree {
	return b.els
}

// Leaf safely converts the tree to a leaf node.
func (Branch) Leaf() Leaf {
	panic(errUnsupportedTypeConversion)
}

// Branch safely converts the tree to a branch node.
func (b Branch) Branch() Branch {
	return b
}

// IsLeaf checks whether the tree is a single leaf.
func (Branch) IsLeaf() bool {
	return false
}

// Eq checks structural tree equality.
func (b Branch) Eq(o SplitTree) bool {
	if o.IsLeaf() {
		return false
	}
	ob := o.Branch()
	return b.cond.SyntacticEq(ob.cond) &&
		b.then.Eq(ob.then) &&
		b.els.Eq(ob.els)
}

// Walk visits the branch, then both subtrees.
func (b Branch) Walk(visit func(SplitTree)) {
	visit(b)
	b.then.Walk(visit)
	b.els.Walk(visit)
}

// Leaves collects the leaves of both subtrees.
func (b Branch) Leaves() []Leaf {
	return append(b.then.Leaves(), b.els.Leaves()...)
}

func (b Branch) String() string {
	return indenter.Indenter().
		Start(colorize.Keyword("if ") + b.cond.String() + colorize.Keyword(" {")).
		Nest(b.then).
		Else(colorize.Keyword("} else {")).
		Nest(b.els).
		End(colorize.Keyword("}"))
}
