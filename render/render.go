// Package render draws split trees and symbolic expressions as Graphviz
// graphs.
//
// The emitted DOT source is deterministic: node ids are assigned in
// preorder and attributes render in sorted order, so two structurally
// equal inputs produce byte-identical output.
package render

import (
	"fmt"

	"github.com/au-prob/gamut/symbolic"
	"github.com/au-prob/gamut/symbolic/interval"
	"github.com/fatih/color"
)

// SplitTreeGraph lays t out with branch conditions on diamond nodes and
// dotted intervals on leaves; leaves over an empty domain are filled.
// Callers may set a title on the result before rendering.
func SplitTreeGraph(t interval.SplitTree) *DotGraph {
	b := builder{graph: &DotGraph{Name: "splittree"}}
	b.tree(t)
	return b.graph
}

// SplitTreeDot renders t as DOT source.
func SplitTreeDot(t interval.SplitTree) []byte {
	return SplitTreeGraph(t).Bytes()
}

// ExpressionGraph lays e out as its syntax tree, one node per
// subexpression occurrence.
func ExpressionGraph(e symbolic.Expression) *DotGraph {
	b := builder{graph: &DotGraph{Name: "expression"}}
	b.expr(e)
	return b.graph
}

// ExpressionDot renders e as DOT source.
func ExpressionDot(e symbolic.Expression) []byte {
	return ExpressionGraph(e).Bytes()
}

type builder struct {
	graph *DotGraph
}

func (b *builder) node(attrs DotAttrs) *DotNode {
	n := &DotNode{ID: fmt.Sprintf("n%d", len(b.graph.Nodes)), Attrs: attrs}
	b.graph.Nodes = append(b.graph.Nodes, n)
	return n
}

func (b *builder) edge(from, to *DotNode, attrs DotAttrs) {
	b.graph.Edges = append(b.graph.Edges, &DotEdge{From: from, To: to, Attrs: attrs})
}

func (b *builder) tree(t interval.SplitTree) *DotNode {
	if t.IsLeaf() {
		d := t.Leaf().Dotted()
		attrs := DotAttrs{"label": plainString(d)}
		if d.Interval().IsEmpty() {
			attrs["style"] = "filled"
			attrs["fillcolor"] = "mistyrose"
		}
		return b.node(attrs)
	}

	br := t.Branch()
	n := b.node(DotAttrs{"label": plainString(br.Cond()), "shape": "diamond"})
	b.edge(n, b.tree(br.Then()), DotAttrs{"label": "true"})
	b.edge(n, b.tree(br.Else()), DotAttrs{"label": "false", "style": "dashed"})
	return n
}

func (b *builder) expr(e symbolic.Expression) *DotNode {
	a, ok := e.(*symbolic.Application)
	if !ok {
		return b.node(DotAttrs{"label": plainString(e)})
	}

	var label string
	if op, ok := a.AppliedOp(); ok {
		label = op.String()
	} else {
		label = plainString(a.Fn())
	}
	n := b.node(DotAttrs{"label": label, "shape": "ellipse"})
	for _, arg := range a.Args() {
		b.edge(n, b.expr(arg), nil)
	}
	return n
}

// plainString renders s without ANSI escapes; DOT labels are plain text.
func plainString(s fmt.Stringer) string {
	was := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = was }()
	return s.String()
}
