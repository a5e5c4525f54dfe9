package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"

	"github.com/goccy/go-graphviz"
)

const tmplNode = `{{define "node" -}}
	{{printf "%q [%s]" .ID .Attrs}}
{{- end}}`

const tmplEdge = `{{define "edge" -}}
	{{printf "%q -> %q [%s]" .From .To .Attrs}}
{{- end}}`

const tmplGraph = `digraph {{.Name}} {
	label={{printf "%q" .Title}};
	labelloc="t";
	fontname="Helvetica";
	rankdir="TB";

	node [shape="box" fontname="Helvetica"];
{{range .Nodes}}	{{template "node" .}}
{{end}}{{range .Edges}}	{{template "edge" .}}
{{end}}}
`

// DotAttrs is a DOT attribute list. Attributes render sorted by key, so
// emitted source is stable across runs.
type DotAttrs map[string]string

func (p DotAttrs) List() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	l := make([]string, len(keys))
	for i, k := range keys {
		l[i] = fmt.Sprintf("%s=%q", k, p[k])
	}
	return l
}

func (p DotAttrs) String() string {
	return strings.Join(p.List(), " ")
}

// DotNode is a graph node named by its ID.
type DotNode struct {
	ID    string
	Attrs DotAttrs
}

func (n *DotNode) String() string {
	return n.ID
}

// DotEdge is a directed edge between two nodes.
type DotEdge struct {
	From  *DotNode
	To    *DotNode
	Attrs DotAttrs
}

// DotGraph is a directed graph assembled for DOT output.
type DotGraph struct {
	Name  string
	Title string
	Nodes []*DotNode
	Edges []*DotEdge
}

// WriteDot emits the graph as DOT source.
func (g *DotGraph) WriteDot(w io.Writer) error {
	t := template.New("dot")
	for _, s := range []string{tmplNode, tmplEdge, tmplGraph} {
		if _, err := t.Parse(s); err != nil {
			return err
		}
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, g); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// Bytes renders the graph as DOT source. The templates are package
// constants, so rendering a well-formed graph cannot fail.
func (g *DotGraph) Bytes() []byte {
	var buf bytes.Buffer
	if err := g.WriteDot(&buf); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// WriteImage lays out DOT source and writes it to name through the
// embedded graphviz engine. The format is a graphviz output format name
// such as svg or png.
func WriteImage(name, format string, dot []byte) error {
	g := graphviz.New()
	graph, err := graphviz.ParseBytes(dot)
	if err != nil {
		return fmt.Errorf("parse dot source: %w", err)
	}
	defer func() {
		graph.Close()
		g.Close()
	}()
	return g.RenderFilename(graph, graphviz.Format(format), name)
}
