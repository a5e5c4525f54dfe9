// Package indenter renders nested block structures with one level of
// indentation per block.
package indenter

import (
	"fmt"
	"strings"
)

const indentation = "    "

// Printer accumulates a block-structured pretty-printed string. A block
// opens with Start, nests members one level deeper and closes with End.
// Members spanning multiple lines are re-indented line by line, so the
// String of a nested structure composes without knowing its final depth.
type Printer struct {
	buf strings.Builder
}

// Indenter creates a fresh printer.
func Indenter() *Printer {
	return &Printer{}
}

// Start opens a block with a header line.
func (p *Printer) Start(header string) *Printer {
	p.buf.WriteString(header)
	p.buf.WriteByte('\n')
	return p
}

// Nest renders each member as an indented block on its own lines.
func (p *Printer) Nest(members ...fmt.Stringer) *Printer {
	for _, m := range members {
		p.block(m.String())
	}
	return p
}

// NestStrings renders each string as an indented block on its own lines.
func (p *Printer) NestStrings(strs ...string) *Printer {
	for _, s := range strs {
		p.block(s)
	}
	return p
}

// NestThunked renders the result of each thunk as an indented block.
func (p *Printer) NestThunked(fs ...func() string) *Printer {
	for _, f := range fs {
		p.block(f())
	}
	return p
}

// Else closes the open block and opens a sibling block on the same line,
// as in "} else {".
func (p *Printer) Else(line string) *Printer {
	p.buf.WriteString(line)
	p.buf.WriteByte('\n')
	return p
}

// End closes the block with a footer line and yields the accumulated
// string, without a trailing line break.
func (p *Printer) End(footer string) string {
	p.buf.WriteString(footer)
	return p.buf.String()
}

func (p *Printer) block(s string) {
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		p.buf.WriteString(indentation)
		p.buf.WriteString(line)
		p.buf.WriteByte('\n')
	}
}
