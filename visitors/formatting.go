package visitors

import (
	"strings"

	"github.com/bawdo/proplogic/nodes"
)

// FormattingVisitor wraps a dialect visitor and produces human-readable
// multi-line output. Every binary operator starts a new line, and nested
// binaries are indented inside their parentheses:
//
//	a
//	^ (
//	  b
//	  v c
//	)
type FormattingVisitor struct {
	inner nodes.Visitor
	spell [7]string
}

var _ nodes.Visitor = (*FormattingVisitor)(nil)

// speller is implemented by the dialect visitors in this package.
type speller interface {
	spellings() [7]string
}

func (b *baseVisitor) spellings() [7]string { return b.spell }

// NewFormattingVisitor constructs a FormattingVisitor wrapping the given
// dialect visitor. Visitors from outside this package fall back to the
// logic spellings for operators.
func NewFormattingVisitor(inner nodes.Visitor) *FormattingVisitor {
	if inner == nil {
		panic("proplogic: FormattingVisitor requires a non-nil inner visitor")
	}
	f := &FormattingVisitor{inner: inner, spell: dialectSpellings[nodes.Logic]}
	if s, ok := inner.(speller); ok {
		f.spell = s.spellings()
	}
	return f
}

func (f *FormattingVisitor) VisitVariable(n *nodes.Node) string {
	return f.inner.VisitVariable(n)
}

func (f *FormattingVisitor) VisitBinary(n *nodes.Node) string {
	if n.Negated {
		return f.operand(n, 0)
	}
	return f.body(n, 0)
}

func (f *FormattingVisitor) body(n *nodes.Node, depth int) string {
	return f.operand(n.Left, depth) + "\n" + pad(depth) + f.spell[n.Op] + " " + f.operand(n.Right, depth)
}

func (f *FormattingVisitor) operand(n *nodes.Node, depth int) string {
	if n.Kind != nodes.KindBinary {
		return f.inner.VisitVariable(n)
	}
	open := "("
	if n.Negated {
		open = f.spell[nodes.OpNot] + "("
	}
	return open + "\n" + pad(depth+1) + f.body(n, depth+1) + "\n" + pad(depth) + ")"
}

func pad(depth int) string {
	return strings.Repeat("  ", depth)
}
