// Package visitors provides dialect printers that walk the syntax tree.
package visitors

import (
	"strings"

	"github.com/bawdo/proplogic/nodes"
)

// Operator spellings per dialect, indexed by nodes.Operator.
var dialectSpellings = [...][7]string{
	nodes.Pseudo: {
		nodes.OpNot:     "not ",
		nodes.OpAnd:     "and",
		nodes.OpOr:      "or",
		nodes.OpImplies: "implies",
		nodes.OpIff:     "iff",
		nodes.OpNand:    "nand",
		nodes.OpNor:     "nor",
	},
	nodes.Logic: {
		nodes.OpNot:     "~",
		nodes.OpAnd:     "^",
		nodes.OpOr:      "v",
		nodes.OpImplies: "->",
		nodes.OpIff:     "<->",
		nodes.OpNand:    "|",
		nodes.OpNor:     "⬇",
	},
	nodes.Code: {
		nodes.OpNot:     "!",
		nodes.OpAnd:     "&&",
		nodes.OpOr:      "||",
		nodes.OpImplies: "->",
		nodes.OpIff:     "<->",
		nodes.OpNand:    "|",
		nodes.OpNor:     "⬇",
	},
	nodes.Boolean: {
		nodes.OpNot:     "-",
		nodes.OpAnd:     "*",
		nodes.OpOr:      "+",
		nodes.OpImplies: "->",
		nodes.OpIff:     "<->",
		nodes.OpNand:    "-*",
		nodes.OpNor:     "-+",
	},
}

// Spelling returns how dialect d writes op.
func Spelling(d nodes.Dialect, op nodes.Operator) string {
	return dialectSpellings[d][op]
}

// baseVisitor implements the printing shared by all dialects.
// Dialect-specific visitors embed *baseVisitor and set the outer field to
// themselves, enabling correct virtual dispatch through the Visitor interface.
type baseVisitor struct {
	// outer is the concrete dialect visitor. All recursive Accept calls
	// go through outer so that dialect overrides are respected.
	outer nodes.Visitor

	// spell holds the operator spellings, indexed by nodes.Operator.
	spell [7]string
}

func (b *baseVisitor) VisitVariable(n *nodes.Node) string {
	if n.Negated {
		return b.spell[nodes.OpNot] + n.Name
	}
	return n.Name
}

func (b *baseVisitor) VisitBinary(n *nodes.Node) string {
	inner := b.operand(n.Left) + " " + b.spell[n.Op] + " " + b.operand(n.Right)
	if n.Negated {
		return b.spell[nodes.OpNot] + "(" + inner + ")"
	}
	return inner
}

// operand renders a child, wrapping non-negated binary children in
// parentheses. A negated binary child already carries its own.
func (b *baseVisitor) operand(n *nodes.Node) string {
	s := n.Accept(b.outer)
	if n.Kind == nodes.KindBinary && !n.Negated {
		return "(" + s + ")"
	}
	return s
}

// ForDialect returns the printer for dialect d.
func ForDialect(d nodes.Dialect) nodes.Visitor {
	switch d {
	case nodes.Pseudo:
		return NewPseudoVisitor()
	case nodes.Code:
		return NewCodeVisitor()
	case nodes.Boolean:
		return NewBooleanVisitor()
	default:
		return NewLogicVisitor()
	}
}

// Render prints n in the dialect carried by its root.
func Render(n *nodes.Node) string {
	return n.Accept(ForDialect(n.Dialect))
}

// Canonical spellings produced by the minimizer.
const (
	CanonicalAnd = "AND"
	CanonicalOr  = "OR"
	CanonicalNot = "NOT "
)

// RenderCanonical substitutes the canonical AND, OR and "NOT " tokens of a
// minimized expression with the spellings of dialect d.
func RenderCanonical(canonical string, d nodes.Dialect) string {
	r := strings.NewReplacer(
		CanonicalAnd, Spelling(d, nodes.OpAnd),
		CanonicalOr, Spelling(d, nodes.OpOr),
		CanonicalNot, Spelling(d, nodes.OpNot),
	)
	return r.Replace(canonical)
}
