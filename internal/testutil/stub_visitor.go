// Package testutil provides shared test helpers for the proplogic project.
package testutil

import "github.com/bawdo/proplogic/nodes"

// StubVisitor implements nodes.Visitor with a fully parenthesized,
// dialect-free rendering. Operators print as their names and negation as
// a leading '!', which keeps test expectations independent of the
// dialect printers.
type StubVisitor struct{}

var _ nodes.Visitor = StubVisitor{}

func (sv StubVisitor) VisitVariable(n *nodes.Node) string {
	if n.Negated {
		return "!" + n.Name
	}
	return n.Name
}

func (sv StubVisitor) VisitBinary(n *nodes.Node) string {
	s := "(" + n.Left.Accept(sv) + " " + n.Op.String() + " " + n.Right.Accept(sv) + ")"
	if n.Negated {
		return "!" + s
	}
	return s
}
