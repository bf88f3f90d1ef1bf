// Package nodes defines the syntax tree used to represent propositional
// logic expressions.
package nodes

import (
	"sort"
	"strings"
)

// Kind tags the variant held by a Node.
type Kind int

const (
	KindVariable Kind = iota
	KindBinary
)

func (k Kind) String() string {
	switch k {
	case KindVariable:
		return "Variable"
	case KindBinary:
		return "BinaryOp"
	}
	return "Unknown"
}

// ValidVariables lists every letter that may name a variable. The letter
// 'v' is reserved for the logic-dialect OR operator.
const ValidVariables = "abcdefghijklmnopqrstuwxyz"

// IsVariable reports whether c is a valid variable letter.
func IsVariable(c byte) bool {
	return strings.IndexByte(ValidVariables, c) >= 0
}

// Node is a tagged union over variable leaves and binary operator nodes.
// Variable nodes use Name; binary nodes use Left, Right and Op. Negated
// applies to the node's whole value in both cases.
//
// A Node owns its children: trees are never shared or mutated after
// construction, so transformations always build new nodes.
type Node struct {
	Kind    Kind
	Name    string // variable name (KindVariable)
	Left    *Node  // left operand (KindBinary)
	Right   *Node  // right operand (KindBinary)
	Op      Operator
	Negated bool
	Dialect Dialect // spelling used when the node is printed
}

// Visitor defines the interface for walking the tree and producing output.
// Concrete visitors (one per dialect, DOT) implement this interface.
type Visitor interface {
	VisitVariable(node *Node) string
	VisitBinary(node *Node) string
}

// Var creates a variable leaf.
func Var(name string, negated bool, dialect Dialect) *Node {
	return &Node{Kind: KindVariable, Name: name, Negated: negated, Dialect: dialect}
}

// Binary creates a binary operator node owning left and right.
func Binary(left *Node, op Operator, right *Node, negated bool, dialect Dialect) *Node {
	return &Node{
		Kind:    KindBinary,
		Left:    left,
		Right:   right,
		Op:      op,
		Negated: negated,
		Dialect: dialect,
	}
}

// Accept dispatches to the visitor method matching the node's kind.
func (n *Node) Accept(v Visitor) string {
	switch n.Kind {
	case KindVariable:
		return v.VisitVariable(n)
	case KindBinary:
		return v.VisitBinary(n)
	}
	panic("nodes: unknown node kind " + n.Kind.String())
}

// IsVariable reports whether n is a variable leaf.
func (n *Node) IsVariable() bool { return n.Kind == KindVariable }

// WithNegation returns a shallow copy of n with the negation flag set to
// negated. Children are shared with n, which is safe because trees are
// immutable.
func (n *Node) WithNegation(negated bool) *Node {
	c := *n
	c.Negated = negated
	return &c
}

// WithDialect returns a deep copy of the tree printed in dialect d.
func (n *Node) WithDialect(d Dialect) *Node {
	c := *n
	c.Dialect = d
	if n.Kind == KindBinary {
		c.Left = n.Left.WithDialect(d)
		c.Right = n.Right.WithDialect(d)
	}
	return &c
}

// Variables returns the sorted distinct variable names in the tree.
func (n *Node) Variables() []string {
	seen := make(map[string]bool)
	n.walk(func(c *Node) {
		if c.Kind == KindVariable {
			seen[c.Name] = true
		}
	})
	vars := make([]string, 0, len(seen))
	for v := range seen {
		vars = append(vars, v)
	}
	sort.Strings(vars)
	return vars
}

// Walk calls fn for every node in post-order (left, right, self).
func (n *Node) Walk(fn func(*Node)) {
	n.walk(fn)
}

func (n *Node) walk(fn func(*Node)) {
	if n.Kind == KindBinary {
		n.Left.walk(fn)
		n.Right.walk(fn)
	}
	fn(n)
}

// Depth returns the height of the tree; a single variable has depth 1.
func (n *Node) Depth() int {
	if n.Kind == KindVariable {
		return 1
	}
	return 1 + max(n.Left.Depth(), n.Right.Depth())
}

// Equal reports whether two trees have the same structure. The dialect is
// ignored since it only affects spelling.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Kind != o.Kind || n.Negated != o.Negated {
		return false
	}
	switch n.Kind {
	case KindVariable:
		return n.Name == o.Name
	case KindBinary:
		return n.Op == o.Op && n.Left.Equal(o.Left) && n.Right.Equal(o.Right)
	}
	return false
}
