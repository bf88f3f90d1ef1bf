// Package nnf provides a Transformer that rewrites a tree into negation
// normal form: only AND and OR remain, and NOT applies to variables only.
// Derived operators are expanded first, then negations are pushed down
// with De Morgan's laws.
//
//	proplogic> ~(a ^ (b -> c))
//	proplogic> plugin nnf
//	~a v (b ^ ~c)
package nnf

import (
	"github.com/bawdo/proplogic/nodes"
	"github.com/bawdo/proplogic/plugins"
	"github.com/bawdo/proplogic/plugins/expand"
)

// NNF is a Transformer producing negation normal form.
type NNF struct {
	plugins.BaseTransformer
	expand *expand.Expand
}

// New creates an NNF transformer.
func New() *NNF {
	return &NNF{expand: expand.New()}
}

// Transform returns the negation normal form of root.
func (t *NNF) Transform(root *nodes.Node) (*nodes.Node, error) {
	expanded, err := t.expand.Transform(root)
	if err != nil {
		return nil, err
	}
	return push(expanded, false), nil
}

// push rebuilds n with negate applied on top of its own flag, moving any
// negation of an AND or OR onto its operands.
func push(n *nodes.Node, negate bool) *nodes.Node {
	negated := n.Negated != negate
	if n.Kind == nodes.KindVariable {
		return nodes.Var(n.Name, negated, n.Dialect)
	}
	op := n.Op
	if negated {
		switch op {
		case nodes.OpAnd:
			op = nodes.OpOr
		case nodes.OpOr:
			op = nodes.OpAnd
		}
	}
	return nodes.Binary(push(n.Left, negated), op, push(n.Right, negated), false, n.Dialect)
}

// IsNNF reports whether the tree is already in negation normal form.
func IsNNF(root *nodes.Node) bool {
	return plugins.Count(root, func(n *nodes.Node) bool {
		if n.Kind == nodes.KindVariable {
			return false
		}
		return n.Negated || (n.Op != nodes.OpAnd && n.Op != nodes.OpOr)
	}) == 0
}
