// Package expand provides a Transformer that rewrites the derived
// operators IMPLIES, IFF, NAND and NOR in terms of AND, OR and NOT.
//
// # Basic usage
//
//	m, _ := proplogic.New("a -> b")
//	m.Use(expand.New())
//	// ~a v b
//
// # Restrict to specific operators
//
//	e := expand.New(expand.WithOperators(nodes.OpIff))
//	// a <-> (b -> c) becomes (a ^ (b -> c)) v (~a ^ ~(b -> c))
//
// # REPL usage
//
//	proplogic> plugin expand
//	proplogic> plugin expand implies iff
//	proplogic> plugin off expand
package expand

import (
	"github.com/bawdo/proplogic/nodes"
	"github.com/bawdo/proplogic/plugins"
)

// Expand is a Transformer that replaces derived operators with
// equivalent AND/OR/NOT forms.
type Expand struct {
	plugins.BaseTransformer
	ops map[nodes.Operator]bool // nil means every derived operator
}

// Option configures an Expand transformer.
type Option func(*Expand)

// WithOperators restricts the rewrite to the given operators. Operators
// other than IMPLIES, IFF, NAND and NOR are ignored.
func WithOperators(ops ...nodes.Operator) Option {
	return func(e *Expand) {
		e.ops = make(map[nodes.Operator]bool, len(ops))
		for _, op := range ops {
			e.ops[op] = true
		}
	}
}

// New creates an Expand transformer with the given options.
func New(opts ...Option) *Expand {
	e := &Expand{}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Operators lists the operators this transformer rewrites.
func (e *Expand) Operators() []nodes.Operator {
	var out []nodes.Operator
	for _, op := range []nodes.Operator{nodes.OpImplies, nodes.OpIff, nodes.OpNand, nodes.OpNor} {
		if e.appliesTo(op) {
			out = append(out, op)
		}
	}
	return out
}

func (e *Expand) appliesTo(op nodes.Operator) bool {
	if e.ops == nil {
		return true
	}
	return e.ops[op]
}

// Transform rewrites every selected derived operator in the tree.
func (e *Expand) Transform(root *nodes.Node) (*nodes.Node, error) {
	return plugins.Rewrite(root, e.rewrite), nil
}

func (e *Expand) rewrite(n *nodes.Node) *nodes.Node {
	if n.Kind != nodes.KindBinary || !e.appliesTo(n.Op) {
		return n
	}
	d := n.Dialect
	switch n.Op {
	case nodes.OpImplies:
		// l -> r  ==  ~l v r
		return nodes.Binary(n.Left.Not(), nodes.OpOr, n.Right, n.Negated, d)
	case nodes.OpIff:
		// l <-> r  ==  (l ^ r) v (~l ^ ~r)
		both := nodes.Binary(n.Left, nodes.OpAnd, n.Right, false, d)
		neither := nodes.Binary(plugins.Clone(n.Left).Not(), nodes.OpAnd, plugins.Clone(n.Right).Not(), false, d)
		return nodes.Binary(both, nodes.OpOr, neither, n.Negated, d)
	case nodes.OpNand:
		return nodes.Binary(n.Left, nodes.OpAnd, n.Right, !n.Negated, d)
	case nodes.OpNor:
		return nodes.Binary(n.Left, nodes.OpOr, n.Right, !n.Negated, d)
	}
	return n
}
