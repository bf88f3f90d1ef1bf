// Package plugins defines the Transformer interface for syntax tree
// middleware applied before evaluation.
package plugins

import "github.com/bawdo/proplogic/nodes"

// Transformer is the interface that tree rewriting plugins implement.
// A transformer must return a tree with the same truth table as its input
// and must not modify the input.
type Transformer interface {
	Transform(root *nodes.Node) (*nodes.Node, error)
}

// BaseTransformer provides a no-op Transform. Plugins embed it and
// override Transform.
type BaseTransformer struct{}

func (BaseTransformer) Transform(n *nodes.Node) (*nodes.Node, error) {
	return n, nil
}
