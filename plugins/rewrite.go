package plugins

import "github.com/bawdo/proplogic/nodes"

// Rewrite rebuilds the tree bottom-up: each binary node is copied with its
// rewritten children and then passed to fn, as is every variable. The
// input tree is left untouched.
func Rewrite(n *nodes.Node, fn func(*nodes.Node) *nodes.Node) *nodes.Node {
	if n.Kind == nodes.KindVariable {
		return fn(nodes.Var(n.Name, n.Negated, n.Dialect))
	}
	left := Rewrite(n.Left, fn)
	right := Rewrite(n.Right, fn)
	return fn(nodes.Binary(left, n.Op, right, n.Negated, n.Dialect))
}

// Clone returns a deep copy of n.
func Clone(n *nodes.Node) *nodes.Node {
	return n.WithDialect(n.Dialect)
}

// Count returns how many nodes in the tree satisfy match.
func Count(n *nodes.Node, match func(*nodes.Node) bool) int {
	total := 0
	n.Walk(func(c *nodes.Node) {
		if match(c) {
			total++
		}
	})
	return total
}
