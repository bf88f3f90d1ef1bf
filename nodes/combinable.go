package nodes

// And creates a new node combining n and other with AND, printed in n's
// dialect.
func (n *Node) And(other *Node) *Node {
	return Binary(n, OpAnd, other, false, n.Dialect)
}

// Or creates a new node combining n and other with OR.
func (n *Node) Or(other *Node) *Node {
	return Binary(n, OpOr, other, false, n.Dialect)
}

// Implies creates a new node for n -> other.
func (n *Node) Implies(other *Node) *Node {
	return Binary(n, OpImplies, other, false, n.Dialect)
}

// Iff creates a new node for n <-> other.
func (n *Node) Iff(other *Node) *Node {
	return Binary(n, OpIff, other, false, n.Dialect)
}

// Not returns a copy of n with its negation flag inverted.
func (n *Node) Not() *Node {
	return n.WithNegation(!n.Negated)
}
