package nodes

// Operator represents a logical operator. OpNot is only ever carried as a
// node's Negated flag; the rest label binary nodes.
type Operator int

const (
	OpNot Operator = iota
	OpAnd
	OpOr
	OpImplies
	OpIff
	OpNand
	OpNor
)

var operatorNames = [...]string{
	OpNot:     "NOT",
	OpAnd:     "AND",
	OpOr:      "OR",
	OpImplies: "IMPLIES",
	OpIff:     "IFF",
	OpNand:    "NAND",
	OpNor:     "NOR",
}

func (op Operator) String() string {
	if op < 0 || int(op) >= len(operatorNames) {
		return "UNKNOWN"
	}
	return operatorNames[op]
}

// IsBinary reports whether op joins two operands.
func (op Operator) IsBinary() bool {
	return op >= OpAnd && op <= OpNor
}

// Apply computes the operator over two operand values.
func (op Operator) Apply(left, right bool) bool {
	switch op {
	case OpAnd:
		return left && right
	case OpOr:
		return left || right
	case OpImplies:
		return !left || right
	case OpIff:
		return left == right
	case OpNand:
		return !(left && right)
	case OpNor:
		return !(left || right)
	}
	panic("nodes: operator " + op.String() + " is not binary")
}

// Operators lists the binary operators in declaration order.
func Operators() []Operator {
	return []Operator{OpAnd, OpOr, OpImplies, OpIff, OpNand, OpNor}
}
