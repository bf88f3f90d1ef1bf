package visitors

import "github.com/bawdo/proplogic/nodes"

// BooleanVisitor prints Boolean algebra: "-a * (b + c)".
type BooleanVisitor struct {
	*baseVisitor
}

// NewBooleanVisitor creates a BooleanVisitor ready for use.
func NewBooleanVisitor() *BooleanVisitor {
	v := &BooleanVisitor{}
	v.baseVisitor = &baseVisitor{outer: v, spell: dialectSpellings[nodes.Boolean]}
	return v
}
