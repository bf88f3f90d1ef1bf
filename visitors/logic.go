package visitors

import "github.com/bawdo/proplogic/nodes"

// LogicVisitor prints logic symbols: "~a ^ (b v c)".
type LogicVisitor struct {
	*baseVisitor
}

// NewLogicVisitor creates a LogicVisitor ready for use.
func NewLogicVisitor() *LogicVisitor {
	v := &LogicVisitor{}
	v.baseVisitor = &baseVisitor{outer: v, spell: dialectSpellings[nodes.Logic]}
	return v
}
