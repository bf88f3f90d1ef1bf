package visitors

import "github.com/bawdo/proplogic/nodes"

// CodeVisitor prints programming operators: "!a && (b || c)".
type CodeVisitor struct {
	*baseVisitor
}

// NewCodeVisitor creates a CodeVisitor ready for use.
func NewCodeVisitor() *CodeVisitor {
	v := &CodeVisitor{}
	v.baseVisitor = &baseVisitor{outer: v, spell: dialectSpellings[nodes.Code]}
	return v
}
