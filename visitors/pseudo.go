package visitors

import "github.com/bawdo/proplogic/nodes"

// PseudoVisitor prints pseudo-English: "not a and (b or c)".
type PseudoVisitor struct {
	*baseVisitor
}

// NewPseudoVisitor creates a PseudoVisitor ready for use.
func NewPseudoVisitor() *PseudoVisitor {
	v := &PseudoVisitor{}
	v.baseVisitor = &baseVisitor{outer: v, spell: dialectSpellings[nodes.Pseudo]}
	return v
}
