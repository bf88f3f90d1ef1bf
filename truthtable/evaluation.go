// Package truthtable enumerates assignments and evaluates syntax trees
// across every row of a truth table.
package truthtable

import (
	"github.com/bawdo/proplogic/nodes"
	"github.com/bawdo/proplogic/visitors"
	"golang.org/x/sync/errgroup"
)

// LabeledEvaluation is the value of one sub-expression on one row.
type LabeledEvaluation struct {
	Label      string
	Row        int
	Assignment nodes.Assignment
	Value      bool
}

// Equal reports whether two evaluations share label, assignment and value.
func (e LabeledEvaluation) Equal(o LabeledEvaluation) bool {
	return e.Label == o.Label && e.Value == o.Value && e.Assignment.Equal(o.Assignment)
}

// Enumerate returns the 2^n assignments over vars. Variable j of row i is
// true when bit n-j-1 of i is zero, so the first row is all true and the
// last row all false.
func Enumerate(vars []string) []nodes.Assignment {
	n := len(vars)
	rows := make([]nodes.Assignment, 1<<n)
	for i := range rows {
		a := make(nodes.Assignment, n)
		for j, name := range vars {
			a[name] = (i>>(n-j-1))%2 == 0
		}
		rows[i] = a
	}
	return rows
}

// labeled pairs a sub-expression with its rendered label.
type labeled struct {
	label string
	node  *nodes.Node
}

// subexpressions returns the labeled nodes that get their own column:
// every negated node, every binary node when all is set, and the root.
// Labels are unique; the first node rendering to a label wins.
func subexpressions(root *nodes.Node, v nodes.Visitor, all bool) []labeled {
	var out []labeled
	seen := make(map[string]bool)
	add := func(n *nodes.Node) {
		label := n.Accept(v)
		if seen[label] {
			return
		}
		seen[label] = true
		out = append(out, labeled{label: label, node: n})
	}
	root.Walk(func(n *nodes.Node) {
		if n == root {
			return
		}
		if n.Negated || (all && n.Kind == nodes.KindBinary) {
			add(n)
		}
	})
	add(root)
	return out
}

// Collect evaluates the root and its column sub-expressions on every row.
// Evaluations are ordered by row, then by sub-expression in post-order
// with the root last.
func Collect(root *nodes.Node, rows []nodes.Assignment, opts ...Option) ([]LabeledEvaluation, error) {
	cfg := newConfig(root, opts)
	subs := subexpressions(root, cfg.visitor, cfg.all)
	out := make([]LabeledEvaluation, len(rows)*len(subs))

	evalRow := func(i int) error {
		for k, s := range subs {
			value, err := s.node.Eval(rows[i])
			if err != nil {
				return err
			}
			out[i*len(subs)+k] = LabeledEvaluation{
				Label:      s.label,
				Row:        i,
				Assignment: rows[i],
				Value:      value,
			}
		}
		return nil
	}

	if cfg.workers < 2 {
		for i := range rows {
			if err := evalRow(i); err != nil {
				return nil, err
			}
		}
		return out, nil
	}

	var g errgroup.Group
	g.SetLimit(cfg.workers)
	for i := range rows {
		g.Go(func() error { return evalRow(i) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func newConfig(root *nodes.Node, opts []Option) *config {
	cfg := &config{}
	for _, o := range opts {
		o(cfg)
	}
	if cfg.visitor == nil {
		cfg.visitor = visitors.ForDialect(root.Dialect)
	}
	return cfg
}
