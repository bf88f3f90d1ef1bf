package truthtable

import "github.com/bawdo/proplogic/nodes"

// Option configures Collect and Build.
type Option func(*config)

type config struct {
	visitor nodes.Visitor
	all     bool
	workers int
}

// WithVisitor renders column labels with v instead of the printer for the
// root's dialect.
func WithVisitor(v nodes.Visitor) Option {
	return func(c *config) { c.visitor = v }
}

// WithAllSubexpressions adds a column for every binary sub-expression, not
// only the negated ones.
func WithAllSubexpressions() Option {
	return func(c *config) { c.all = true }
}

// WithConcurrency evaluates rows on up to n goroutines. Values below 2 keep
// evaluation on the calling goroutine.
func WithConcurrency(n int) Option {
	return func(c *config) { c.workers = n }
}
