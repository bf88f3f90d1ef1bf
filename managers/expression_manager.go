// Package managers provides a fluent API over a parsed expression: plugin
// pipelines, truth tables, minimization and rendering.
package managers

import (
	"github.com/bawdo/proplogic/minimize"
	"github.com/bawdo/proplogic/nodes"
	"github.com/bawdo/proplogic/parser"
	"github.com/bawdo/proplogic/plugins"
	"github.com/bawdo/proplogic/truthtable"
	"github.com/bawdo/proplogic/visitors"
)

// ExpressionManager wraps a parsed expression. Transformers registered
// with Use are applied to a copy of the tree whenever it is evaluated or
// printed; the parsed expression itself never changes.
type ExpressionManager struct {
	treeManager
	Expr    *parser.Expression
	dialect nodes.Dialect
}

// New parses text and wraps the result.
func New(text string) (*ExpressionManager, error) {
	e, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}
	return NewExpressionManager(e), nil
}

// NewExpressionManager wraps an already parsed expression. Output uses the
// expression's detected dialect until WithDialect changes it.
func NewExpressionManager(e *parser.Expression) *ExpressionManager {
	return &ExpressionManager{Expr: e, dialect: e.Dialect}
}

// Use appends transformer plugins to the pipeline.
func (m *ExpressionManager) Use(ts ...plugins.Transformer) *ExpressionManager {
	for _, t := range ts {
		m.addTransformer(t)
	}
	return m
}

// WithDialect sets the dialect used for output.
func (m *ExpressionManager) WithDialect(d nodes.Dialect) *ExpressionManager {
	m.dialect = d
	return m
}

// Dialect returns the output dialect.
func (m *ExpressionManager) Dialect() nodes.Dialect {
	return m.dialect
}

// Variables returns the sorted variable names of the parsed expression.
// Transformers never add or remove variables from the truth table, so
// these also index the table of the transformed tree.
func (m *ExpressionManager) Variables() []string {
	return m.Expr.Variables
}

// Tree returns the transformed tree in the output dialect.
func (m *ExpressionManager) Tree() (*nodes.Node, error) {
	root, err := m.transform(m.Expr.Root)
	if err != nil {
		return nil, err
	}
	return root.WithDialect(m.dialect), nil
}

// Render prints the transformed tree with v, or with the output dialect's
// printer when v is nil.
func (m *ExpressionManager) Render(v nodes.Visitor) (string, error) {
	root, err := m.Tree()
	if err != nil {
		return "", err
	}
	if v == nil {
		v = visitors.ForDialect(m.dialect)
	}
	return root.Accept(v), nil
}

// String prints the transformed tree in the output dialect, or the
// pipeline error.
func (m *ExpressionManager) String() string {
	s, err := m.Render(nil)
	if err != nil {
		return err.Error()
	}
	return s
}

// TruthTable builds the truth table of the transformed tree.
func (m *ExpressionManager) TruthTable(opts ...truthtable.Option) (*truthtable.Table, error) {
	root, err := m.Tree()
	if err != nil {
		return nil, err
	}
	return truthtable.Build(root, m.Variables(), opts...)
}

// Minterms returns the truth-table rows where the expression holds.
func (m *ExpressionManager) Minterms() ([]int, error) {
	t, err := m.TruthTable()
	if err != nil {
		return nil, err
	}
	return t.TrueRows(), nil
}

// Minimize runs the minimizer and keeps its intermediate results.
func (m *ExpressionManager) Minimize() (*minimize.Result, error) {
	rows, err := m.Minterms()
	if err != nil {
		return nil, err
	}
	return minimize.Solve(m.Variables(), rows)
}

// Simplify returns the minimal equivalent expression in the output
// dialect, or "Always True" / "Always False".
func (m *ExpressionManager) Simplify() (string, error) {
	root, err := m.Tree()
	if err != nil {
		return "", err
	}
	return Simplify(root, m.Variables(), m.dialect)
}

// Equivalent reports whether both expressions have the same truth table
// over the union of their variables.
func (m *ExpressionManager) Equivalent(other *ExpressionManager) (bool, error) {
	x, err := m.Tree()
	if err != nil {
		return false, err
	}
	y, err := other.Tree()
	if err != nil {
		return false, err
	}
	return Equivalent(x, y)
}
