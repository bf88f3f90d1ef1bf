// Package proplogic parses propositional-logic expressions written in any
// of four notations, builds their truth tables and minimizes them.
//
// This package re-exports commonly used types and functions from
// subpackages for convenience. Advanced users can import subpackages
// directly:
//   - github.com/bawdo/proplogic/parser (normalization and parsing)
//   - github.com/bawdo/proplogic/nodes (syntax tree and evaluation)
//   - github.com/bawdo/proplogic/truthtable (truth tables)
//   - github.com/bawdo/proplogic/minimize (Quine-McCluskey)
//   - github.com/bawdo/proplogic/visitors (dialect printers)
//   - github.com/bawdo/proplogic/managers (fluent expression API)
//   - github.com/bawdo/proplogic/plugins (tree transformers)
package proplogic

import (
	"github.com/bawdo/proplogic/managers"
	"github.com/bawdo/proplogic/nodes"
	"github.com/bawdo/proplogic/parser"
	"github.com/bawdo/proplogic/truthtable"
	"github.com/bawdo/proplogic/visitors"
)

// --- Types ---

// Expression is a parsed input string.
type Expression = parser.Expression

// Node is a syntax tree node.
type Node = nodes.Node

// Dialect selects the operator spellings used for output.
type Dialect = nodes.Dialect

// Table is a complete truth table.
type Table = truthtable.Table

// ExpressionManager provides a fluent API over a parsed expression.
type ExpressionManager = managers.ExpressionManager

// --- Dialects ---

const (
	Pseudo  = nodes.Pseudo
	Logic   = nodes.Logic
	Code    = nodes.Code
	Boolean = nodes.Boolean
)

// --- Errors ---

var (
	ErrInvalidExpression     = parser.ErrInvalidExpression
	ErrUnbalancedParentheses = parser.ErrUnbalancedParentheses
)

// --- Functions ---

// Parse normalizes and parses text.
func Parse(text string) (*parser.Expression, error) {
	return parser.Parse(text)
}

// New parses text into an ExpressionManager.
func New(text string) (*managers.ExpressionManager, error) {
	return managers.New(text)
}

// TruthTable evaluates tree over every assignment of vars.
func TruthTable(tree *nodes.Node, vars []string, opts ...truthtable.Option) (*truthtable.Table, error) {
	return truthtable.Build(tree, vars, opts...)
}

// Simplify returns the minimal equivalent of tree printed in dialect d,
// or "Always True" / "Always False".
func Simplify(tree *nodes.Node, vars []string, d nodes.Dialect) (string, error) {
	return managers.Simplify(tree, vars, d)
}

// Render prints tree in its own dialect.
func Render(tree *nodes.Node) string {
	return visitors.Render(tree)
}
