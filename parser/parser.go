// Package parser turns propositional-logic expressions written in any of
// the supported dialects into syntax trees.
//
// Operators are read left to right without precedence, so "a v b ^ c" is
// ((a v b) ^ c); parentheses group explicitly. A NOT directly before a
// variable or an opening parenthesis negates that operand.
package parser

import (
	"fmt"
	"strings"

	"github.com/bawdo/proplogic/nodes"
)

// Expression is the result of parsing one input string.
type Expression struct {
	Source     string        // raw input
	Normalized string        // canonical token form
	Root       *nodes.Node   // syntax tree
	Variables  []string      // sorted distinct variable names
	Dialect    nodes.Dialect // dialect detected from the first operator
	Single     bool          // root is a single (possibly negated) variable
}

// Parse normalizes, validates and parses text.
func Parse(text string) (*Expression, error) {
	normalized, dialect := Normalize(text)
	return parseNormalized(text, normalized, dialect)
}

// ParseAs parses text but prints the resulting tree in dialect d regardless
// of the spellings used in text.
func ParseAs(text string, d nodes.Dialect) (*Expression, error) {
	normalized, _ := Normalize(text)
	return parseNormalized(text, normalized, d)
}

// MustParse is like Parse but panics on error.
func MustParse(text string) *Expression {
	e, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("parser: %q: %v", text, err))
	}
	return e
}

func parseNormalized(source, normalized string, dialect nodes.Dialect) (*Expression, error) {
	if err := validate(normalized); err != nil {
		return nil, err
	}
	root, err := parseGroup(normalized, false, dialect)
	if err != nil {
		return nil, err
	}
	return &Expression{
		Source:     source,
		Normalized: normalized,
		Root:       root,
		Variables:  root.Variables(),
		Dialect:    dialect,
		Single:     root.IsVariable(),
	}, nil
}

// parseGroup scans one parenthesis level of a normalized expression.
// Nested groups are parsed recursively when their closing parenthesis
// brings the depth back to zero. negate is the NOT inherited from the
// enclosing level and applies to the group as a whole.
func parseGroup(s string, negate bool, dialect nodes.Dialect) (*nodes.Node, error) {
	var left, right *nodes.Node
	var op nodes.Operator
	hasOp := false
	depth, start := 0, 0

	attach := func(n *nodes.Node) {
		if hasOp {
			right = n
		} else {
			left = n
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '(':
			if depth == 0 {
				start = i + 1
			}
			depth++
		case c == ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("%w: unexpected ')' at offset %d", ErrUnbalancedParentheses, i)
			}
			if depth == 0 {
				sub, err := parseGroup(s[start:i], negatedAt(s, start-1), dialect)
				if err != nil {
					return nil, err
				}
				attach(sub)
			}
		case depth > 0:
			// Inside a nested group; handled when the group closes.
		case strings.IndexByte(binaryTokens, c) >= 0:
			next := tokenOps[c]
			if !hasOp {
				op, hasOp = next, true
				continue
			}
			if left == nil || right == nil {
				return nil, invalidf("operator %s is missing an operand", op)
			}
			left = nodes.Binary(left, op, right, false, dialect)
			op, right = next, nil
		case nodes.IsVariable(c):
			attach(nodes.Var(string(c), negatedAt(s, i), dialect))
		}
	}

	if depth != 0 {
		return nil, fmt.Errorf("%w: %d unclosed '('", ErrUnbalancedParentheses, depth)
	}
	if left == nil {
		return nil, invalidf("expression is empty")
	}
	if !hasOp {
		// A lone operand, such as a redundant "(a v b)" wrapper: the inner
		// node becomes the result and absorbs any inherited negation.
		if negate {
			return left.Not(), nil
		}
		return left, nil
	}
	if right == nil {
		return nil, invalidf("operator %s is missing an operand", op)
	}
	return nodes.Binary(left, op, right, negate, dialect), nil
}

// negatedAt reports whether the operand at s[i] is preceded by an odd
// number of NOT tokens.
func negatedAt(s string, i int) bool {
	count := 0
	for j := i - 1; j >= 0 && s[j] == tokNot; j-- {
		count++
	}
	return count%2 == 1
}
