package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidExpression reports malformed operator usage, multi-letter or
	// unknown tokens, digits used as variables, or missing operands.
	ErrInvalidExpression = errors.New("invalid expression")

	// ErrUnbalancedParentheses reports a parenthesis depth other than zero
	// at the end of the scan.
	ErrUnbalancedParentheses = errors.New("unbalanced parentheses")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidExpression, fmt.Sprintf(format, args...))
}
