package parser

import (
	"strings"

	"github.com/bawdo/proplogic/nodes"
)

// validate checks a normalized expression before it is scanned. Every NOT
// must be followed by another NOT, a variable or '('. Removing
// parentheses and NOT tokens must then leave single variable letters separated
// by binary operator tokens; anything else (multi-letter runs, unknown
// symbols, empty operands) is rejected.
func validate(normalized string) error {
	if strings.ContainsAny(normalized, "0123456789") {
		return invalidf("numbers are not valid variables")
	}
	for i := 0; i < len(normalized); i++ {
		if normalized[i] != tokNot {
			continue
		}
		if i+1 == len(normalized) {
			return invalidf("NOT is missing an operand")
		}
		if next := normalized[i+1]; next != tokNot && next != '(' && !nodes.IsVariable(next) {
			return invalidf("NOT must precede a variable or '('")
		}
	}
	stripped := strings.Map(func(r rune) rune {
		switch r {
		case '(', ')', tokNot:
			return -1
		}
		return r
	}, normalized)
	if stripped == "" {
		return invalidf("expression is empty")
	}
	for _, seg := range splitOperators(stripped) {
		switch {
		case seg == "":
			return invalidf("operator is missing an operand")
		case len(seg) > 1:
			return invalidf("%q is not a single-letter variable", seg)
		case !nodes.IsVariable(seg[0]):
			return invalidf("%q is not a valid variable", seg)
		}
	}
	return nil
}

// splitOperators splits s around every binary operator token, keeping
// empty segments so that dangling operators can be reported.
func splitOperators(s string) []string {
	var segs []string
	last := 0
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(binaryTokens, s[i]) >= 0 {
			segs = append(segs, s[last:i])
			last = i + 1
		}
	}
	return append(segs, s[last:])
}
