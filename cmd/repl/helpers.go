package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bawdo/proplogic/managers"
	"github.com/bawdo/proplogic/nodes"
	"github.com/bawdo/proplogic/visitors"
)

// build parses text into a manager carrying the session's output dialect
// and enabled plugins.
func (s *Session) build(text string) (*managers.ExpressionManager, error) {
	m, err := managers.New(text)
	if err != nil {
		return nil, err
	}
	if s.hasDialect {
		m.WithDialect(s.dialect)
	}
	s.plugins.attach(m)
	return m, nil
}

// rebuildWithPlugins re-parses the current expression so that the
// enabled plugins apply to it. No-op if no expression exists.
func (s *Session) rebuildWithPlugins() error {
	if s.current == nil {
		return nil
	}
	m, err := s.build(s.source)
	if err != nil {
		return err
	}
	s.current = m
	return nil
}

// --- AST display helpers ---

func (s *Session) printASTTree(root *nodes.Node) {
	_, _ = fmt.Fprintln(s.out, "  Tree:")
	formatted := root.Accept(visitors.NewFormattingVisitor(visitors.ForDialect(root.Dialect)))
	for _, line := range strings.Split(formatted, "\n") {
		_, _ = fmt.Fprintf(s.out, "    %s\n", line)
	}
}

func (s *Session) printASTCounts(root *nodes.Node) {
	counts := make(map[nodes.Operator]int)
	negations := 0
	root.Walk(func(n *nodes.Node) {
		if n.Negated {
			negations++
		}
		if n.Kind == nodes.KindBinary {
			counts[n.Op]++
		}
	})
	var parts []string
	for _, op := range nodes.Operators() {
		if c := counts[op]; c > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", op, c))
		}
	}
	if negations > 0 {
		parts = append(parts, fmt.Sprintf("NOT=%d", negations))
	}
	if len(parts) == 0 {
		parts = append(parts, "(none)")
	}
	_, _ = fmt.Fprintf(s.out, "  Operators: %s\n", strings.Join(parts, " "))
}

func (s *Session) printASTFooter() {
	for _, p := range s.plugins.enabled {
		_, _ = fmt.Fprintf(s.out, "  Plugin: %s (%s)\n", p.name, p.status)
	}
	if s.allColumns {
		_, _ = fmt.Fprintln(s.out, "  Columns: all")
	}
	if s.conn != nil {
		_, _ = fmt.Fprintf(s.out, "  Connected: %s (%s)\n", sanitizeDSN(s.conn.dsn), s.conn.engine)
	}
}

// --- Formatting helpers ---

func joinInts[T int | uint](xs []T) string {
	if len(xs) == 0 {
		return "(none)"
	}
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.FormatUint(uint64(x), 10)
	}
	return strings.Join(parts, ", ")
}

// isWord reports whether s consists of ASCII letters and underscores only.
func isWord(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_') {
			return false
		}
	}
	return s != ""
}
