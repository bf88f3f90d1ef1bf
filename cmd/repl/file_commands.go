package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bawdo/proplogic/export"
	"github.com/bawdo/proplogic/visitors"
)

// cmdDot exports the current syntax tree, after plugins, as a Graphviz
// DOT file.
func (s *Session) cmdDot(args string) error {
	fpath := strings.TrimSpace(args)
	if fpath == "" {
		return errors.New("usage: dot <filepath>")
	}
	if s.current == nil {
		return errNoExpression
	}
	root, err := s.current.Tree()
	if err != nil {
		return err
	}

	dv := visitors.NewDotVisitor()
	root.Accept(dv)
	if err := writeFile(fpath, dv.ToDot()); err != nil {
		return fmt.Errorf("failed to write DOT file: %w", err)
	}
	_, _ = fmt.Fprintf(s.out, "  Wrote DOT to %s (%d nodes)\n", fpath, dv.NodeCount())
	return nil
}

// cmdHTML exports the current truth table as an HTML page.
func (s *Session) cmdHTML(args string) error {
	fpath := strings.TrimSpace(args)
	if fpath == "" {
		return errors.New("usage: html <filepath>")
	}
	t, err := s.truthTable()
	if err != nil {
		return err
	}
	simplified, err := s.current.Simplify()
	if err != nil {
		return err
	}

	w, err := export.Create(fpath)
	if err != nil {
		return fmt.Errorf("failed to write HTML file: %w", err)
	}
	if err := export.HTML(w, t, s.source, export.WithSimplified(simplified)); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write HTML file: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to write HTML file: %w", err)
	}
	_, _ = fmt.Fprintf(s.out, "  Wrote HTML to %s (%d rows)\n", fpath, len(t.Rows))
	return nil
}

// cmdLoad evaluates every expression of a JSON batch file. A failing
// expression is reported and skipped.
func (s *Session) cmdLoad(args string) error {
	fpath := strings.TrimSpace(args)
	if fpath == "" {
		return errors.New("usage: load <filepath>")
	}
	data, err := export.ReadFile(fpath)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	items, err := parseBatch(data)
	if err != nil {
		return fmt.Errorf("load %s: %w", fpath, err)
	}

	failed := 0
	for i, item := range items {
		label := item.text
		if item.name != "" {
			label = item.name + ": " + item.text
		}
		_, _ = fmt.Fprintf(s.out, "  [%d/%d] %s\n", i+1, len(items), label)
		if err := s.cmdExpr(item.text); err != nil {
			_, _ = fmt.Fprintf(s.out, "  Error: %v\n", err)
			failed++
		}
	}
	_, _ = fmt.Fprintf(s.out, "  Loaded %d expressions (%d failed)\n", len(items), failed)
	return nil
}

func writeFile(path, content string) error {
	w, err := export.Create(path)
	if err != nil {
		return err
	}
	if _, err := w.Write([]byte(content)); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
