package managers

import (
	"sort"

	"github.com/bawdo/proplogic/minimize"
	"github.com/bawdo/proplogic/nodes"
	"github.com/bawdo/proplogic/parser"
	"github.com/bawdo/proplogic/truthtable"
	"github.com/bawdo/proplogic/visitors"
)

// Results printed in place of a constant function.
const (
	AlwaysTrue  = "Always True"
	AlwaysFalse = "Always False"
)

// Simplify minimizes root over vars and prints the result in dialect d.
// The minimizer's canonical form is spelled in d and parsed once more so
// that the printed form has the usual parenthesization.
func Simplify(root *nodes.Node, vars []string, d nodes.Dialect) (string, error) {
	t, err := truthtable.Build(root, vars)
	if err != nil {
		return "", err
	}
	canonical, err := minimize.Minimize(vars, t.TrueRows())
	if err != nil {
		return "", err
	}
	switch canonical {
	case "1":
		return AlwaysTrue, nil
	case "0":
		return AlwaysFalse, nil
	}
	e, err := parser.ParseAs(visitors.RenderCanonical(canonical, d), d)
	if err != nil {
		return "", err
	}
	return visitors.Render(e.Root), nil
}

// Equivalent reports whether x and y agree on every assignment over the
// union of their variables.
func Equivalent(x, y *nodes.Node) (bool, error) {
	seen := make(map[string]bool)
	var vars []string
	for _, v := range append(x.Variables(), y.Variables()...) {
		if !seen[v] {
			seen[v] = true
			vars = append(vars, v)
		}
	}
	sort.Strings(vars)
	for _, a := range truthtable.Enumerate(vars) {
		l, err := x.Eval(a)
		if err != nil {
			return false, err
		}
		r, err := y.Eval(a)
		if err != nil {
			return false, err
		}
		if l != r {
			return false, nil
		}
	}
	return true, nil
}
