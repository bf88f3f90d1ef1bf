package main

import (
	"fmt"
	"strings"

	"github.com/bawdo/proplogic/nodes"
	"github.com/bawdo/proplogic/plugins"
	"github.com/bawdo/proplogic/plugins/expand"
)

// expandableOps are the operator names accepted by "plugin expand".
var expandableOps = map[string]nodes.Operator{
	"implies": nodes.OpImplies,
	"iff":     nodes.OpIff,
	"nand":    nodes.OpNand,
	"nor":     nodes.OpNor,
}

var expandableNames = []string{"iff", "implies", "nand", "nor"}

// configureExpand parses the operator list, registers the plugin and
// re-evaluates the current expression.
//
//	plugin expand              every derived operator
//	plugin expand implies iff  only the named ones
func configureExpand(s *Session, args string) error {
	var ops []nodes.Operator
	for _, word := range strings.FieldsFunc(strings.ToLower(args), func(r rune) bool {
		return r == ' ' || r == ','
	}) {
		op, ok := expandableOps[word]
		if !ok {
			return fmt.Errorf("unknown operator %q (choose: %s)", word, strings.Join(expandableNames, ", "))
		}
		ops = append(ops, op)
	}

	var opts []expand.Option
	if len(ops) > 0 {
		opts = append(opts, expand.WithOperators(ops...))
	}
	status := operatorList(expand.New(opts...).Operators())

	s.plugins.enable(enabledPlugin{
		name:   "expand",
		build:  func() plugins.Transformer { return expand.New(opts...) },
		status: status,
	})
	_, _ = fmt.Fprintf(s.out, "  Expand enabled (%s)\n", status)
	return s.rebuildWithPlugins()
}

func operatorList(ops []nodes.Operator) string {
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = strings.ToLower(op.String())
	}
	return strings.Join(names, ", ")
}
