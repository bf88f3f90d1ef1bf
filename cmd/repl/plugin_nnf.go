package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bawdo/proplogic/plugins"
	"github.com/bawdo/proplogic/plugins/nnf"
)

func configureNNF(s *Session, args string) error {
	if strings.TrimSpace(args) != "" {
		return errors.New("usage: plugin nnf")
	}
	s.plugins.enable(enabledPlugin{
		name:   "nnf",
		build:  func() plugins.Transformer { return nnf.New() },
		status: "negation normal form",
	})
	_, _ = fmt.Fprintln(s.out, "  NNF enabled")
	return s.rebuildWithPlugins()
}
