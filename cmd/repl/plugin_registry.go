package main

import (
	"slices"

	"github.com/bawdo/proplogic/managers"
	"github.com/bawdo/proplogic/plugins"
)

// enabledPlugin is a tree rewrite switched on with the plugin command.
type enabledPlugin struct {
	name   string                     // "expand", "nnf"
	build  func() plugins.Transformer // fresh transformer for every parsed expression
	status string                     // shown by plugins and ast
}

// pluginRegistry keeps the enabled rewrites in the order they run.
type pluginRegistry struct {
	enabled []enabledPlugin
}

// enable switches p on, replacing an earlier configuration of the same
// plugin in place so the rewrite order is kept.
func (r *pluginRegistry) enable(p enabledPlugin) {
	if i := r.index(p.name); i >= 0 {
		r.enabled[i] = p
		return
	}
	r.enabled = append(r.enabled, p)
}

// disable switches the named plugin off and reports whether it was on.
func (r *pluginRegistry) disable(name string) bool {
	i := r.index(name)
	if i < 0 {
		return false
	}
	r.enabled = slices.Delete(r.enabled, i, i+1)
	return true
}

func (r *pluginRegistry) disableAll() {
	r.enabled = nil
}

func (r *pluginRegistry) index(name string) int {
	return slices.IndexFunc(r.enabled, func(p enabledPlugin) bool { return p.name == name })
}

func (r *pluginRegistry) lookup(name string) (enabledPlugin, bool) {
	if i := r.index(name); i >= 0 {
		return r.enabled[i], true
	}
	return enabledPlugin{}, false
}

// names returns the enabled plugin names in rewrite order.
func (r *pluginRegistry) names() []string {
	out := make([]string, len(r.enabled))
	for i, p := range r.enabled {
		out[i] = p.name
	}
	return out
}

// attach adds a fresh instance of every enabled rewrite to m.
func (r *pluginRegistry) attach(m *managers.ExpressionManager) {
	for _, p := range r.enabled {
		m.Use(p.build())
	}
}

// pluginConfigurer is a plugin the plugin command knows how to enable.
type pluginConfigurer struct {
	name      string
	configure func(s *Session, args string) error
}
