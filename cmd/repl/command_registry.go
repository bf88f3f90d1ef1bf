package main

import (
	"errors"
	"sort"
	"strings"
)

// commandEntry maps a REPL prefix to its handler and optional tab-completer.
type commandEntry struct {
	prefix    string
	handler   func(args string) error
	completer func(args string) (completionContext, string) // nil = no arg completion
	hidden    bool                                          // excluded from commandNames()
}

// initCommands builds the command registry and sorts by prefix length descending.
func (s *Session) initCommands() {
	s.commands = []commandEntry{
		// --- expressions ---
		{prefix: "expr ", handler: func(a string) error { return s.cmdExpr(a) }},
		{prefix: "eval ", handler: func(a string) error { return s.cmdExpr(a) }, hidden: true},
		{prefix: "examples", handler: func(_ string) error { return s.cmdExamples() }},
		{prefix: "load ", handler: func(a string) error { return s.cmdLoad(a) }},
		{prefix: "load", handler: func(_ string) error { return errors.New("usage: load <filepath>") }},

		// --- inspection ---
		{prefix: "table", handler: func(_ string) error { return s.cmdTable() }},
		{prefix: "simplify", handler: func(_ string) error { return s.cmdSimplify() }},
		{prefix: "primes", handler: func(_ string) error { return s.cmdPrimes() }},
		{prefix: "minterms", handler: func(_ string) error { return s.cmdMinterms() }},
		{prefix: "vars", handler: func(_ string) error { return s.cmdVars() }},
		{prefix: "ast", handler: func(_ string) error { return s.cmdAST() }},
		{prefix: "equiv ", handler: func(a string) error { return s.cmdEquiv(a) }},

		// --- output ---
		{prefix: "dialect ", handler: func(a string) error { return s.cmdDialect(a) }, completer: completeDialectArgs},
		{prefix: "dialect", handler: func(_ string) error { return s.cmdDialect("") }},
		{prefix: "columns ", handler: func(a string) error { return s.cmdColumns(a) }, completer: completeColumnsArgs},
		{prefix: "dot ", handler: func(a string) error { return s.cmdDot(a) }},
		{prefix: "dot", handler: func(_ string) error { return errors.New("usage: dot <filepath>") }},
		{prefix: "html ", handler: func(a string) error { return s.cmdHTML(a) }},
		{prefix: "html", handler: func(_ string) error { return errors.New("usage: html <filepath>") }},

		// --- database connectivity ---
		{prefix: "connect ", handler: func(a string) error { return s.cmdConnect(a) }},
		{prefix: "connect", handler: func(_ string) error { return s.cmdConnect("") }},
		{prefix: "disconnect", handler: func(_ string) error { return s.cmdDisconnect() }},
		{prefix: "save", handler: func(_ string) error { return s.cmdSave() }},
		{prefix: "history ", handler: func(a string) error { return s.cmdHistory(a) }},
		{prefix: "history", handler: func(_ string) error { return s.cmdHistory("") }},
		{prefix: "show ", handler: func(a string) error { return s.cmdShow(a) }},

		// --- engine / plugins ---
		{prefix: "engine ", handler: func(a string) error { return s.cmdEngine(a) }, completer: completeEngineArgs},
		{prefix: "plugin ", handler: func(a string) error { return s.cmdPlugin(a) }, completer: completePluginArgs},
		{prefix: "plugins", handler: func(_ string) error { s.cmdPlugins(); return nil }},

		{prefix: "reset", handler: func(_ string) error { return s.cmdReset() }},
		{prefix: "help", handler: func(_ string) error { s.cmdHelp(); return nil }},
	}

	// Sort by prefix length descending so longest prefixes match first.
	sort.Slice(s.commands, func(i, j int) bool {
		return len(s.commands[i].prefix) > len(s.commands[j].prefix)
	})
}

// commandNames derives the command name list from the registry for tab completion.
func (s *Session) commandNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, cmd := range s.commands {
		if cmd.hidden {
			continue
		}
		name := strings.TrimRight(cmd.prefix, " ")
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	// exit/quit are handled by the REPL loop, not Execute().
	for _, extra := range []string{"exit", "quit"} {
		if !seen[extra] {
			names = append(names, extra)
		}
	}
	sort.Strings(names)
	return names
}

// --- Shared completion helpers ---

func completeEngineArgs(args string) (completionContext, string) {
	return contextEngine, strings.TrimSpace(args)
}

func completeDialectArgs(args string) (completionContext, string) {
	return contextDialect, strings.TrimSpace(args)
}

func completeColumnsArgs(args string) (completionContext, string) {
	return contextColumns, strings.TrimSpace(args)
}

// completePluginArgs handles completion for the plugin command: plugin
// names, the names of enabled plugins after "off", and operator names
// after "expand".
func completePluginArgs(args string) (completionContext, string) {
	lower := strings.ToLower(args)
	if strings.HasPrefix(lower, "off ") {
		return contextPluginOff, strings.TrimSpace(args[4:])
	}
	if strings.HasPrefix(lower, "expand ") {
		return contextExpandOp, lastToken(args)
	}
	arg := strings.TrimSpace(args)
	if !strings.Contains(arg, " ") {
		return contextPlugin, arg
	}
	return contextCommand, ""
}
