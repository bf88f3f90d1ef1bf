package main

import (
	"strings"
)

// completionContext says which word list a completion draws from.
type completionContext int

const (
	contextCommand   completionContext = iota // first word of the line
	contextEngine                             // engine <name>
	contextPlugin                             // plugin <name>
	contextPluginOff                          // plugin off <enabled plugin>
	contextExpandOp                           // plugin expand <operator>...
	contextDialect                            // dialect <name>
	contextColumns                            // columns <mode>
)

var engineNames = []string{"mysql", "postgres", "sqlite"}
var dialectNames = []string{"auto", "boolean", "code", "logic", "pseudo"}
var columnModes = []string{"all", "negated"}

// replCompleter implements readline's AutoCompleter interface.
type replCompleter struct {
	sess *Session
}

// words returns the full word list for ctx. Command words are nil once
// the line holds a space, since such a line is an expression.
func (c *replCompleter) words(ctx completionContext, prefix string) []string {
	switch ctx {
	case contextEngine:
		return engineNames
	case contextPlugin:
		return append([]string{"off"}, c.sess.pluginNames()...)
	case contextPluginOff:
		return c.sess.plugins.names()
	case contextExpandOp:
		return expandableNames
	case contextDialect:
		return dialectNames
	case contextColumns:
		return columnModes
	}
	if strings.ContainsAny(prefix, " \t") {
		return nil
	}
	return c.sess.commandNames()
}

// Do returns the suffixes that complete the word under the cursor, each
// followed by a space, and the length of that word in runes.
func (c *replCompleter) Do(line []rune, pos int) ([][]rune, int) {
	ctx, prefix := c.parseContext(string(line[:pos]))

	var suffixes [][]rune
	for _, word := range filterPrefix(c.words(ctx, prefix), prefix) {
		suffixes = append(suffixes, []rune(word[len(prefix):]+" "))
	}
	return suffixes, len([]rune(prefix))
}

// parseContext finds the command whose arguments are being typed and lets
// its completer pick the context. Anything else completes a command name.
func (c *replCompleter) parseContext(line string) (completionContext, string) {
	lower := strings.ToLower(line)
	for _, cmd := range c.sess.commands {
		if cmd.completer == nil || !strings.HasSuffix(cmd.prefix, " ") {
			continue
		}
		if strings.HasPrefix(lower, cmd.prefix) {
			return cmd.completer(line[len(cmd.prefix):])
		}
	}
	return contextCommand, strings.TrimSpace(line)
}

// completeCommands returns the command names starting with prefix.
func (c *replCompleter) completeCommands(prefix string) []string {
	return filterPrefix(c.words(contextCommand, prefix), prefix)
}

// filterPrefix returns a new slice of the items starting with prefix,
// ignoring case.
func filterPrefix(items []string, prefix string) []string {
	lowerPrefix := strings.ToLower(prefix)
	var result []string
	for _, item := range items {
		if strings.HasPrefix(strings.ToLower(item), lowerPrefix) {
			result = append(result, item)
		}
	}
	return result
}

// lastToken returns the text after the last space, tab or comma.
func lastToken(s string) string {
	return s[strings.LastIndexAny(s, " \t,")+1:]
}
