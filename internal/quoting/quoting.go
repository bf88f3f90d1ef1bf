// Package quoting provides identifier quoting for the REPL's run store.
package quoting

import "strings"

// DoubleQuote quotes a SQL identifier using double quotes (PostgreSQL, SQLite, ANSI SQL).
// Internal double quotes are escaped by doubling them.
func DoubleQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Backtick quotes a SQL identifier using backticks (MySQL).
// Internal backticks are escaped by doubling them.
func Backtick(s string) string {
	return "`" + strings.ReplaceAll(s, "`", "``") + "`"
}

// Identifier quotes s the way engine expects. Unknown engines get
// double quotes.
func Identifier(engine, s string) string {
	if engine == "mysql" {
		return Backtick(s)
	}
	return DoubleQuote(s)
}

// Identifiers quotes each name and joins them with ", ".
func Identifiers(engine string, names ...string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = Identifier(engine, n)
	}
	return strings.Join(quoted, ", ")
}

// EscapeLikePattern escapes LIKE wildcard characters (%, _) in a string
// so they are matched literally. The backslash is used as the escape character.
func EscapeLikePattern(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
