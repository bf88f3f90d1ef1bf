package parser

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bawdo/proplogic/nodes"
)

// Canonical one-character operator tokens used by the normalized form.
const (
	tokNot     = '~'
	tokAnd     = '^'
	tokOr      = 'v'
	tokImplies = '>'
	tokIff     = '='
	tokNand    = '|'
	tokNor     = ':'
)

// tokenOps maps canonical binary tokens to their operators.
var tokenOps = map[byte]nodes.Operator{
	tokAnd:     nodes.OpAnd,
	tokOr:      nodes.OpOr,
	tokImplies: nodes.OpImplies,
	tokIff:     nodes.OpIff,
	tokNand:    nodes.OpNand,
	tokNor:     nodes.OpNor,
}

// binaryTokens holds every canonical binary operator token.
const binaryTokens = "^v>=|:"

// spelling is one surface form of an operator and the dialect it belongs to.
type spelling struct {
	text    string
	token   byte
	dialect nodes.Dialect
}

// spellings is every recognized surface form, longest first so that a
// spelling is always tried before any shorter spelling it starts with.
var spellings = sortSpellings([]spelling{
	// pseudo-English
	{"NAND", tokNand, nodes.Pseudo},
	{"nand", tokNand, nodes.Pseudo},
	{"NOR", tokNor, nodes.Pseudo},
	{"nor", tokNor, nodes.Pseudo},
	{"OR", tokOr, nodes.Pseudo},
	{"or", tokOr, nodes.Pseudo},
	{"AND", tokAnd, nodes.Pseudo},
	{"and", tokAnd, nodes.Pseudo},
	{"NOT", tokNot, nodes.Pseudo},
	{"not", tokNot, nodes.Pseudo},
	{"IFF", tokIff, nodes.Pseudo},
	{"iff", tokIff, nodes.Pseudo},
	{"IMPLIES", tokImplies, nodes.Pseudo},
	{"implies", tokImplies, nodes.Pseudo},

	// logic symbols
	{"<->", tokIff, nodes.Logic},
	{"->", tokImplies, nodes.Logic},
	{"~", tokNot, nodes.Logic},
	{"^", tokAnd, nodes.Logic},
	{"v", tokOr, nodes.Logic},
	{"|", tokNand, nodes.Logic},
	{"⬇", tokNor, nodes.Logic},
	{"↓", tokNor, nodes.Logic},

	// programming operators
	{"&&", tokAnd, nodes.Code},
	{"||", tokOr, nodes.Code},
	{"!", tokNot, nodes.Code},

	// Boolean algebra
	{"-*", tokNand, nodes.Boolean},
	{"-+", tokNor, nodes.Boolean},
	{"+", tokOr, nodes.Boolean},
	{"*", tokAnd, nodes.Boolean},
	{"-", tokNot, nodes.Boolean},
})

func sortSpellings(s []spelling) []spelling {
	sort.SliceStable(s, func(i, j int) bool {
		return len(s[i].text) > len(s[j].text)
	})
	return s
}

// Normalize rewrites every recognized operator spelling in raw to its
// canonical token and drops whitespace. The dialect of the first spelling
// matched is returned as the expression's dialect; later spellings from
// other dialects are still canonicalized. Expressions with no recognized
// spelling default to the logic dialect.
func Normalize(raw string) (string, nodes.Dialect) {
	var b strings.Builder
	dialect, detected := nodes.Logic, false
	for i := 0; i < len(raw); {
		if isSpace(raw[i]) {
			i++
			continue
		}
		if sp, ok := matchSpelling(raw, i); ok {
			b.WriteByte(sp.token)
			if !detected {
				dialect, detected = sp.dialect, true
			}
			i += len(sp.text)
			continue
		}
		_, size := utf8.DecodeRuneInString(raw[i:])
		b.WriteString(raw[i : i+size])
		i += size
	}
	return b.String(), dialect
}

// DetectDialect returns the dialect Normalize would assign to raw.
func DetectDialect(raw string) nodes.Dialect {
	_, d := Normalize(raw)
	return d
}

// matchSpelling finds the longest spelling starting at raw[i]. Alphabetic
// spellings must stand on word boundaries so that variable letters next to
// a keyword ("n and o") are not swallowed by a longer keyword ("nand").
func matchSpelling(raw string, i int) (spelling, bool) {
	rest := raw[i:]
	for _, sp := range spellings {
		if !strings.HasPrefix(rest, sp.text) {
			continue
		}
		if isLetter(sp.text[0]) {
			if i > 0 && isLetter(raw[i-1]) {
				continue
			}
			if end := i + len(sp.text); end < len(raw) && isLetter(raw[end]) {
				continue
			}
		}
		return sp, true
	}
	return spelling{}, false
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
