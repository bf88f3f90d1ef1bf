package nodes

import (
	"fmt"
	"strings"
)

// Dialect selects one of the four interchangeable notations. It only
// changes how operators are spelled, never what they mean.
type Dialect int

const (
	Pseudo Dialect = iota
	Logic
	Code
	Boolean
)

var dialectNames = [...]string{
	Pseudo:  "pseudo",
	Logic:   "logic",
	Code:    "code",
	Boolean: "boolean",
}

func (d Dialect) String() string {
	if d < 0 || int(d) >= len(dialectNames) {
		return "unknown"
	}
	return dialectNames[d]
}

// Dialects lists every dialect in declaration order.
func Dialects() []Dialect {
	return []Dialect{Pseudo, Logic, Code, Boolean}
}

// ParseDialect resolves a dialect by name or alias (case-insensitive).
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pseudo", "english":
		return Pseudo, nil
	case "logic", "symbolic":
		return Logic, nil
	case "code", "programming":
		return Code, nil
	case "boolean", "algebra":
		return Boolean, nil
	}
	return 0, fmt.Errorf("unknown dialect %q (expected pseudo, logic, code or boolean)", name)
}
