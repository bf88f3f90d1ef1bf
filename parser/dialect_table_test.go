package parser

import (
	"testing"

	"github.com/bawdo/proplogic/nodes"
)

func TestNormalize(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in      string
		want    string
		dialect nodes.Dialect
	}{
		{"a and b", "a^b", nodes.Pseudo},
		{"a AND NOT b", "a^~b", nodes.Pseudo},
		{"a nand b nor c", "a|b:c", nodes.Pseudo},
		{"a implies b iff c", "a>b=c", nodes.Pseudo},
		{"~a ^ b v c", "~a^bvc", nodes.Logic},
		{"a -> b", "a>b", nodes.Logic},
		{"a <-> b", "a=b", nodes.Logic},
		{"a ⬇ b", "a:b", nodes.Logic},
		{"!a && b || c", "~a^bvc", nodes.Code},
		{"-a * b + c", "~a^bvc", nodes.Boolean},
		{"a -* b -+ c", "a|b:c", nodes.Boolean},
		{"\ta\n^ b ", "a^b", nodes.Logic},
		{"n and o", "n^o", nodes.Pseudo},
		{"p or q", "pvq", nodes.Pseudo},
	}
	for _, tc := range cases {
		got, d := Normalize(tc.in)
		if got != tc.want {
			t.Errorf("Normalize(%q): expected %q, got %q", tc.in, tc.want, got)
		}
		if d != tc.dialect {
			t.Errorf("Normalize(%q): expected dialect %s, got %s", tc.in, tc.dialect, d)
		}
	}
}

func TestNormalizeKeywordsNeedWordBoundaries(t *testing.T) {
	t.Parallel()
	// "nand" inside a letter run is not an operator.
	got, _ := Normalize("xnandy")
	if got != "xnandy" {
		t.Errorf("expected keyword inside a word to stay literal, got %q", got)
	}
	got, _ = Normalize("(a)and(b)")
	if got != "(a)^(b)" {
		t.Errorf("expected parentheses to act as boundaries, got %q", got)
	}
}

func TestSpellingsLongestFirst(t *testing.T) {
	t.Parallel()
	for i := 1; i < len(spellings); i++ {
		if len(spellings[i].text) > len(spellings[i-1].text) {
			t.Fatalf("spelling %q listed after shorter %q", spellings[i].text, spellings[i-1].text)
		}
	}
}

func TestDetectDialect(t *testing.T) {
	t.Parallel()
	if d := DetectDialect("a || b"); d != nodes.Code {
		t.Errorf("expected code, got %s", d)
	}
	if d := DetectDialect("a"); d != nodes.Logic {
		t.Errorf("expected logic default, got %s", d)
	}
}
