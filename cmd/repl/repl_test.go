package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bawdo/proplogic/export"
	"github.com/bawdo/proplogic/internal/testutil"
	"github.com/bawdo/proplogic/parser"
)

// newTestSession returns a session whose output is captured in the
// returned buffer.
func newTestSession(t *testing.T) (*Session, *bytes.Buffer) {
	t.Helper()
	sess := NewSession("sqlite", nil)
	var buf bytes.Buffer
	sess.out = &buf
	return sess, &buf
}

// run executes commands, failing the test on the first error, and returns
// the output of the last one.
func run(t *testing.T, sess *Session, buf *bytes.Buffer, commands ...string) string {
	t.Helper()
	for _, cmd := range commands {
		buf.Reset()
		if err := sess.Execute(cmd); err != nil {
			t.Fatalf("command %q failed: %v", cmd, err)
		}
	}
	return buf.String()
}

func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

// --- Dispatch ---

func TestExecuteEmptyLine(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t)
	testutil.AssertNoError(t, sess.Execute("   "))
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestBareExpressionBecomesCurrent(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t)
	out := run(t, sess, buf, "a and b")
	assertContains(t, out,
		"Expression: a and b",
		"Dialect:    pseudo",
		"Simplified: a and b",
		"| a | b | a and b |",
		"| T | T | T       |",
		"(4 rows)",
	)
	testutil.AssertEqual(t, sess.source, "a and b")
}

func TestExprCommand(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t)
	out := run(t, sess, buf, "expr ~(a v b)")
	assertContains(t, out, "Expression: ~(a v b)", "Dialect:    logic", "Simplified: ~a ^ ~b")
}

func TestExprWithoutArgument(t *testing.T) {
	t.Parallel()
	sess, _ := newTestSession(t)
	err := sess.Execute("expr   ")
	if err == nil || !strings.Contains(err.Error(), "usage: expr") {
		t.Errorf("expected usage error, got %v", err)
	}
}

func TestUnknownCommand(t *testing.T) {
	t.Parallel()
	sess, _ := newTestSession(t)
	err := sess.Execute("frobnicate")
	if err == nil || !strings.Contains(err.Error(), "unknown command: frobnicate") {
		t.Errorf("expected unknown command error, got %v", err)
	}
}

func TestInvalidExpressionErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  error
	}{
		{"a3", parser.ErrInvalidExpression},
		{"a ^", parser.ErrInvalidExpression},
		{"a ^ bc", parser.ErrInvalidExpression},
		{"(a + b", parser.ErrUnbalancedParentheses},
		{"a v b)", parser.ErrUnbalancedParentheses},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			sess, _ := newTestSession(t)
			testutil.AssertErrorIs(t, sess.Execute(tt.input), tt.want)
			if sess.current != nil {
				t.Error("a failed expression must not become current")
			}
		})
	}
}

func TestFailedExpressionKeepsPrevious(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t)
	run(t, sess, buf, "a ^ b")
	testutil.AssertError(t, sess.Execute("a ^ 3"))
	testutil.AssertEqual(t, sess.source, "a ^ b")
}

func TestCommandsRequireExpression(t *testing.T) {
	t.Parallel()
	for _, cmd := range []string{"table", "simplify", "primes", "minterms", "vars", "ast", "equiv a", "dot out.dot", "html out.html"} {
		t.Run(cmd, func(t *testing.T) {
			sess, _ := newTestSession(t)
			testutil.AssertErrorIs(t, sess.Execute(cmd), errNoExpression)
		})
	}
}

func TestUsageErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		cmd  string
		want string
	}{
		{"dot", "usage: dot"},
		{"html", "usage: html"},
		{"load", "usage: load"},
		{"columns sometimes", "usage: columns"},
		{"plugin nnf now", "usage: plugin nnf"},
	}
	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			sess, _ := newTestSession(t)
			err := sess.Execute(tt.cmd)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected %q, got %v", tt.want, err)
			}
		})
	}
}

func TestCommandsAreCaseInsensitive(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t)
	run(t, sess, buf, "a ^ b")
	out := run(t, sess, buf, "SIMPLIFY")
	testutil.AssertEqual(t, out, "  a ^ b\n")
}

// --- Inspection ---

func TestSimplifyCommand(t *testing.T) {
	t.Parallel()
	tests := []struct {
		expr string
		want string
	}{
		{"a or (a and b)", "a"},
		{"a and (a and b)", "a and b"},
		{"a v ~a", "Always True"},
		{"a ^ ~a", "Always False"},
		{"(a*b*c) + (a*-b*-d) + (a*b*-c) + (a*b*d)", "(a * b) + (a * -d)"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			sess, buf := newTestSession(t)
			run(t, sess, buf, tt.expr)
			out := run(t, sess, buf, "simplify")
			testutil.AssertEqual(t, out, "  "+tt.want+"\n")
		})
	}
}

func TestTableCommand(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t)
	run(t, sess, buf, "(a ^ b) ^ c")
	out := run(t, sess, buf, "table")
	assertContains(t, out, "(8 rows)", "| a | b | c |")
	if got := strings.Count(out, "\n"); got != 8+5 {
		t.Errorf("expected 13 lines (8 rows, header, 3 separators, count), got %d:\n%s", got, out)
	}
}

func TestMintermsCommand(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t)
	run(t, sess, buf, "a v b")
	out := run(t, sess, buf, "minterms")
	assertContains(t, out, "True rows: 0, 1, 2", "3 of 4 rows")
}

func TestVarsCommand(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t)
	run(t, sess, buf, "c v a")
	out := run(t, sess, buf, "vars")
	testutil.AssertEqual(t, out, "  Variables: a, c (4 rows)\n")
}

func TestPrimesCommand(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t)
	run(t, sess, buf, "a v b")
	out := run(t, sess, buf, "primes")
	assertContains(t, out, "* 1-  a", "* -1  b", "2 prime implicants, 2 essential, 2 selected")
}

func TestPrimesConstant(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t)
	run(t, sess, buf, "a v ~a")
	out := run(t, sess, buf, "primes")
	testutil.AssertEqual(t, out, "  No prime implicants (Always True)\n")
}

func TestASTCommand(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t)
	run(t, sess, buf, "~(a v b) ^ c")
	out := run(t, sess, buf, "ast")
	assertContains(t, out,
		"Source:     ~(a v b) ^ c",
		"Normalized: ~(avb)^c",
		"Dialect:    logic (input logic)",
		"Depth:      3",
		"Nodes:      5",
		"Operators: AND=1 OR=1 NOT=1",
		"Tree:",
	)
}

func TestEquivCommand(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t)
	run(t, sess, buf, "a -> b")

	out := run(t, sess, buf, "equiv ~a v b")
	assertContains(t, out, "  Equivalent: a -> b == ~a v b")

	out = run(t, sess, buf, "equiv a ^ b")
	assertContains(t, out, "Not equivalent")

	testutil.AssertErrorIs(t, sess.Execute("equiv a ^"), parser.ErrInvalidExpression)
	testutil.AssertEqual(t, sess.source, "a -> b")
}

func TestEquivOverDifferentVariables(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t)
	run(t, sess, buf, "a")
	out := run(t, sess, buf, "equiv a v (b ^ ~b)")
	assertContains(t, out, "  Equivalent:")
}

func TestExamplesCommand(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t)
	out := run(t, sess, buf, "examples")
	assertContains(t, out, "[1] a or (a and b)", "[8] (a+b+c)*(a+-b+-d)*(a+b+-c)*(a+b+d)")
	testutil.AssertEqual(t, strings.Count(out, "Simplified:"), len(sampleExpressions))
	testutil.AssertEqual(t, sess.source, sampleExpressions[len(sampleExpressions)-1])
}

// --- Output settings ---

func TestDialectCommand(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t)

	out := run(t, sess, buf, "dialect")
	testutil.AssertEqual(t, out, "  Output dialect: as typed\n")

	run(t, sess, buf, "dialect code")
	out = run(t, sess, buf, "a and b")
	assertContains(t, out, "Expression: a && b", "Dialect:    code", "Simplified: a && b")

	out = run(t, sess, buf, "dialect")
	testutil.AssertEqual(t, out, "  Output dialect: code\n")

	run(t, sess, buf, "dialect auto")
	testutil.AssertEqual(t, sess.current.String(), "a and b")
}

func TestDialectAppliesToCurrent(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t)
	run(t, sess, buf, "a ^ b", "dialect algebra")
	out := run(t, sess, buf, "simplify")
	testutil.AssertEqual(t, out, "  a * b\n")
}

func TestDialectUnknown(t *testing.T) {
	t.Parallel()
	sess, _ := newTestSession(t)
	err := sess.Execute("dialect klingon")
	if err == nil || !strings.Contains(err.Error(), "unknown dialect") {
		t.Errorf("expected unknown dialect error, got %v", err)
	}
}

func TestColumnsCommand(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t)

	out := run(t, sess, buf, "a ^ (b v c)", "table")
	if strings.Contains(out, " b v c |") {
		t.Errorf("default table should not show binary sub-expressions:\n%s", out)
	}

	run(t, sess, buf, "columns all")
	out = run(t, sess, buf, "table")
	assertContains(t, out, " b v c |")

	run(t, sess, buf, "columns negated")
	out = run(t, sess, buf, "table")
	if strings.Contains(out, " b v c |") {
		t.Errorf("columns negated should hide binary sub-expressions:\n%s", out)
	}
}

func TestNegatedColumnsShownByDefault(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t)
	out := run(t, sess, buf, "~(a v b) ^ c")
	assertContains(t, out, " ~(a v b) |")
}

// --- Plugins ---

func TestPluginExpand(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t)
	run(t, sess, buf, "a -> b")

	out := run(t, sess, buf, "plugin expand")
	testutil.AssertEqual(t, out, "  Expand enabled (implies, iff, nand, nor)\n")
	testutil.AssertEqual(t, sess.current.String(), "~a v b")

	out = run(t, sess, buf, "plugin off expand")
	testutil.AssertEqual(t, out, "  expand disabled\n")
	testutil.AssertEqual(t, sess.current.String(), "a -> b")
}

func TestPluginExpandSelectedOperators(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t)
	out := run(t, sess, buf, "plugin expand iff, nand")
	testutil.AssertEqual(t, out, "  Expand enabled (iff, nand)\n")

	run(t, sess, buf, "a -> b")
	testutil.AssertEqual(t, sess.current.String(), "a -> b")

	run(t, sess, buf, "a <-> b")
	testutil.AssertEqual(t, sess.current.String(), "(a ^ b) v (~a ^ ~b)")
}

func TestPluginExpandUnknownOperator(t *testing.T) {
	t.Parallel()
	sess, _ := newTestSession(t)
	err := sess.Execute("plugin expand xor")
	if err == nil || !strings.Contains(err.Error(), `unknown operator "xor"`) {
		t.Errorf("expected unknown operator error, got %v", err)
	}
	if len(sess.plugins.names()) != 0 {
		t.Error("plugin must not be registered on error")
	}
}

func TestPluginNNF(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t)
	run(t, sess, buf, "~(a ^ b)", "plugin nnf")
	testutil.AssertEqual(t, sess.current.String(), "~a v ~b")

	out := run(t, sess, buf, "simplify")
	testutil.AssertEqual(t, out, "  ~a v ~b\n")
}

func TestPluginsListing(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t)
	run(t, sess, buf, "plugin nnf")
	out := run(t, sess, buf, "plugins")
	assertContains(t, out, "Available plugins:", "on   (negation normal form)")
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "expand") && !strings.HasSuffix(line, "off") {
			t.Errorf("expand should be off: %q", line)
		}
	}
}

func TestPluginOffErrors(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t)

	err := sess.Execute("plugin off nnf")
	if err == nil || !strings.Contains(err.Error(), "not enabled") {
		t.Errorf("expected not enabled error, got %v", err)
	}

	err = sess.Execute("plugin bogus")
	if err == nil || !strings.Contains(err.Error(), "unknown plugin: bogus") {
		t.Errorf("expected unknown plugin error, got %v", err)
	}

	run(t, sess, buf, "plugin nnf", "plugin expand")
	out := run(t, sess, buf, "plugin off")
	testutil.AssertEqual(t, out, "  All plugins disabled\n")
	testutil.AssertEqual(t, len(sess.plugins.names()), 0)
}

func TestPluginsKeepTruthTable(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t)
	run(t, sess, buf, "~(a -> (b nor c))")
	before := run(t, sess, buf, "minterms")
	run(t, sess, buf, "plugin nnf")
	after := run(t, sess, buf, "minterms")
	testutil.AssertEqual(t, after, before)
}

// --- Other commands ---

func TestResetCommand(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t)
	out := run(t, sess, buf, "a", "reset")
	testutil.AssertEqual(t, out, "  Expression cleared\n")
	testutil.AssertErrorIs(t, sess.Execute("table"), errNoExpression)
}

func TestEngineCommand(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t)
	out := run(t, sess, buf, "engine mysql")
	testutil.AssertEqual(t, out, "  Engine set to mysql\n")
	testutil.AssertEqual(t, sess.engine, "mysql")

	err := sess.Execute("engine oracle")
	if err == nil || !strings.Contains(err.Error(), "unknown engine") {
		t.Errorf("expected unknown engine error, got %v", err)
	}
}

func TestNewSessionDefaultsEngine(t *testing.T) {
	t.Parallel()
	sess := NewSession("oracle", nil)
	testutil.AssertEqual(t, sess.engine, "sqlite")
}

func TestHelpCommand(t *testing.T) {
	t.Parallel()
	sess, buf := newTestSession(t)
	out := run(t, sess, buf, "help")
	assertContains(t, out, "plugin expand [ops]", "history [filter]", "columns all|negated")
}

// --- Files ---

func TestDotCommand(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	sess, buf := newTestSession(t)
	run(t, sess, buf, "~(a v b) ^ c")

	path := filepath.Join(dir, "tree.dot")
	out := run(t, sess, buf, "dot "+path)
	assertContains(t, out, "Wrote DOT to "+path, "(6 nodes)")

	data, err := os.ReadFile(path)
	testutil.AssertNoError(t, err)
	assertContains(t, string(data), "digraph AST {", "Variable\\nc", "AND")
}

func TestDotCommandCompressed(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	sess, buf := newTestSession(t)
	run(t, sess, buf, "a ^ b")

	path := filepath.Join(dir, "tree.dot.zst")
	run(t, sess, buf, "dot "+path)

	data, err := export.ReadFile(path)
	testutil.AssertNoError(t, err)
	assertContains(t, string(data), "digraph AST {")
}

func TestHTMLCommand(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	sess, buf := newTestSession(t)
	run(t, sess, buf, "a or (a and b)")

	path := filepath.Join(dir, "table.html")
	out := run(t, sess, buf, "html "+path)
	assertContains(t, out, "Wrote HTML to "+path, "(4 rows)")

	data, err := os.ReadFile(path)
	testutil.AssertNoError(t, err)
	assertContains(t, string(data), "<table>", "Simplified: <code>a</code>", "4 rows, 2 true")
}

// --- Batch loading ---

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	w, err := export.Create(path)
	testutil.AssertNoError(t, err)
	_, err = io.WriteString(w, content)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, w.Close())
}

func TestLoadCommand(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "batch.json")
	writeTestFile(t, path, `["a ^ b", "a3", {"name": "demorgan", "expression": "~(a v b)"}]`)

	sess, buf := newTestSession(t)
	out := run(t, sess, buf, "load "+path)
	assertContains(t, out,
		"[1/3] a ^ b",
		"[2/3] a3",
		"Error: expr: invalid expression",
		"[3/3] demorgan: ~(a v b)",
		"Loaded 3 expressions (1 failed)",
	)
	testutil.AssertEqual(t, sess.source, "~(a v b)")
}

func TestLoadCommandCompressedObject(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "batch.json.zst")
	writeTestFile(t, path, `{"expressions": ["a && b", "a || !a"]}`)

	sess, buf := newTestSession(t)
	out := run(t, sess, buf, "load "+path)
	assertContains(t, out, "Simplified: a && b", "Simplified: Always True", "Loaded 2 expressions (0 failed)")
}

func TestLoadCommandErrors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	sess, _ := newTestSession(t)

	err := sess.Execute("load " + filepath.Join(dir, "missing.json"))
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	writeTestFile(t, bad, `{"expressions": 5}`)
	testutil.AssertErrorIs(t, sess.Execute("load "+bad), errBatchShape)
}

func TestParseBatch(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{"array", `["a", "b ^ c"]`, []string{"a", "b ^ c"}, false},
		{"object", `{"expressions": ["a"]}`, []string{"a"}, false},
		{"named items", `[{"name": "x", "expression": "a v b"}]`, []string{"a v b"}, false},
		{"empty array", `[]`, []string{}, false},
		{"not json", `[a`, nil, true},
		{"scalar", `"a ^ b"`, nil, true},
		{"missing expressions", `{"items": []}`, nil, true},
		{"number item", `[1]`, nil, true},
		{"object without expression", `[{"name": "x"}]`, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := parseBatch([]byte(tt.input))
			if tt.wantErr {
				testutil.AssertError(t, err)
				return
			}
			testutil.AssertNoError(t, err)
			got := make([]string, len(items))
			for i, it := range items {
				got[i] = it.text
			}
			testutil.AssertStrings(t, got, tt.want)
		})
	}
}
