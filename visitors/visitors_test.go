package visitors

import (
	"strings"
	"testing"

	"github.com/bawdo/proplogic/internal/testutil"
	"github.com/bawdo/proplogic/nodes"
)

func assertContains(t *testing.T, s, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Errorf("expected output to contain %q, got:\n%s", substr, s)
	}
}

func v(name string) *nodes.Node    { return nodes.Var(name, false, nodes.Logic) }
func notV(name string) *nodes.Node { return nodes.Var(name, true, nodes.Logic) }

func bin(l *nodes.Node, op nodes.Operator, r *nodes.Node) *nodes.Node {
	return nodes.Binary(l, op, r, false, nodes.Logic)
}

// ~(a v b) ^ c
func negatedGroup() *nodes.Node {
	return bin(nodes.Binary(v("a"), nodes.OpOr, v("b"), true, nodes.Logic), nodes.OpAnd, v("c"))
}

// --- Variables ---

func TestVisitVariable(t *testing.T) {
	t.Parallel()
	testutil.AssertRender(t, NewPseudoVisitor(), v("a"), "a")
	testutil.AssertRender(t, NewLogicVisitor(), v("a"), "a")
	testutil.AssertRender(t, NewCodeVisitor(), v("a"), "a")
	testutil.AssertRender(t, NewBooleanVisitor(), v("a"), "a")
}

func TestVisitNegatedVariable(t *testing.T) {
	t.Parallel()
	testutil.AssertRender(t, NewPseudoVisitor(), notV("a"), "not a")
	testutil.AssertRender(t, NewLogicVisitor(), notV("a"), "~a")
	testutil.AssertRender(t, NewCodeVisitor(), notV("a"), "!a")
	testutil.AssertRender(t, NewBooleanVisitor(), notV("a"), "-a")
}

// --- Binary operators ---

func TestVisitBinaryPerDialect(t *testing.T) {
	t.Parallel()
	n := negatedGroup()
	testutil.AssertRender(t, NewPseudoVisitor(), n, "not (a or b) and c")
	testutil.AssertRender(t, NewLogicVisitor(), n, "~(a v b) ^ c")
	testutil.AssertRender(t, NewCodeVisitor(), n, "!(a || b) && c")
	testutil.AssertRender(t, NewBooleanVisitor(), n, "-(a + b) * c")
}

func TestVisitNestedBinaryParenthesized(t *testing.T) {
	t.Parallel()
	n := bin(v("a"), nodes.OpImplies, bin(notV("b"), nodes.OpNor, v("c")))
	testutil.AssertRender(t, NewLogicVisitor(), n, "a -> (~b ⬇ c)")
	testutil.AssertRender(t, NewPseudoVisitor(), n, "a implies (not b nor c)")

	n = bin(bin(v("a"), nodes.OpNand, v("b")), nodes.OpIff, v("c"))
	testutil.AssertRender(t, NewBooleanVisitor(), n, "(a -* b) <-> c")
	testutil.AssertRender(t, NewCodeVisitor(), n, "(a | b) <-> c")
}

func TestVisitEveryOperator(t *testing.T) {
	t.Parallel()
	want := map[nodes.Operator]string{
		nodes.OpAnd:     "a ^ b",
		nodes.OpOr:      "a v b",
		nodes.OpImplies: "a -> b",
		nodes.OpIff:     "a <-> b",
		nodes.OpNand:    "a | b",
		nodes.OpNor:     "a ⬇ b",
	}
	for _, op := range nodes.Operators() {
		testutil.AssertRender(t, NewLogicVisitor(), bin(v("a"), op, v("b")), want[op])
	}
}

// --- Dialect helpers ---

func TestSpelling(t *testing.T) {
	t.Parallel()
	testutil.AssertEqual(t, Spelling(nodes.Pseudo, nodes.OpIff), "iff")
	testutil.AssertEqual(t, Spelling(nodes.Code, nodes.OpOr), "||")
	testutil.AssertEqual(t, Spelling(nodes.Boolean, nodes.OpNor), "-+")
	testutil.AssertEqual(t, Spelling(nodes.Logic, nodes.OpNot), "~")
}

func TestForDialect(t *testing.T) {
	t.Parallel()
	if _, ok := ForDialect(nodes.Pseudo).(*PseudoVisitor); !ok {
		t.Error("expected PseudoVisitor")
	}
	if _, ok := ForDialect(nodes.Logic).(*LogicVisitor); !ok {
		t.Error("expected LogicVisitor")
	}
	if _, ok := ForDialect(nodes.Code).(*CodeVisitor); !ok {
		t.Error("expected CodeVisitor")
	}
	if _, ok := ForDialect(nodes.Boolean).(*BooleanVisitor); !ok {
		t.Error("expected BooleanVisitor")
	}
}

func TestRenderUsesNodeDialect(t *testing.T) {
	t.Parallel()
	n := negatedGroup()
	testutil.AssertEqual(t, Render(n), "~(a v b) ^ c")
	testutil.AssertEqual(t, Render(n.WithDialect(nodes.Pseudo)), "not (a or b) and c")
	testutil.AssertEqual(t, Render(n.WithDialect(nodes.Code)), "!(a || b) && c")
}

func TestRenderCanonical(t *testing.T) {
	t.Parallel()
	canonical := "(a AND NOT b) OR c"
	tests := []struct {
		dialect nodes.Dialect
		want    string
	}{
		{nodes.Pseudo, "(a and not b) or c"},
		{nodes.Logic, "(a ^ ~b) v c"},
		{nodes.Code, "(a && !b) || c"},
		{nodes.Boolean, "(a * -b) + c"},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, RenderCanonical(canonical, tt.dialect), tt.want)
	}
}
