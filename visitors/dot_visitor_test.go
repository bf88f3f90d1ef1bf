package visitors

import (
	"strings"
	"testing"

	"github.com/bawdo/proplogic/internal/testutil"
	"github.com/bawdo/proplogic/nodes"
)

func TestDotVisitVariable(t *testing.T) {
	dv := NewDotVisitor()
	v("a").Accept(dv)
	dot := dv.ToDot()

	if !strings.HasPrefix(dot, "digraph AST {\n") {
		t.Errorf("expected DOT output to start with digraph, got:\n%s", dot)
	}
	assertContains(t, dot, `n0 [label="Variable\na", fillcolor="#B0D4E8"];`)
	testutil.AssertEqual(t, dv.NodeCount(), 1)
	if strings.Contains(dot, "->") {
		t.Errorf("expected no edges, got:\n%s", dot)
	}
}

func TestDotVisitNegatedVariable(t *testing.T) {
	dv := NewDotVisitor()
	notV("a").Accept(dv)
	dot := dv.ToDot()

	assertContains(t, dot, `n0 [label="NOT", fillcolor="#FF6961"];`)
	assertContains(t, dot, `n1 [label="Variable\na", fillcolor="#B0D4E8"];`)
	assertContains(t, dot, `n0 -> n1 [label="EXPR"];`)
}

func TestDotVisitBinary(t *testing.T) {
	dv := NewDotVisitor()
	bin(v("a"), nodes.OpAnd, v("b")).Accept(dv)
	dot := dv.ToDot()

	assertContains(t, dot, `n0 [label="AND", fillcolor="#FFEB80"];`)
	assertContains(t, dot, `n0 -> n1 [label="LEFT"];`)
	assertContains(t, dot, `n0 -> n2 [label="RIGHT"];`)
}

func TestDotVisitDerivedOperatorColor(t *testing.T) {
	for _, op := range []nodes.Operator{nodes.OpImplies, nodes.OpIff, nodes.OpNand, nodes.OpNor} {
		dot := ToDot(bin(v("a"), op, v("b")))
		assertContains(t, dot, `n0 [label="`+op.String()+`", fillcolor="#FFB347"];`)
	}
}

func TestDotVisitNegatedGroup(t *testing.T) {
	dv := NewDotVisitor()
	negatedGroup().Accept(dv)
	dot := dv.ToDot()

	testutil.AssertEqual(t, dv.NodeCount(), 6)
	for _, edge := range []string{
		`n0 -> n1 [label="LEFT"];`,
		`n1 -> n2 [label="EXPR"];`,
		`n2 -> n3 [label="LEFT"];`,
		`n2 -> n4 [label="RIGHT"];`,
		`n0 -> n5 [label="RIGHT"];`,
	} {
		assertContains(t, dot, edge)
	}
	assertContains(t, dot, `n1 [label="NOT"`)
	assertContains(t, dot, `n2 [label="OR"`)
}

func TestDotDocumentIsClosed(t *testing.T) {
	dot := ToDot(negatedGroup())
	if !strings.HasSuffix(dot, "}\n") {
		t.Errorf("expected closing brace, got:\n%s", dot)
	}
	testutil.AssertEqual(t, strings.Count(dot, "->"), 5)
}

func TestEscapeLabel(t *testing.T) {
	testutil.AssertEqual(t, escapeLabel(`say "hi"`), `say \"hi\"`)
	testutil.AssertEqual(t, escapeLabel(`Variable\na`), `Variable\na`)
}
