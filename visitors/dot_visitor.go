package visitors

import (
	"fmt"
	"strings"

	"github.com/bawdo/proplogic/nodes"
)

// Color constants for DOT node categories.
const (
	colorVariable = "#B0D4E8" // light blue
	colorLogical  = "#FFEB80" // yellow, AND and OR
	colorDerived  = "#FFB347" // orange, IMPLIES IFF NAND NOR
	colorNegation = "#FF6961" // red
)

// dotNode represents a single node in the DOT graph.
type dotNode struct {
	id    string
	label string
	color string
}

// dotEdge represents a directed edge between two nodes in the DOT graph.
type dotEdge struct {
	from  string
	to    string
	label string
}

// DotVisitor walks the syntax tree and produces Graphviz DOT output.
// Negations are drawn as their own NOT node above the operand they negate.
// It implements nodes.Visitor.
type DotVisitor struct {
	nextID    int
	nodes     []dotNode
	edges     []dotEdge
	parentID  string
	edgeLabel string
}

var _ nodes.Visitor = (*DotVisitor)(nil)

// NewDotVisitor creates a new DotVisitor ready to walk a tree.
func NewDotVisitor() *DotVisitor {
	return &DotVisitor{}
}

// addNode creates a new DOT node with the given label and color, returning its ID.
func (dv *DotVisitor) addNode(label, color string) string {
	id := fmt.Sprintf("n%d", dv.nextID)
	dv.nextID++
	dv.nodes = append(dv.nodes, dotNode{id: id, label: label, color: color})
	return id
}

// addEdge records a directed edge from one node to another.
func (dv *DotVisitor) addEdge(from, to, label string) {
	dv.edges = append(dv.edges, dotEdge{from: from, to: to, label: label})
}

// visitChild saves and restores the parent context, sets the edge label,
// and calls child.Accept to recursively visit the child node.
func (dv *DotVisitor) visitChild(parentID, label string, child *nodes.Node) string {
	savedParent := dv.parentID
	savedLabel := dv.edgeLabel
	dv.parentID = parentID
	dv.edgeLabel = label
	result := child.Accept(dv)
	dv.parentID = savedParent
	dv.edgeLabel = savedLabel
	return result
}

// connectToParent adds an edge from the current parentID to nodeID if a parent exists.
func (dv *DotVisitor) connectToParent(nodeID string) {
	if dv.parentID != "" {
		dv.addEdge(dv.parentID, nodeID, dv.edgeLabel)
	}
}

// negation inserts a NOT node when n is negated and makes it the parent
// of whatever is added next.
func (dv *DotVisitor) negation(n *nodes.Node) {
	if !n.Negated {
		return
	}
	id := dv.addNode("NOT", colorNegation)
	dv.connectToParent(id)
	dv.parentID, dv.edgeLabel = id, "EXPR"
}

// NodeCount returns the number of nodes accumulated so far.
func (dv *DotVisitor) NodeCount() int {
	return len(dv.nodes)
}

// ToDot returns the accumulated graph as a DOT document.
func (dv *DotVisitor) ToDot() string {
	var sb strings.Builder

	sb.WriteString("digraph AST {\n")
	sb.WriteString("  rankdir=TB;\n")
	sb.WriteString("  node [shape=box, style=filled, fontname=\"Helvetica\"];\n")
	sb.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n")

	for _, n := range dv.nodes {
		sb.WriteString(fmt.Sprintf("  %s [label=\"%s\", fillcolor=\"%s\"];\n",
			n.id, escapeLabel(n.label), n.color))
	}

	for _, e := range dv.edges {
		if e.label != "" {
			sb.WriteString(fmt.Sprintf("  %s -> %s [label=\"%s\"];\n", e.from, e.to, e.label))
		} else {
			sb.WriteString(fmt.Sprintf("  %s -> %s;\n", e.from, e.to))
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}

// escapeLabel escapes double quotes in DOT labels.
// Backslash sequences like \n are intentional DOT line breaks and are preserved.
func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "\\\"")
}

// --- Visitor interface implementation ---

func (dv *DotVisitor) VisitVariable(n *nodes.Node) string {
	savedParent, savedLabel := dv.parentID, dv.edgeLabel
	dv.negation(n)
	id := dv.addNode("Variable\\n"+n.Name, colorVariable)
	dv.connectToParent(id)
	dv.parentID, dv.edgeLabel = savedParent, savedLabel
	return id
}

func (dv *DotVisitor) VisitBinary(n *nodes.Node) string {
	savedParent, savedLabel := dv.parentID, dv.edgeLabel
	dv.negation(n)
	color := colorDerived
	if n.Op == nodes.OpAnd || n.Op == nodes.OpOr {
		color = colorLogical
	}
	id := dv.addNode(n.Op.String(), color)
	dv.connectToParent(id)
	dv.visitChild(id, "LEFT", n.Left)
	dv.visitChild(id, "RIGHT", n.Right)
	dv.parentID, dv.edgeLabel = savedParent, savedLabel
	return id
}

// ToDot renders n as a complete DOT document.
func ToDot(n *nodes.Node) string {
	dv := NewDotVisitor()
	n.Accept(dv)
	return dv.ToDot()
}
