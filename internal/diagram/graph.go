package diagram

import (
	"io"
	"strconv"

	"github.com/specialistvlad/umlgridgo/internal/graphviz"
)

// GraphName is the name given to the generated digraph.
const GraphName = "UML Class Diagram"

// EdgeKind distinguishes the two relationships a diagram can show.
type EdgeKind int

const (
	// Generalization is an inheritance edge, drawn parent to child with a
	// hollow triangle.
	Generalization EdgeKind = iota
	// Association is an arrowless edge between two related classes.
	Association
)

func (k EdgeKind) String() string {
	switch k {
	case Generalization:
		return "generalization"
	case Association:
		return "association"
	default:
		return "EdgeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Node is one class box. Compartments holds the name, attribute and method
// fields in that order. They are escaped record text, not the raw catalog
// lines: plain lines come through unchanged, each followed by LineBreak, but
// record metacharacters and backslashes gain a leading backslash.
type Node struct {
	ID           string
	Compartments []string
	Attrs        map[string]string
}

// Label returns the full record label of the node.
func (n Node) Label() string {
	return recordLabel(n.Compartments)
}

// Edge is one relationship between two classes.
type Edge struct {
	From  string
	To    string
	Kind  EdgeKind
	Attrs map[string]string
}

// Graph is the renderer-independent description of a class diagram.
type Graph struct {
	Attrs map[string]string
	Nodes []Node
	Edges []Edge
}

// EdgesOfKind returns the edges of kind k in emission order.
func (g *Graph) EdgesOfKind(k EdgeKind) []Edge {
	var out []Edge
	for _, e := range g.Edges {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

// Graphviz converts the description into a graph for the Graphviz writer.
func (g *Graph) Graphviz() *graphviz.Graph {
	out := &graphviz.Graph{
		Name:  GraphName,
		Attrs: toAttributes(g.Attrs),
		Nodes: make([]graphviz.Node, 0, len(g.Nodes)),
		Edges: make([]graphviz.Edge, 0, len(g.Edges)),
	}
	for _, n := range g.Nodes {
		attrs := toAttributes(n.Attrs)
		attrs["label"] = graphviz.EscString(n.Label())
		out.Nodes = append(out.Nodes, graphviz.Node{ID: n.ID, Attrs: attrs})
	}
	for _, e := range g.Edges {
		out.Edges = append(out.Edges, graphviz.Edge{From: e.From, To: e.To, Attrs: toAttributes(e.Attrs)})
	}
	return out
}

// WriteDOT writes the diagram to w in the Graphviz language.
func (g *Graph) WriteDOT(w io.Writer) error {
	return graphviz.WriteDirectedGraph(g.Graphviz(), w)
}

func toAttributes(in map[string]string) graphviz.Attributes {
	out := make(graphviz.Attributes, len(in)+1)
	for k, v := range in {
		out[k] = graphviz.Val(v)
	}
	return out
}
