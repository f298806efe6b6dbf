package flow

import (
	"fmt"
	"slices"

	"github.com/matzehuels/sankeyflow/pkg/errors"
)

// Node is a vertex of the flow graph.
//
// SourceLinks and TargetLinks hold indices into the graph's link sequence,
// never copies of the links themselves.
type Node struct {
	Index    int     // Position in the node sequence
	Name     string  // Display label
	Color    string  // Fill colour as #rrggbb, empty for the palette default
	ValueIn  float64 // Sum of incoming link values
	ValueOut float64 // Sum of outgoing link values
	Layer    int     // Horizontal rank, assigned by transform.AssignLayers

	SourceLinks []int // Outgoing links
	TargetLinks []int // Incoming links
}

// Balance is ValueIn minus ValueOut.
func (n Node) Balance() float64 { return n.ValueIn - n.ValueOut }

// Weight is the vertical weight used by the layout. It is floored at 1 so
// that disconnected nodes keep a visible height.
func (n Node) Weight() float64 { return max(n.ValueIn, n.ValueOut, 1) }

// IsSource reports whether the node has no incoming links.
func (n Node) IsSource() bool { return len(n.TargetLinks) == 0 }

// IsSink reports whether the node has no outgoing links.
func (n Node) IsSink() bool { return len(n.SourceLinks) == 0 }

// Link is a weighted directed edge between two node indices.
type Link struct {
	Source int
	Target int
	Value  float64
}

// Key identifies a link in rendered output as "source-target".
func (l Link) Key() string { return LinkKey(l.Source, l.Target) }

// NodeSpec describes one node before it is added to a graph.
type NodeSpec struct {
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

// LinkSpec describes one link by node name. Line is the 1-based input line
// the link came from, or 0 when unknown, and is echoed in validation errors.
type LinkSpec struct {
	Source string  `json:"source" yaml:"source"`
	Target string  `json:"target" yaml:"target"`
	Value  float64 `json:"value" yaml:"value"`
	Line   int     `json:"-" yaml:"-"`
}

// Graph is an immutable-shape flow graph. Only Node.Layer changes after
// construction.
//
// The zero value is an empty graph. Graph is not safe for concurrent use
// without external synchronization.
type Graph struct {
	nodes  []Node
	links  []Link
	byName map[string]int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{byName: make(map[string]int)}
}

// Build validates the specs and returns a new graph. It never touches any
// existing graph; on error the returned graph is nil.
func Build(nodes []NodeSpec, links []LinkSpec) (*Graph, error) {
	g := New()
	for i, n := range nodes {
		if _, err := g.AddNode(n); err != nil {
			return nil, fmt.Errorf("node %d: %w", i+1, err)
		}
	}
	for _, l := range links {
		if err := g.AddLinkByName(l.Source, l.Target, l.Value); err != nil {
			if l.Line > 0 {
				return nil, errors.AtLine(err, l.Line)
			}
			return nil, err
		}
	}
	return g, nil
}

// FromIndices builds a graph from node names and index-addressed links.
func FromIndices(names []string, links []Link) (*Graph, error) {
	g := New()
	for _, name := range names {
		if _, err := g.AddNode(NodeSpec{Name: name}); err != nil {
			return nil, err
		}
	}
	for i, l := range links {
		if err := g.AddLink(l); err != nil {
			return nil, fmt.Errorf("link %d: %w", i+1, err)
		}
	}
	return g, nil
}

// AddNode appends a node and returns its index.
// Returns an INVALID_NAME error if the trimmed name is unusable.
func (g *Graph) AddNode(spec NodeSpec) (int, error) {
	if err := errors.ValidateNodeName(spec.Name); err != nil {
		return -1, err
	}
	if g.byName == nil {
		g.byName = make(map[string]int)
	}
	idx := len(g.nodes)
	g.nodes = append(g.nodes, Node{Index: idx, Name: spec.Name, Color: spec.Color})
	if _, exists := g.byName[spec.Name]; !exists {
		g.byName[spec.Name] = idx
	}
	return idx, nil
}

// AddLink appends a link between two existing node indices and updates the
// aggregates of both endpoints.
func (g *Graph) AddLink(l Link) error {
	if l.Source < 0 || l.Source >= len(g.nodes) {
		return errors.New(errors.ErrCodeUnknownNode, "source index %d out of range", l.Source)
	}
	if l.Target < 0 || l.Target >= len(g.nodes) {
		return errors.New(errors.ErrCodeUnknownNode, "target index %d out of range", l.Target)
	}
	if err := errors.ValidateValue(l.Value); err != nil {
		return err
	}

	idx := len(g.links)
	g.links = append(g.links, l)

	src, tgt := &g.nodes[l.Source], &g.nodes[l.Target]
	src.SourceLinks = append(src.SourceLinks, idx)
	src.ValueOut += l.Value
	tgt.TargetLinks = append(tgt.TargetLinks, idx)
	tgt.ValueIn += l.Value
	return nil
}

// AddLinkByName resolves both endpoints by exact name and appends the link.
// Returns an UNKNOWN_NODE error naming the missing node.
func (g *Graph) AddLinkByName(source, target string, value float64) error {
	s, ok := g.Lookup(source)
	if !ok {
		return errors.New(errors.ErrCodeUnknownNode, "unknown node %q", source)
	}
	t, ok := g.Lookup(target)
	if !ok {
		return errors.New(errors.ErrCodeUnknownNode, "unknown node %q", target)
	}
	return g.AddLink(Link{Source: s, Target: t, Value: value})
}

// Lookup returns the index of the first node called name.
func (g *Graph) Lookup(name string) (int, bool) {
	idx, ok := g.byName[name]
	return idx, ok
}

// Node returns a copy of the node at idx.
func (g *Graph) Node(idx int) (Node, bool) {
	if idx < 0 || idx >= len(g.nodes) {
		return Node{}, false
	}
	return g.nodes[idx], true
}

// Link returns the link at idx.
func (g *Graph) Link(idx int) (Link, bool) {
	if idx < 0 || idx >= len(g.links) {
		return Link{}, false
	}
	return g.links[idx], true
}

// Nodes returns the node sequence. The slice aliases the graph's storage;
// callers must not modify it.
func (g *Graph) Nodes() []Node { return g.nodes }

// Links returns the link sequence. The slice aliases the graph's storage;
// callers must not modify it.
func (g *Graph) Links() []Link { return g.links }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// LinkCount returns the number of links.
func (g *Graph) LinkCount() int { return len(g.links) }

// Names returns the node names in index order.
func (g *Graph) Names() []string {
	names := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		names[i] = n.Name
	}
	return names
}

// SetLayers overwrites every node's layer. layers must have one entry per
// node.
func (g *Graph) SetLayers(layers []int) {
	for i := range g.nodes {
		if i < len(layers) {
			g.nodes[i].Layer = layers[i]
		}
	}
}

// MaxLayer returns the highest assigned layer, or 0 for an empty graph.
func (g *Graph) MaxLayer() int {
	m := 0
	for _, n := range g.nodes {
		m = max(m, n.Layer)
	}
	return m
}

// Sources returns the indices of nodes without incoming links.
func (g *Graph) Sources() []int {
	var out []int
	for _, n := range g.nodes {
		if n.IsSource() {
			out = append(out, n.Index)
		}
	}
	return out
}

// Sinks returns the indices of nodes without outgoing links.
func (g *Graph) Sinks() []int {
	var out []int
	for _, n := range g.nodes {
		if n.IsSink() {
			out = append(out, n.Index)
		}
	}
	return out
}

// Incident returns the indices of every link touching idx, outgoing first.
// A self-loop appears once.
func (g *Graph) Incident(idx int) []int {
	if idx < 0 || idx >= len(g.nodes) {
		return nil
	}
	n := g.nodes[idx]
	out := make([]int, 0, len(n.SourceLinks)+len(n.TargetLinks))
	out = append(out, n.SourceLinks...)
	for _, li := range n.TargetLinks {
		if !slices.Contains(n.SourceLinks, li) {
			out = append(out, li)
		}
	}
	return out
}

// Clone returns a deep copy of the graph.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		nodes:  make([]Node, len(g.nodes)),
		links:  slices.Clone(g.links),
		byName: make(map[string]int, len(g.byName)),
	}
	for i, n := range g.nodes {
		n.SourceLinks = slices.Clone(n.SourceLinks)
		n.TargetLinks = slices.Clone(n.TargetLinks)
		c.nodes[i] = n
	}
	for k, v := range g.byName {
		c.byName[k] = v
	}
	return c
}
