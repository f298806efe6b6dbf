package dataset

import (
	"github.com/matzehuels/sankeyflow/pkg/errors"
	"github.com/matzehuels/sankeyflow/pkg/flow"
	"github.com/matzehuels/sankeyflow/pkg/render/sankey/styles"
)

// Dataset is raw diagram input: nodes in index order and links by name.
type Dataset struct {
	Nodes []flow.NodeSpec `json:"nodes" yaml:"nodes"`
	Links []flow.LinkSpec `json:"links" yaml:"links"`
}

// Graph validates the dataset and builds a fresh graph from it. A dataset
// without nodes is rejected; one without links is not.
func (d Dataset) Graph() (*flow.Graph, error) {
	if len(d.Nodes) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "dataset has no nodes")
	}
	for _, n := range d.Nodes {
		if n.Color != "" && !styles.ValidColor(n.Color) {
			return nil, errors.New(errors.ErrCodeInvalidInput, "node %q: invalid colour %q", n.Name, n.Color)
		}
	}
	return flow.Build(d.Nodes, d.Links)
}

// Names returns the node names in index order.
func (d Dataset) Names() []string {
	out := make([]string, len(d.Nodes))
	for i, n := range d.Nodes {
		out[i] = n.Name
	}
	return out
}

// FromGraph captures g as a dataset. Links are written by name, so a graph
// with duplicate names does not round-trip exactly.
func FromGraph(g *flow.Graph) Dataset {
	d := Dataset{
		Nodes: make([]flow.NodeSpec, g.NodeCount()),
		Links: make([]flow.LinkSpec, g.LinkCount()),
	}
	for i, n := range g.Nodes() {
		d.Nodes[i] = flow.NodeSpec{Name: n.Name, Color: n.Color}
	}
	for i, l := range g.Links() {
		src, _ := g.Node(l.Source)
		tgt, _ := g.Node(l.Target)
		d.Links[i] = flow.LinkSpec{Source: src.Name, Target: tgt.Name, Value: l.Value}
	}
	return d
}
