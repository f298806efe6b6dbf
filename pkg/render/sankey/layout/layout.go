package layout

import (
	"slices"

	"github.com/matzehuels/sankeyflow/pkg/flow"
)

// NodeBox is the computed rectangle of one node.
type NodeBox struct {
	Index int
	Layer int
	Rect
}

// LinkPath is the computed connector of one link.
type LinkPath struct {
	Index  int
	Source int
	Target int
	Value  float64
	Width  float64
	Curve  Curve
}

// Layout is one complete geometry snapshot. Node and link slices are indexed
// like the graph they were built from.
type Layout struct {
	Options   Options
	BandWidth float64
	MaxLayer  int
	Nodes     []NodeBox
	Links     []LinkPath

	incident [][]int
}

// Build computes a full snapshot from g, whose layers must already be
// assigned. A zero frame size or node width falls back to the defaults.
func Build(g *flow.Graph, opts Options) Layout {
	opts = opts.WithDefaults()
	nodes := g.Nodes()

	l := Layout{
		Options:  opts,
		MaxLayer: g.MaxLayer(),
		Nodes:    make([]NodeBox, len(nodes)),
		Links:    make([]LinkPath, g.LinkCount()),
		incident: make([][]int, len(nodes)),
	}
	l.BandWidth = (opts.Width - opts.NodeWidth) / float64(max(l.MaxLayer, 1))

	for i, n := range nodes {
		x0 := float64(n.Layer) * l.BandWidth
		l.Nodes[i] = NodeBox{
			Index: i,
			Layer: n.Layer,
			Rect:  Rect{X0: x0, X1: x0 + opts.NodeWidth},
		}
		l.incident[i] = g.Incident(i)
	}

	for _, members := range groupByLayer(nodes) {
		l.packLayer(nodes, members)
	}

	for i, lk := range g.Links() {
		l.Links[i] = LinkPath{
			Index:  i,
			Source: lk.Source,
			Target: lk.Target,
			Value:  lk.Value,
			Width:  StrokeWidth(lk.Value),
		}
		l.rebuildLink(i)
	}
	return l
}

// groupByLayer returns node indices per layer in ascending layer order,
// each group in index order.
func groupByLayer(nodes []flow.Node) [][]int {
	byLayer := make(map[int][]int)
	var layers []int
	for _, n := range nodes {
		if _, ok := byLayer[n.Layer]; !ok {
			layers = append(layers, n.Layer)
		}
		byLayer[n.Layer] = append(byLayer[n.Layer], n.Index)
	}
	slices.Sort(layers)
	out := make([][]int, 0, len(layers))
	for _, k := range layers {
		out = append(out, byLayer[k])
	}
	return out
}

func (l *Layout) packLayer(nodes []flow.Node, members []int) {
	opts := l.Options
	var total float64
	for _, idx := range members {
		total += nodes[idx].Weight()
	}
	available := opts.Height - float64(len(members)-1)*opts.NodePadding

	y := 0.0
	for _, idx := range members {
		h := max(nodes[idx].Weight()/total*available, opts.MinNodeHeight)
		box := &l.Nodes[idx]
		box.Y0 = y
		box.Y1 = y + h
		y += h + opts.NodePadding
	}
}

func (l *Layout) rebuildLink(i int) {
	p := &l.Links[i]
	p.Curve = BuildCurve(l.Nodes[p.Source].Rect, l.Nodes[p.Target].Rect)
}

// NodeHeight returns the height of node idx.
func (l *Layout) NodeHeight(idx int) float64 {
	return l.Nodes[idx].Height()
}

// Incident returns the links touching node idx.
func (l *Layout) Incident(idx int) []int {
	if idx < 0 || idx >= len(l.incident) {
		return nil
	}
	return l.incident[idx]
}

// MoveNode sets the top edge of node idx to y0, keeping its height, and
// rebuilds only the connectors incident to it. It returns the indices of the
// links it touched. No clamping happens here.
func (l *Layout) MoveNode(idx int, y0 float64) []int {
	if idx < 0 || idx >= len(l.Nodes) {
		return nil
	}
	box := &l.Nodes[idx]
	h := box.Height()
	box.Y0 = y0
	box.Y1 = y0 + h
	touched := l.Incident(idx)
	for _, li := range touched {
		l.rebuildLink(li)
	}
	return touched
}

// Attached reports whether every connector starts and ends on its nodes'
// current rectangles.
func (l *Layout) Attached() bool {
	for _, p := range l.Links {
		src, tgt := l.Nodes[p.Source].Rect, l.Nodes[p.Target].Rect
		if p.Curve.Start.X != src.X1 || p.Curve.Start.Y != src.CenterY() {
			return false
		}
		if p.Curve.End.X != tgt.X0 || p.Curve.End.Y != tgt.CenterY() {
			return false
		}
	}
	return true
}

// Bounds returns the smallest rectangle containing every node, or the frame
// when that is larger.
func (l *Layout) Bounds() Rect {
	b := Rect{X1: l.Options.Width, Y1: l.Options.Height}
	for _, n := range l.Nodes {
		b.X0 = min(b.X0, n.X0)
		b.Y0 = min(b.Y0, n.Y0)
		b.X1 = max(b.X1, n.X1)
		b.Y1 = max(b.Y1, n.Y1)
	}
	return b
}

// Clone returns a deep copy.
func (l Layout) Clone() Layout {
	c := l
	c.Nodes = slices.Clone(l.Nodes)
	c.Links = slices.Clone(l.Links)
	c.incident = make([][]int, len(l.incident))
	for i, inc := range l.incident {
		c.incident[i] = slices.Clone(inc)
	}
	return c
}

// NodeAt returns the topmost node containing (x, y) in layout space.
func (l *Layout) NodeAt(x, y float64) (int, bool) {
	for i := len(l.Nodes) - 1; i >= 0; i-- {
		if l.Nodes[i].Contains(x, y) {
			return i, true
		}
	}
	return -1, false
}
