package scene

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/matzehuels/sankeyflow/pkg/flow"
	"github.com/matzehuels/sankeyflow/pkg/render/sankey/layout"
	"github.com/matzehuels/sankeyflow/pkg/render/sankey/styles"
)

// Lightening applied to the centre stop of animated node fills, in percent.
const animatedLighten = 20

// Shape is the drawable rectangle of one node.
type Shape struct {
	Index    int
	Layer    int
	Name     string
	Color    string
	Stops    []string // Fill gradient stops; a single entry means a flat fill
	Gradient string   // Gradient id when len(Stops) > 1
	Rect     layout.Rect
	ValueIn  float64
	ValueOut float64
}

// Stroke is the drawable connector of one link.
type Stroke struct {
	Index      int
	Key        string // "source-target"
	Source     int
	Target     int
	Value      float64
	Share      float64 // Percent of total flow
	Width      float64
	Gradient   string // "gradient-{index}"
	FromColor  string
	ToColor    string
	Curve      layout.Curve
	SourceName string
	TargetName string
}

// Path returns the SVG path data of the stroke.
func (s Stroke) Path() string { return s.Curve.SVGPath() }

// Scene is the render surface of one diagram.
type Scene struct {
	ID       string
	Width    float64
	Height   float64
	Theme    styles.Theme
	Animated bool
	Shapes   []Shape
	Strokes  []Stroke

	handles  map[string][]int // link key -> stroke indices
	nodeKeys [][]string       // link keys incident to each node
}

// Option configures [Build].
type Option func(*Scene)

// WithID fixes the scene id instead of generating one.
func WithID(id string) Option { return func(s *Scene) { s.ID = id } }

// WithTheme selects the colours and stroke constants.
func WithTheme(t styles.Theme) Option { return func(s *Scene) { s.Theme = t } }

// WithAnimated switches node fills to three-stop gradients.
func WithAnimated(on bool) Option { return func(s *Scene) { s.Animated = on } }

// Build creates the scene for g laid out as l. Nodes without a colour take
// the theme palette entry for their index.
func Build(g *flow.Graph, l *layout.Layout, opts ...Option) *Scene {
	s := &Scene{
		Width:   l.Options.Width,
		Height:  l.Options.Height,
		Theme:   styles.DefaultTheme,
		handles: make(map[string][]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	nodes := g.Nodes()
	s.Shapes = make([]Shape, len(nodes))
	for i, n := range nodes {
		color := styles.NodeColor(s.Theme.Palette, i, n.Color)
		sh := Shape{
			Index:    i,
			Layer:    n.Layer,
			Name:     n.Name,
			Color:    color,
			Stops:    []string{color},
			Rect:     l.Nodes[i].Rect,
			ValueIn:  n.ValueIn,
			ValueOut: n.ValueOut,
		}
		if s.Animated {
			sh.Stops = []string{color, styles.Lighten(color, animatedLighten), color}
			sh.Gradient = "node-gradient-" + strconv.Itoa(i)
		}
		s.Shapes[i] = sh
	}

	total := g.TotalFlow()
	links := g.Links()
	s.Strokes = make([]Stroke, len(links))
	s.nodeKeys = make([][]string, len(nodes))
	for i, lk := range links {
		p := l.Links[i]
		st := Stroke{
			Index:      i,
			Key:        lk.Key(),
			Source:     lk.Source,
			Target:     lk.Target,
			Value:      lk.Value,
			Width:      p.Width,
			Gradient:   "gradient-" + strconv.Itoa(i),
			FromColor:  s.Shapes[lk.Source].Color,
			ToColor:    s.Shapes[lk.Target].Color,
			Curve:      p.Curve,
			SourceName: nodes[lk.Source].Name,
			TargetName: nodes[lk.Target].Name,
		}
		if total > 0 {
			st.Share = lk.Value / total * 100
		}
		s.Strokes[i] = st
		if len(s.handles[st.Key]) == 0 {
			s.nodeKeys[lk.Source] = append(s.nodeKeys[lk.Source], st.Key)
			if lk.Target != lk.Source {
				s.nodeKeys[lk.Target] = append(s.nodeKeys[lk.Target], st.Key)
			}
		}
		s.handles[st.Key] = append(s.handles[st.Key], i)
	}
	return s
}

// Handles returns the stroke indices registered under a link key, in link
// order. Parallel links share a key.
func (s *Scene) Handles(key string) []int {
	return s.handles[key]
}

// UpdateNode copies node idx's rectangle from l, then the curve of every
// stroke registered under a link key incident to idx. It is the
// position-only patch applied while a node is dragged.
func (s *Scene) UpdateNode(l *layout.Layout, idx int) {
	if idx < 0 || idx >= len(s.Shapes) {
		return
	}
	s.Shapes[idx].Rect = l.Nodes[idx].Rect
	for _, key := range s.nodeKeys[idx] {
		for _, h := range s.Handles(key) {
			s.Strokes[h].Curve = l.Links[h].Curve
		}
	}
}

// Sync copies every rectangle and curve from l. The graph shape must match.
func (s *Scene) Sync(l *layout.Layout) {
	s.Width, s.Height = l.Options.Width, l.Options.Height
	for i := range s.Shapes {
		s.Shapes[i].Rect = l.Nodes[i].Rect
	}
	for i := range s.Strokes {
		s.Strokes[i].Curve = l.Links[i].Curve
		s.Strokes[i].Width = l.Links[i].Width
	}
}
