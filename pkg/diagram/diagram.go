package diagram

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/sankeyflow/pkg/dataset"
	"github.com/matzehuels/sankeyflow/pkg/errors"
	"github.com/matzehuels/sankeyflow/pkg/flow"
	"github.com/matzehuels/sankeyflow/pkg/flow/transform"
	"github.com/matzehuels/sankeyflow/pkg/interact"
	"github.com/matzehuels/sankeyflow/pkg/observability"
	"github.com/matzehuels/sankeyflow/pkg/render/sankey/layout"
	"github.com/matzehuels/sankeyflow/pkg/render/sankey/scene"
	"github.com/matzehuels/sankeyflow/pkg/render/sankey/styles"
	"github.com/matzehuels/sankeyflow/pkg/view"
)

// Config is the per-instance session state.
type Config struct {
	Layout   layout.Options
	Theme    styles.Theme
	Animated bool
}

// DefaultConfig returns the stock frame and theme.
func DefaultConfig() Config {
	return Config{
		Layout: layout.DefaultOptions(),
		Theme:  styles.DefaultTheme,
	}
}

// Diagram is one diagram instance.
type Diagram struct {
	id     string
	cfg    Config
	logger *log.Logger

	graph  *flow.Graph
	layout layout.Layout
	scene  *scene.Scene
	hover  *scene.Hover

	view view.Transform
	ctrl *interact.Controller
}

// Option configures [New].
type Option func(*Diagram)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option { return func(d *Diagram) { d.logger = l } }

// WithID fixes the instance id instead of generating one.
func WithID(id string) Option { return func(d *Diagram) { d.id = id } }

// New creates an empty diagram. A zero Layout means layout.DefaultOptions;
// otherwise only a zero frame size or node width is defaulted.
func New(cfg Config, opts ...Option) *Diagram {
	if cfg.Layout == (layout.Options{}) {
		cfg.Layout = layout.DefaultOptions()
	}
	cfg.Layout = cfg.Layout.WithDefaults()
	if cfg.Theme.Name == "" {
		cfg.Theme = styles.DefaultTheme
	}
	d := &Diagram{
		cfg:    cfg,
		logger: log.NewWithOptions(io.Discard, log.Options{}),
		view:   view.Identity(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.id == "" {
		d.id = uuid.NewString()
	}
	d.ctrl = interact.NewController(d, &d.view)
	return d
}

// ID returns the instance id.
func (d *Diagram) ID() string { return d.id }

// Config returns the current settings.
func (d *Diagram) Config() Config { return d.cfg }

// Loaded reports whether a graph has been committed.
func (d *Diagram) Loaded() bool { return d.graph != nil }

// Graph returns the committed graph, or nil.
func (d *Diagram) Graph() *flow.Graph { return d.graph }

// Layout returns the current geometry snapshot.
func (d *Diagram) Layout() *layout.Layout { return &d.layout }

// Scene returns the current scene, or nil before the first load.
func (d *Diagram) Scene() *scene.Scene { return d.scene }

// View returns the current view transform.
func (d *Diagram) View() view.Transform { return d.view }

// SetView replaces the view transform, clamping its scale.
func (d *Diagram) SetView(v view.Transform) {
	v.Scale = view.Clamp(v.Scale)
	d.view = v
}

// Controller returns the interaction controller bound to this diagram.
func (d *Diagram) Controller() *interact.Controller { return d.ctrl }

// Load validates ds and replaces the current graph with it. On error the
// diagram is unchanged. source names the dataset in logs and hooks.
func (d *Diagram) Load(ctx context.Context, source string, ds dataset.Dataset) error {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, source)
	start := time.Now()

	g, err := ds.Graph()
	hooks.OnLoadComplete(ctx, source, len(ds.Nodes), len(ds.Links), time.Since(start), err)
	if err != nil {
		d.logger.Debug("load rejected", "diagram", d.id, "source", source, "error", err)
		return err
	}
	return d.LoadGraph(ctx, g)
}

// LoadGraph lays out g and commits it. The diagram takes ownership of g.
func (d *Diagram) LoadGraph(ctx context.Context, g *flow.Graph) error {
	if g == nil || g.NodeCount() == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "graph has no nodes")
	}
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, g.NodeCount())
	start := time.Now()

	transform.AssignLayers(g)
	l := layout.Build(g, d.cfg.Layout)
	sc := d.buildScene(g, &l)

	hooks.OnLayoutComplete(ctx, time.Since(start), nil)
	d.logger.Debug("diagram loaded", "diagram", d.id, "nodes", g.NodeCount(), "links", g.LinkCount(), "layers", g.MaxLayer()+1)

	d.ctrl.Cancel()
	d.graph, d.layout, d.scene = g, l, sc
	d.hover = scene.NewHover(sc)
	return nil
}

func (d *Diagram) buildScene(g *flow.Graph, l *layout.Layout) *scene.Scene {
	return scene.Build(g, l,
		scene.WithID(d.id),
		scene.WithTheme(d.cfg.Theme),
		scene.WithAnimated(d.cfg.Animated),
	)
}

// SetLayoutOptions validates opts and re-lays out the loaded graph without
// reloading data. Zero padding and minimum node height are applied as is.
func (d *Diagram) SetLayoutOptions(opts layout.Options) error {
	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return err
	}
	d.cfg.Layout = opts
	d.Relayout()
	return nil
}

// SetStyle switches theme and fill mode and rebuilds the scene.
func (d *Diagram) SetStyle(theme styles.Theme, animated bool) {
	d.cfg.Theme, d.cfg.Animated = theme, animated
	if d.graph != nil {
		d.scene = d.buildScene(d.graph, &d.layout)
		d.hover = scene.NewHover(d.scene)
	}
}

// Stats summarizes the loaded graph.
func (d *Diagram) Stats() (flow.Stats, error) {
	if d.graph == nil {
		return flow.Stats{}, errNotLoaded()
	}
	return d.graph.Stats(), nil
}

// Hover updates the hovered item from a screen-space pointer position.
func (d *Diagram) Hover(x, y float64) []scene.Event {
	if d.hover == nil {
		return nil
	}
	p := d.view.Inverse(layout.Point{X: x, Y: y})
	return d.hover.Move(p.X, p.Y)
}

// ClearHover leaves the hovered item, if any.
func (d *Diagram) ClearHover() []scene.Event {
	if d.hover == nil {
		return nil
	}
	return d.hover.Clear()
}

func errNotLoaded() error {
	return errors.New(errors.ErrCodeInvalidInput, "no dataset loaded")
}

// =============================================================================
// interact.Surface
// =============================================================================

// NodeAt returns the node under (x, y) in layout space.
func (d *Diagram) NodeAt(x, y float64) (int, bool) {
	if d.graph == nil {
		return -1, false
	}
	return d.layout.NodeAt(x, y)
}

// NodeRect returns the current rectangle of node idx.
func (d *Diagram) NodeRect(idx int) layout.Rect {
	return d.layout.Nodes[idx].Rect
}

// MoveNode moves node idx and patches only its incident connectors, in the
// layout and in the scene.
func (d *Diagram) MoveNode(idx int, y0 float64) {
	d.layout.MoveNode(idx, y0)
	d.scene.UpdateNode(&d.layout, idx)
}

// Relayout recomputes the geometry of the loaded graph from its layers.
func (d *Diagram) Relayout() {
	if d.graph == nil {
		return
	}
	d.layout = layout.Build(d.graph, d.cfg.Layout)
	d.scene.Sync(&d.layout)
}

// FrameHeight is the layout height.
func (d *Diagram) FrameHeight() float64 { return d.cfg.Layout.Height }

var _ interact.Surface = (*Diagram)(nil)

// String implements fmt.Stringer.
func (d *Diagram) String() string {
	if d.graph == nil {
		return fmt.Sprintf("diagram %s (empty)", d.id)
	}
	return fmt.Sprintf("diagram %s (%d nodes, %d links)", d.id, d.graph.NodeCount(), d.graph.LinkCount())
}
