// Package pipeline provides the dataset → layout → render pipeline shared by
// the CLI and the HTTP host.
//
// Centralizing the stages keeps defaults, validation and caching identical
// across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: validate the dataset and build the flow graph
//  2. Layout: assign layers and compute node rectangles and link curves
//  3. Render: export the diagram in the requested formats (SVG, PNG, JSON, DOT)
//
// Layout snapshots and rendered artifacts are cached, keyed by the content
// hash of the dataset and the options that affect each stage.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Dataset: dataset.Sample(),
//	    Formats: []string{"svg", "png"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sankeyflow/pkg/cache"
	"github.com/matzehuels/sankeyflow/pkg/dataset"
	"github.com/matzehuels/sankeyflow/pkg/diagram"
	"github.com/matzehuels/sankeyflow/pkg/errors"
	"github.com/matzehuels/sankeyflow/pkg/flow"
	"github.com/matzehuels/sankeyflow/pkg/render"
	"github.com/matzehuels/sankeyflow/pkg/render/sankey/layout"
	"github.com/matzehuels/sankeyflow/pkg/render/sankey/sink"
	"github.com/matzehuels/sankeyflow/pkg/render/sankey/styles"
	"github.com/matzehuels/sankeyflow/pkg/view"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and HTTP host
// =============================================================================

const (
	// DefaultSource names inline datasets in logs and hooks.
	DefaultSource = "inline"

	// DefaultScale is the default PNG pixel density.
	DefaultScale = 1.0

	// MaxScale bounds the PNG pixel density.
	MaxScale = 8.0

	// DefaultTheme is the default colour theme.
	DefaultTheme = "default"
)

// DefaultFormat is the format rendered when none is requested.
const DefaultFormat = string(render.FormatSVG)

// ValidFormats is the set of supported output formats.
var ValidFormats = func() map[string]bool {
	m := make(map[string]bool, len(render.Formats))
	for _, f := range render.Formats {
		m[string(f)] = true
	}
	return m
}()

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options
	Source  string          `json:"source,omitempty"`
	Dataset dataset.Dataset `json:"dataset"`
	ID      string          `json:"id,omitempty"` // diagram id; derived from the dataset hash when empty
	Refresh bool            `json:"refresh,omitempty"`

	// Layout options
	Width         float64  `json:"width,omitempty"`
	Height        float64  `json:"height,omitempty"`
	NodeWidth     float64  `json:"node_width,omitempty"`
	NodePadding   *float64 `json:"node_padding,omitempty"` // nil means the default; zero is allowed
	MinNodeHeight *float64 `json:"min_node_height,omitempty"`

	// Render options
	Formats  []string       `json:"formats,omitempty"`
	Theme    string         `json:"theme,omitempty"`
	Palette  []string       `json:"palette,omitempty"`
	Animated bool           `json:"animated,omitempty"`
	Scale    float64        `json:"scale,omitempty"`
	Detailed bool           `json:"detailed,omitempty"` // DOT and nodelink labels
	View     view.Transform `json:"view"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the validated flow graph, with layers assigned.
	Graph *flow.Graph

	// DatasetHash is the content hash of the dataset.
	DatasetHash string

	// Layout is the geometry snapshot at the identity view.
	Layout sink.Snapshot

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Flow summarizes the graph.
	Flow flow.Stats

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	LinkCount  int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout snapshot came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid. Names are case-sensitive.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, json, dot, nodelink)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateTheme checks that a theme name is known.
func ValidateTheme(theme string) error {
	if _, ok := styles.LookupTheme(theme); !ok || theme == "" {
		return errors.New(errors.ErrCodeInvalidOption, "invalid theme: %q (must be one of: %v)", theme, styles.ThemeNames())
	}
	return nil
}

// ValidatePalette checks that every palette entry is a hex colour.
func ValidatePalette(palette []string) error {
	for i, c := range palette {
		if !styles.ValidColor(c) {
			return errors.New(errors.ErrCodeInvalidOption, "palette entry %d: invalid colour %q", i, c)
		}
	}
	return nil
}

// ValidateScale checks the PNG pixel density.
func ValidateScale(scale float64) error {
	if scale <= 0 || scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidOption, "scale must be in (0, %g], got %g", MaxScale, scale)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks the dataset is present.
func (o *Options) ValidateForLoad() error {
	if len(o.Dataset.Nodes) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "dataset has no nodes")
	}
	if o.Source == "" {
		o.Source = DefaultSource
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetLayoutDefaults fills zero frame and node width fields and unset padding
// and minimum node height.
func (o *Options) SetLayoutDefaults() {
	lo := o.LayoutOptions()
	o.Width, o.Height, o.NodeWidth = lo.Width, lo.Height, lo.NodeWidth
	o.NodePadding, o.MinNodeHeight = Float(lo.NodePadding), Float(lo.MinNodeHeight)
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout sets defaults and validates the geometry.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	return o.LayoutOptions().Validate()
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.View.Scale == 0 {
		o.View.Scale = 1
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateTheme(o.Theme); err != nil {
		return err
	}
	if err := ValidatePalette(o.Palette); err != nil {
		return err
	}
	if err := ValidateScale(o.Scale); err != nil {
		return err
	}
	return errors.ValidateRange("view scale", o.View.Scale, view.MinScale, view.MaxScale)
}

// LayoutOptions returns the geometry options with defaults filled in.
func (o *Options) LayoutOptions() layout.Options {
	lo := layout.Options{
		Width:         o.Width,
		Height:        o.Height,
		NodeWidth:     o.NodeWidth,
		NodePadding:   layout.DefaultNodePadding,
		MinNodeHeight: layout.DefaultMinNodeHeight,
	}
	if o.NodePadding != nil {
		lo.NodePadding = *o.NodePadding
	}
	if o.MinNodeHeight != nil {
		lo.MinNodeHeight = *o.MinNodeHeight
	}
	return lo.WithDefaults()
}

// Float returns a pointer to v, for the optional geometry fields of Options.
func Float(v float64) *float64 { return &v }

// ResolveTheme returns the named theme with the palette override applied.
func (o *Options) ResolveTheme() styles.Theme {
	th, ok := styles.LookupTheme(o.Theme)
	if !ok {
		th = styles.DefaultTheme
	}
	if len(o.Palette) > 0 {
		th.Palette = o.Palette
	}
	return th
}

// DiagramConfig returns the per-instance settings for a diagram built from o.
func (o *Options) DiagramConfig() diagram.Config {
	return diagram.Config{
		Layout:   o.LayoutOptions(),
		Theme:    o.ResolveTheme(),
		Animated: o.Animated,
	}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	lo := o.LayoutOptions()
	return cache.LayoutKeyOpts{
		Width:         lo.Width,
		Height:        lo.Height,
		NodeWidth:     lo.NodeWidth,
		NodePadding:   lo.NodePadding,
		MinNodeHeight: lo.MinNodeHeight,
		ID:            o.ID,
		Theme:         o.themeKey(),
		Animated:      o.Animated,
	}
}

// themeKey names the resolved theme, with the palette override folded in.
func (o *Options) themeKey() string {
	theme := o.Theme
	if theme == "" {
		theme = DefaultTheme
	}
	if len(o.Palette) > 0 {
		if h, err := cache.HashJSON(o.Palette); err == nil {
			theme += "+" + h[:12]
		}
	}
	return theme
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format:   format,
		Theme:    o.themeKey(),
		Animated: o.Animated,
		View:     o.View.SVG(),
	}
	switch format {
	case string(render.FormatPNG):
		k.Scale = o.Scale
	case string(render.FormatDOT), string(render.FormatNodeLink):
		// Both describe the graph, not the geometry.
		k.View = ""
		if o.Detailed {
			k.Format += "+detailed"
		}
	}
	return k
}
