package layout

import "github.com/matzehuels/sankeyflow/pkg/errors"

// Default geometry, in user units.
const (
	DefaultWidth         = 1000.0
	DefaultHeight        = 600.0
	DefaultNodeWidth     = 25.0
	DefaultNodePadding   = 15.0
	DefaultMinNodeHeight = 20.0
)

// Options controls the geometry solver.
type Options struct {
	Width         float64 `json:"width" toml:"width"`
	Height        float64 `json:"height" toml:"height"`
	NodeWidth     float64 `json:"node_width" toml:"node_width"`
	NodePadding   float64 `json:"node_padding" toml:"node_padding"`
	MinNodeHeight float64 `json:"min_node_height" toml:"min_node_height"`
}

// DefaultOptions returns the stock 1000x600 frame.
func DefaultOptions() Options {
	return Options{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		NodeWidth:     DefaultNodeWidth,
		NodePadding:   DefaultNodePadding,
		MinNodeHeight: DefaultMinNodeHeight,
	}
}

// WithDefaults fills a zero frame size or node width from DefaultOptions.
// NodePadding and MinNodeHeight are kept as given, since zero is a valid
// setting for both.
func (o Options) WithDefaults() Options {
	d := DefaultOptions()
	if o.Width == 0 {
		o.Width = d.Width
	}
	if o.Height == 0 {
		o.Height = d.Height
	}
	if o.NodeWidth == 0 {
		o.NodeWidth = d.NodeWidth
	}
	return o
}

// Validate rejects frames the solver cannot draw into.
func (o Options) Validate() error {
	if err := errors.ValidateRange("width", o.Width, 1, 100000); err != nil {
		return err
	}
	if err := errors.ValidateRange("height", o.Height, 1, 100000); err != nil {
		return err
	}
	if err := errors.ValidateRange("node width", o.NodeWidth, 1, o.Width); err != nil {
		return err
	}
	if err := errors.ValidateRange("node padding", o.NodePadding, 0, o.Height); err != nil {
		return err
	}
	return errors.ValidateRange("min node height", o.MinNodeHeight, 0, o.Height)
}
