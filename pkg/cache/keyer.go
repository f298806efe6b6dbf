package cache

// LayoutKeyOpts lists every option that changes a layout snapshot. Besides
// geometry a snapshot records the diagram id and each node's colours.
type LayoutKeyOpts struct {
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	NodeWidth     float64 `json:"node_width"`
	NodePadding   float64 `json:"node_padding"`
	MinNodeHeight float64 `json:"min_node_height"`
	ID            string  `json:"id,omitempty"`
	Theme         string  `json:"theme,omitempty"`
	Animated      bool    `json:"animated,omitempty"`
}

// ArtifactKeyOpts lists every option that changes a rendered artifact.
type ArtifactKeyOpts struct {
	Format   string  `json:"format"`
	Theme    string  `json:"theme,omitempty"`
	Animated bool    `json:"animated,omitempty"`
	Scale    float64 `json:"scale,omitempty"`
	View     string  `json:"view,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// LayoutKey keys a layout snapshot by dataset hash and geometry options.
	LayoutKey(datasetHash string, opts LayoutKeyOpts) string
	// ArtifactKey keys one rendered output by layout hash and render options.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key components into "kind:sha256" strings.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the stock keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey implements Keyer.
func (DefaultKeyer) LayoutKey(datasetHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", datasetHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
