package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sankeyflow/pkg/pipeline"
	"github.com/matzehuels/sankeyflow/pkg/render/sankey/styles"
)

// diagramFlags are the geometry and style flags shared by every command that
// builds a diagram. Only flags set on the command line override the config
// file.
type diagramFlags struct {
	width         float64
	height        float64
	nodeWidth     float64
	nodePadding   float64
	minNodeHeight float64
	theme         string
	palette       []string
	animated      bool
}

// bind registers the flags on cmd.
func (f *diagramFlags) bind(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.width, "width", 0, "frame width (default 1000)")
	cmd.Flags().Float64Var(&f.height, "height", 0, "frame height (default 600)")
	cmd.Flags().Float64Var(&f.nodeWidth, "node-width", 0, "node thickness (default 25)")
	cmd.Flags().Float64Var(&f.nodePadding, "node-padding", 0, "vertical gap between nodes (default 15)")
	cmd.Flags().Float64Var(&f.minNodeHeight, "min-node-height", 0, "minimum node height (default 20)")
	cmd.Flags().StringVar(&f.theme, "theme", "", "colour theme: "+strings.Join(styles.ThemeNames(), ", "))
	cmd.Flags().StringSliceVar(&f.palette, "palette", nil, "node colours assigned by index (comma-separated hex)")
	cmd.Flags().BoolVar(&f.animated, "animated", false, "fill nodes with a lightened three-stop gradient")

	completeChoices(cmd, "theme", styles.ThemeNames)
}

// apply copies every flag the user set onto opts.
func (f *diagramFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	set := cmd.Flags().Changed
	if set("width") {
		opts.Width = f.width
	}
	if set("height") {
		opts.Height = f.height
	}
	if set("node-width") {
		opts.NodeWidth = f.nodeWidth
	}
	if set("node-padding") {
		opts.NodePadding = pipeline.Float(f.nodePadding)
	}
	if set("min-node-height") {
		opts.MinNodeHeight = pipeline.Float(f.minNodeHeight)
	}
	if set("theme") {
		opts.Theme = f.theme
	}
	if set("palette") {
		opts.Palette = f.palette
	}
	if set("animated") {
		opts.Animated = f.animated
	}
}
