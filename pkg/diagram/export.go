package diagram

import (
	"context"
	"time"

	"github.com/matzehuels/sankeyflow/pkg/errors"
	"github.com/matzehuels/sankeyflow/pkg/observability"
	"github.com/matzehuels/sankeyflow/pkg/render"
	"github.com/matzehuels/sankeyflow/pkg/render/nodelink"
	"github.com/matzehuels/sankeyflow/pkg/render/sankey/sink"
)

// ExportOptions tunes [Diagram.ExportWith].
type ExportOptions struct {
	Scale      float64 // PNG pixel density, 0 means 1
	Tooltips   bool    // SVG <title> elements
	Background bool    // SVG background rectangle
	Detailed   bool    // DOT and nodelink labels with values
}

// Export renders the current scene at the current view transform.
func (d *Diagram) Export(ctx context.Context, format render.Format) ([]byte, error) {
	return d.ExportWith(ctx, format, ExportOptions{Tooltips: true})
}

// ExportWith renders with explicit options. The DOT and nodelink formats
// describe the graph rather than the geometry and ignore the view.
func (d *Diagram) ExportWith(ctx context.Context, format render.Format, opts ExportOptions) ([]byte, error) {
	if d.graph == nil {
		return nil, errNotLoaded()
	}
	hooks := observability.Pipeline()
	formats := []string{string(format)}
	hooks.OnRenderStart(ctx, formats)
	start := time.Now()

	data, err := d.export(ctx, format, opts)
	hooks.OnRenderComplete(ctx, formats, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	d.logger.Debug("exported", "diagram", d.id, "format", format, "bytes", len(data))
	return data, nil
}

func (d *Diagram) export(ctx context.Context, format render.Format, opts ExportOptions) ([]byte, error) {
	switch format {
	case render.FormatSVG:
		var so []sink.SVGOption
		so = append(so, sink.WithView(d.view))
		if opts.Tooltips {
			so = append(so, sink.WithTooltips())
		}
		if opts.Background {
			so = append(so, sink.WithBackground())
		}
		return sink.RenderSVG(d.scene, so...), nil
	case render.FormatPNG:
		scale := opts.Scale
		if scale == 0 {
			scale = 1
		}
		return sink.RenderPNG(d.scene, sink.WithPNGView(d.view), sink.WithScale(scale))
	case render.FormatJSON:
		return sink.RenderJSON(d.scene, sink.WithJSONView(d.view))
	case render.FormatDOT:
		return []byte(d.dot(opts)), nil
	case render.FormatNodeLink:
		return nodelink.RenderSVG(ctx, d.dot(opts))
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
}

func (d *Diagram) dot(opts ExportOptions) string {
	return nodelink.ToDOT(d.graph, nodelink.Options{Detailed: opts.Detailed, Palette: d.cfg.Theme.Palette})
}

// Snapshot returns the JSON-ready geometry at the current view.
func (d *Diagram) Snapshot() (sink.Snapshot, error) {
	if d.graph == nil {
		return sink.Snapshot{}, errNotLoaded()
	}
	return sink.NewSnapshot(d.scene, d.view), nil
}
