package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/sankeyflow/pkg/diagram"
	"github.com/matzehuels/sankeyflow/pkg/render"
)

// RenderDiagram exports an already loaded diagram in every format of opts.
// The diagram's current view is used, so interactive callers can render what
// the user sees.
func RenderDiagram(ctx context.Context, d *diagram.Diagram, opts Options) (map[string][]byte, error) {
	exportOpts := diagram.ExportOptions{
		Scale:      opts.Scale,
		Tooltips:   true,
		Background: opts.Theme != DefaultTheme,
		Detailed:   opts.Detailed,
	}
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, name := range opts.Formats {
		format, err := render.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		data, err := d.ExportWith(ctx, format, exportOpts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", name, err)
		}
		artifacts[name] = data
	}
	return artifacts, nil
}
