// Package pkg provides the core libraries for Sankeyflow flow visualization.
//
// # Overview
//
// Sankeyflow turns weighted links between named nodes into a layered Sankey
// diagram: nodes are stacked in columns, sized by the flow passing through
// them, and joined by bands whose width is proportional to each link's value.
// The pkg directory is organized into four main areas:
//
//  1. Domain model - [flow], [flow/transform] and [dataset]
//  2. Rendering - [render/sankey] (layout, scene, styles, sinks) and [render/nodelink]
//  3. Interaction - [diagram], [interact] and [view]
//  4. Orchestration - [pipeline], [cache], [config] and [observability]
//
// # Architecture
//
// The typical data flow through Sankeyflow:
//
//	Text / JSON / YAML dataset
//	         ↓
//	    [dataset] package (parse node and link lists)
//	         ↓
//	    [flow] package (graph, node totals, statistics)
//	         ↓
//	    [flow/transform] package (column assignment)
//	         ↓
//	    [render/sankey/layout] package (node boxes + link curves)
//	         ↓
//	    [render/sankey/scene] package (colored, hit-testable elements)
//	         ↓
//	    SVG/PNG/JSON/DOT output
//
// # Quick Start
//
// Render a dataset through the pipeline:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/sankeyflow/pkg/cache"
//	    "github.com/matzehuels/sankeyflow/pkg/dataset"
//	    "github.com/matzehuels/sankeyflow/pkg/pipeline"
//	)
//
//	ds, _ := dataset.Load("energy.yaml")
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil)
//	defer runner.Close()
//
//	result, _ := runner.Execute(context.Background(), pipeline.Options{
//	    Dataset: ds,
//	    Formats: []string{"svg", "png"},
//	    Theme:   "dark",
//	})
//	svg := result.Artifacts["svg"]
//
// Or drive the stages by hand:
//
//	g, _ := flow.Build(ds.Nodes, ds.Links)
//	l := layout.Build(g, layout.DefaultOptions())
//	s := scene.Build(g, &l)
//	svg := sink.RenderSVG(s, sink.WithTooltips())
//
// # Main Packages
//
// ## Domain Model
//
// [flow]: The flow graph. Nodes carry incoming and outgoing totals, links
// carry positive values, and [flow.Stats] summarizes balance and efficiency.
//
// [flow/transform]: Column assignment. Sources sit in column zero and every
// other node sits one column right of its deepest predecessor.
//
// [dataset]: Dataset encodings. The sectioned text format, separate node and
// link lists, JSON and YAML, plus the built-in sample, energy and random
// datasets.
//
// ## Rendering
//
// [render]: Output formats shared by every renderer.
//
// [render/sankey/layout]: Node boxes and cubic link curves inside a fixed
// frame.
//
// [render/sankey/scene]: Styled elements with stable ids, hit testing and
// hover tracking.
//
// [render/sankey/styles]: Themes, palettes and color blending.
//
// [render/sankey/sink]: SVG, PNG and JSON snapshot output.
//
// [render/nodelink]: Graphviz DOT export of the raw flow graph.
//
// ## Interaction
//
// [diagram]: A loaded dataset together with its layout, scene and view. The
// entry point for interactive hosts.
//
// [interact]: Pointer gestures. Dragging a node moves it vertically, dragging
// the canvas pans, and the wheel zooms.
//
// [view]: The pan and zoom transform with its clamping rules.
//
// ## Orchestration
//
// [pipeline]: Load, layout and render with cached intermediate results.
//
// [cache]: Content-addressed storage on disk, in Redis or nowhere.
//
// [config]: The TOML configuration file and its defaults.
//
// [observability]: Hooks for pipeline, cache and HTTP events.
//
// [errors]: Validation errors with stable codes.
//
// [buildinfo]: Version information injected at build time.
//
// # Testing
//
// Every package has table-driven tests next to its sources. The built-in
// datasets in [dataset] are the usual fixtures:
//
//	go test ./...
//
// [flow]: https://pkg.go.dev/github.com/matzehuels/sankeyflow/pkg/flow
// [flow/transform]: https://pkg.go.dev/github.com/matzehuels/sankeyflow/pkg/flow/transform
// [dataset]: https://pkg.go.dev/github.com/matzehuels/sankeyflow/pkg/dataset
// [render]: https://pkg.go.dev/github.com/matzehuels/sankeyflow/pkg/render
// [render/sankey]: https://pkg.go.dev/github.com/matzehuels/sankeyflow/pkg/render/sankey/layout
// [render/sankey/layout]: https://pkg.go.dev/github.com/matzehuels/sankeyflow/pkg/render/sankey/layout
// [render/sankey/scene]: https://pkg.go.dev/github.com/matzehuels/sankeyflow/pkg/render/sankey/scene
// [render/sankey/styles]: https://pkg.go.dev/github.com/matzehuels/sankeyflow/pkg/render/sankey/styles
// [render/sankey/sink]: https://pkg.go.dev/github.com/matzehuels/sankeyflow/pkg/render/sankey/sink
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/sankeyflow/pkg/render/nodelink
// [diagram]: https://pkg.go.dev/github.com/matzehuels/sankeyflow/pkg/diagram
// [interact]: https://pkg.go.dev/github.com/matzehuels/sankeyflow/pkg/interact
// [view]: https://pkg.go.dev/github.com/matzehuels/sankeyflow/pkg/view
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/sankeyflow/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/sankeyflow/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/sankeyflow/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/sankeyflow/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/sankeyflow/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/sankeyflow/pkg/buildinfo
// [flow.Stats]: https://pkg.go.dev/github.com/matzehuels/sankeyflow/pkg/flow#Stats
package pkg
