// Package diagram owns one interactive Sankey diagram instance.
//
// A [Diagram] ties together the graph, its layout snapshot, the scene built
// from it, the view transform and the interaction controller. Every
// instance carries its own [Config] and id; nothing is shared between
// instances, so callers that need many diagrams (one per HTTP request, say)
// simply create many.
//
// Loading is all-or-nothing: a dataset that fails validation leaves the
// previously loaded graph, layout and scene untouched.
//
//	d := diagram.New(diagram.DefaultConfig())
//	if err := d.Load(ctx, "sample", dataset.Sample()); err != nil { ... }
//	svg, err := d.Export(ctx, render.FormatSVG)
//
// A Diagram is not safe for concurrent use.
package diagram
