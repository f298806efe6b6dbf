// Package sink provides output format renderers for Sankey scenes.
//
// # Overview
//
// A "sink" transforms a [scene.Scene] into a final output format:
//
//   - SVG: vector output with per-link gradients and hover titles
//   - PNG: raster output drawn with fogleman/gg
//   - JSON: the layout snapshot for external tools
//
// SVG and PNG both paint at a [view.Transform], so an export matches what an
// interactive surface currently shows. Links are painted before nodes.
//
// Basic usage:
//
//	svg := sink.RenderSVG(sc, sink.WithView(v), sink.WithTooltips())
//	png, err := sink.RenderPNG(sc, sink.WithPNGView(v), sink.WithScale(2))
//
// # Coordinates
//
// Every coordinate in the SVG output is written with [layout.FormatFloat], the
// shortest form that parses back to the same float64. Reading the rectangles
// back out of an export therefore yields the in-memory geometry exactly.
//
// [scene.Scene]: github.com/matzehuels/sankeyflow/pkg/render/sankey/scene.Scene
// [view.Transform]: github.com/matzehuels/sankeyflow/pkg/view.Transform
// [layout.FormatFloat]: github.com/matzehuels/sankeyflow/pkg/render/sankey/layout.FormatFloat
package sink
