// Package nodelink renders flow graphs as traditional node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz, where
// nodes appear as coloured boxes connected by arrows whose thickness follows
// the link value. It is a structural companion to the Sankey view, useful
// for spotting cycles and isolated nodes.
//
// # Usage
//
// Convert a graph to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG] (the nodelink output format)
//   - Saved and processed with external Graphviz tools
//
// Nodes are named n0, n1, ... by index so that duplicate display names stay
// distinct.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process rendering.
package nodelink
