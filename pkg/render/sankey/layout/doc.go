// Package layout computes the geometry of a Sankey diagram.
//
// # Overview
//
// [Build] turns a layered [flow.Graph] into a [Layout]: one rectangle per
// node and one cubic connector per link. Horizontal placement is by layer,
// vertical extents are proportional to each node's flow weight within its
// layer.
//
// # Horizontal Bands
//
// The drawable width minus one node thickness is split into max(maxLayer, 1)
// equal bands. A node in layer k starts at k * bandWidth.
//
// # Vertical Packing
//
// Within a layer, nodes keep their index order and are stacked from the top
// with a fixed padding between them. Each node receives a share of the
// remaining height proportional to max(ValueIn, ValueOut, 1), floored at
// [Options.MinNodeHeight]. When the floors dominate, a layer overflows the
// frame; the solver does not renormalize.
//
// # Connectors
//
// [BuildCurve] draws an S-curve from the right edge of the source rectangle
// to the left edge of the target rectangle, both anchored at the vertical
// centres. Stroke width follows the flow value via [StrokeWidth] and never
// the view scale.
//
// # Incremental Updates
//
// [Layout.MoveNode] repositions one node and rebuilds only the connectors
// incident to it. A full [Build] replaces everything.
package layout
