package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/sankeyflow/pkg/flow"
	"github.com/matzehuels/sankeyflow/pkg/render/sankey/styles"
)

// Pen width range for edges, in points.
const (
	minPenWidth = 1.0
	maxPenWidth = 8.0
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds layer, inflow and outflow to node labels and the value
	// to edge labels. When false, only names are shown.
	Detailed bool

	// Palette colours nodes without an explicit colour. Empty means
	// styles.DefaultPalette.
	Palette []string
}

// ToDOT converts a flow graph to Graphviz DOT format, left to right like the
// Sankey view. Edge pen width grows linearly with the link value.
// The resulting DOT string can be rendered using [RenderSVG].
func ToDOT(g *flow.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [arrowsize=0.6];\n")
	buf.WriteString("  ranksep=1.2;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		color := styles.NodeColor(opts.Palette, n.Index, n.Color)
		fmt.Fprintf(&buf, "  n%d [label=%q, fillcolor=%q];\n", n.Index, fmtLabel(n, opts.Detailed), color)
	}

	buf.WriteString("\n")
	peak := maxValue(g.Links())
	for _, l := range g.Links() {
		attrs := []string{"penwidth=" + strconv.FormatFloat(penWidth(l.Value, peak), 'f', 2, 64)}
		if opts.Detailed {
			attrs = append(attrs, fmt.Sprintf("label=%q", strconv.FormatFloat(l.Value, 'f', -1, 64)))
		}
		fmt.Fprintf(&buf, "  n%d -> n%d [%s];\n", l.Source, l.Target, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n flow.Node, detailed bool) string {
	if !detailed {
		return n.Name
	}
	return fmt.Sprintf("%s\nlayer: %d\nin: %g\nout: %g", n.Name, n.Layer, n.ValueIn, n.ValueOut)
}

func maxValue(links []flow.Link) float64 {
	var peak float64
	for _, l := range links {
		peak = max(peak, l.Value)
	}
	return peak
}

func penWidth(value, peak float64) float64 {
	if peak <= 0 {
		return minPenWidth
	}
	return minPenWidth + (maxPenWidth-minPenWidth)*value/peak
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
