package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/sankeyflow/pkg/render/sankey/layout"
	"github.com/matzehuels/sankeyflow/pkg/render/sankey/scene"
	"github.com/matzehuels/sankeyflow/pkg/render/sankey/styles"
	"github.com/matzehuels/sankeyflow/pkg/view"
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	view       view.Transform
	background bool
	tooltips   bool
}

func WithView(v view.Transform) SVGOption { return func(r *svgRenderer) { r.view = v } }
func WithBackground() SVGOption           { return func(r *svgRenderer) { r.background = true } }
func WithTooltips() SVGOption             { return func(r *svgRenderer) { r.tooltips = true } }

var ff = layout.FormatFloat

// RenderSVG writes the scene as a standalone SVG document.
func RenderSVG(s *scene.Scene, opts ...SVGOption) []byte {
	r := svgRenderer{view: view.Identity()}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" id="sankey-%s" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		styles.EscapeXML(s.ID), ff(s.Width), ff(s.Height), ff(s.Width), ff(s.Height))

	renderDefs(&buf, s)
	if r.background {
		fmt.Fprintf(&buf, `  <rect class="sankey-background" width="100%%" height="100%%" fill="%s"/>`+"\n", s.Theme.Background)
	}

	fmt.Fprintf(&buf, `  <g class="sankey-viewport" transform="%s">`+"\n", r.view.SVG())
	buf.WriteString("    <g class=\"sankey-links\">\n")
	for _, st := range s.Strokes {
		r.renderStroke(&buf, s, st)
	}
	buf.WriteString("    </g>\n")
	buf.WriteString("    <g class=\"sankey-nodes\">\n")
	for _, sh := range s.Shapes {
		r.renderShape(&buf, s, sh)
	}
	buf.WriteString("    </g>\n")
	buf.WriteString("  </g>\n")
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderDefs(buf *bytes.Buffer, s *scene.Scene) {
	buf.WriteString("  <defs>\n")
	for _, st := range s.Strokes {
		fmt.Fprintf(buf, `    <linearGradient id="%s" x1="0%%" x2="100%%">`+"\n", st.Gradient)
		fmt.Fprintf(buf, `      <stop offset="0%%" stop-color="%s"/>`+"\n", st.FromColor)
		fmt.Fprintf(buf, `      <stop offset="100%%" stop-color="%s"/>`+"\n", st.ToColor)
		buf.WriteString("    </linearGradient>\n")
	}
	for _, sh := range s.Shapes {
		if sh.Gradient == "" {
			continue
		}
		fmt.Fprintf(buf, `    <linearGradient id="%s" x1="0%%" y1="0%%" x2="100%%" y2="100%%">`+"\n", sh.Gradient)
		last := len(sh.Stops) - 1
		for i, c := range sh.Stops {
			fmt.Fprintf(buf, `      <stop offset="%s%%" stop-color="%s"/>`+"\n", ff(float64(i)*100/float64(last)), c)
		}
		buf.WriteString("    </linearGradient>\n")
	}
	buf.WriteString("  </defs>\n")
}

func (r *svgRenderer) renderStroke(buf *bytes.Buffer, s *scene.Scene, st scene.Stroke) {
	fmt.Fprintf(buf, `      <path class="sankey-link" data-link="%s" d="%s" fill="none" stroke="url(#%s)" stroke-width="%s" stroke-opacity="%s"`,
		st.Key, st.Path(), st.Gradient, ff(st.Width), ff(s.Theme.LinkOpacity))
	if r.tooltips {
		fmt.Fprintf(buf, "><title>%s</title></path>\n", styles.EscapeXML(s.LinkInfo(st.Index).Tooltip()))
		return
	}
	buf.WriteString("/>\n")
}

func (r *svgRenderer) renderShape(buf *bytes.Buffer, s *scene.Scene, sh scene.Shape) {
	th := s.Theme
	fill := sh.Color
	if sh.Gradient != "" {
		fill = "url(#" + sh.Gradient + ")"
	}
	rc := sh.Rect
	fmt.Fprintf(buf, `      <rect class="sankey-node" data-node="%d" x="%s" y="%s" width="%s" height="%s" rx="%s" ry="%s" fill="%s" stroke="%s" stroke-opacity="%s" stroke-width="%s"`,
		sh.Index, ff(rc.X0), ff(rc.Y0), ff(rc.Width()), ff(rc.Height()),
		ff(th.CornerRadius), ff(th.CornerRadius), fill, th.NodeStroke, ff(th.StrokeOpacity), ff(th.NodeStrokeW))
	if r.tooltips {
		fmt.Fprintf(buf, "><title>%s</title></rect>\n", styles.EscapeXML(s.NodeInfo(sh.Index).Tooltip()))
	} else {
		buf.WriteString("/>\n")
	}
	fmt.Fprintf(buf, `      <text class="sankey-label" x="%s" y="%s" text-anchor="middle" dominant-baseline="middle" font-size="%s" font-weight="600" fill="%s" pointer-events="none">%s</text>`+"\n",
		ff(rc.CenterX()), ff(rc.CenterY()), ff(th.FontSize), th.LabelColor, styles.EscapeXML(sh.Name))
}
