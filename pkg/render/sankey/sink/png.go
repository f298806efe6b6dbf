package sink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/matzehuels/sankeyflow/pkg/render/sankey/scene"
	"github.com/matzehuels/sankeyflow/pkg/render/sankey/styles"
	"github.com/matzehuels/sankeyflow/pkg/view"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	view  view.Transform
	scale float64
}

// WithPNGView paints at the given view transform.
func WithPNGView(v view.Transform) PNGOption {
	return func(r *pngRenderer) { r.view = v }
}

// WithScale sets the PNG scale factor (default 1, 2 for high-DPI output).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

var labelFont *truetype.Font

func init() {
	f, err := truetype.Parse(gobold.TTF)
	if err != nil {
		panic(fmt.Sprintf("parse embedded font: %v", err))
	}
	labelFont = f
}

// RenderPNG rasterizes the scene on the theme background. The image has the
// scene's frame size times the scale factor.
func RenderPNG(s *scene.Scene, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{view: view.Identity(), scale: 1}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		return nil, fmt.Errorf("png scale must be positive, got %g", r.scale)
	}

	w := int(math.Ceil(s.Width * r.scale))
	h := int(math.Ceil(s.Height * r.scale))
	dc := gg.NewContext(w, h)
	dc.SetColor(styles.RGBA(s.Theme.Background, 1))
	dc.Clear()

	dc.Scale(r.scale, r.scale)
	dc.Translate(r.view.TranslateX, r.view.TranslateY)
	dc.Scale(r.view.Scale, r.view.Scale)
	// Line widths and glyph sizes are not transformed by gg.
	unit := r.scale * r.view.Scale

	for _, st := range s.Strokes {
		drawStroke(dc, s, st, unit)
	}
	face := truetype.NewFace(labelFont, &truetype.Options{
		Size:    s.Theme.FontSize * unit,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()
	for _, sh := range s.Shapes {
		drawShape(dc, s, sh, unit, face)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawStroke(dc *gg.Context, s *scene.Scene, st scene.Stroke, unit float64) {
	c := st.Curve
	// Gradients are evaluated in device pixels.
	x0, y0 := dc.TransformPoint(c.Start.X, c.Start.Y)
	x1, _ := dc.TransformPoint(c.End.X, c.End.Y)
	grad := gg.NewLinearGradient(x0, y0, x1, y0)
	grad.AddColorStop(0, styles.RGBA(st.FromColor, s.Theme.LinkOpacity))
	grad.AddColorStop(1, styles.RGBA(st.ToColor, s.Theme.LinkOpacity))

	dc.SetStrokeStyle(grad)
	dc.SetLineWidth(st.Width * unit)
	dc.SetLineCap(gg.LineCapButt)
	dc.MoveTo(c.Start.X, c.Start.Y)
	dc.CubicTo(c.C1.X, c.C1.Y, c.C2.X, c.C2.Y, c.End.X, c.End.Y)
	dc.Stroke()
}

func drawShape(dc *gg.Context, s *scene.Scene, sh scene.Shape, unit float64, face font.Face) {
	th := s.Theme
	rc := sh.Rect
	radius := min(th.CornerRadius, rc.Width()/2, rc.Height()/2)

	dc.DrawRoundedRectangle(rc.X0, rc.Y0, rc.Width(), rc.Height(), radius)
	if len(sh.Stops) > 1 {
		x0, y0 := dc.TransformPoint(rc.X0, rc.Y0)
		x1, y1 := dc.TransformPoint(rc.X1, rc.Y1)
		grad := gg.NewLinearGradient(x0, y0, x1, y1)
		last := float64(len(sh.Stops) - 1)
		for i, c := range sh.Stops {
			grad.AddColorStop(float64(i)/last, styles.RGBA(c, 1))
		}
		dc.SetFillStyle(grad)
	} else {
		dc.SetColor(styles.RGBA(sh.Color, 1))
	}
	dc.FillPreserve()
	dc.SetColor(styles.RGBA(th.NodeStroke, th.StrokeOpacity))
	dc.SetLineWidth(th.NodeStrokeW * unit)
	dc.Stroke()

	cx, cy := dc.TransformPoint(rc.CenterX(), rc.CenterY())
	dc.Push()
	dc.Identity()
	dc.SetFontFace(face)
	dc.SetColor(styles.RGBA(th.LabelColor, 1))
	dc.DrawStringAnchored(sh.Name, cx, cy, 0.5, 0.35)
	dc.Pop()
}
