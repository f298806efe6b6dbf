package layout

import (
	"math"
	"strconv"
	"strings"
)

// MinStrokeWidth keeps near-zero flows visible.
const MinStrokeWidth = 2.0

// StrokeWidth maps a flow value to a connector thickness: value/5, floored
// at MinStrokeWidth.
func StrokeWidth(value float64) float64 {
	return max(value/5, MinStrokeWidth)
}

// Point is a position in layout space.
type Point struct {
	X, Y float64
}

// Curve is a cubic Bezier connector.
type Curve struct {
	Start, C1, C2, End Point
}

// BuildCurve returns the S-curve from the exit point of src to the entry
// point of tgt. Both control points sit at the horizontal midpoint, each at
// its own endpoint's height.
func BuildCurve(src, tgt Rect) Curve {
	x0, y0 := src.X1, src.CenterY()
	x1, y1 := tgt.X0, tgt.CenterY()
	mx := (x0 + x1) / 2
	return Curve{
		Start: Point{x0, y0},
		C1:    Point{mx, y0},
		C2:    Point{mx, y1},
		End:   Point{x1, y1},
	}
}

// At evaluates the curve at t in [0, 1].
func (c Curve) At(t float64) Point {
	u := 1 - t
	a, b, cc, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return Point{
		X: a*c.Start.X + b*c.C1.X + cc*c.C2.X + d*c.End.X,
		Y: a*c.Start.Y + b*c.C1.Y + cc*c.C2.Y + d*c.End.Y,
	}
}

// Distance approximates the shortest distance from p to the curve by
// sampling it in segments.
func (c Curve) Distance(p Point, segments int) float64 {
	if segments < 1 {
		segments = 1
	}
	best := math.Inf(1)
	prev := c.Start
	for i := 1; i <= segments; i++ {
		next := c.At(float64(i) / float64(segments))
		best = min(best, segmentDistance(p, prev, next))
		prev = next
	}
	return best
}

func segmentDistance(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2
	t = max(0, min(1, t))
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}

// SVGPath renders the curve as an SVG path "d" attribute. Coordinates are
// written with the shortest representation that parses back exactly.
func (c Curve) SVGPath() string {
	var b strings.Builder
	b.WriteString("M")
	writePoint(&b, c.Start)
	b.WriteString("C")
	writePoint(&b, c.C1)
	b.WriteString(" ")
	writePoint(&b, c.C2)
	b.WriteString(" ")
	writePoint(&b, c.End)
	return b.String()
}

func writePoint(b *strings.Builder, p Point) {
	b.WriteString(FormatFloat(p.X))
	b.WriteString(",")
	b.WriteString(FormatFloat(p.Y))
}

// FormatFloat writes v in the shortest form that round-trips through
// strconv.ParseFloat.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
