// Package view holds the pan and zoom state of a diagram.
//
// A [Transform] maps layout coordinates to screen coordinates as
//
//	screen = layout * Scale + Translate
//
// It is independent of layout: re-rendering keeps the current transform and
// only [Transform.Reset] returns to identity.
package view

import (
	"fmt"

	"github.com/matzehuels/sankeyflow/pkg/render/sankey/layout"
)

// Scale limits.
const (
	MinScale = 0.1
	MaxScale = 3.0
)

// Zoom factors used by buttons and the mouse wheel.
const (
	ZoomInFactor   = 1.2
	ZoomOutFactor  = 0.8
	WheelInFactor  = 1.1
	WheelOutFactor = 0.9
)

// Transform is a uniform scale followed by a translation.
// The zero value is not usable; start from Identity.
type Transform struct {
	Scale      float64 `json:"scale"`
	TranslateX float64 `json:"translate_x"`
	TranslateY float64 `json:"translate_y"`
}

// Identity returns scale 1 with no translation.
func Identity() Transform {
	return Transform{Scale: 1}
}

// Clamp limits s to [MinScale, MaxScale].
func Clamp(s float64) float64 {
	return max(MinScale, min(MaxScale, s))
}

// Zoom multiplies the scale by factor and clamps the result.
func (t *Transform) Zoom(factor float64) {
	t.Scale = Clamp(t.Scale * factor)
}

// Wheel zooms one notch: in for a negative deltaY (wheel up), out otherwise.
func (t *Transform) Wheel(deltaY float64) {
	if deltaY > 0 {
		t.Zoom(WheelOutFactor)
		return
	}
	t.Zoom(WheelInFactor)
}

// Pan shifts the translation by a screen-space delta.
func (t *Transform) Pan(dx, dy float64) {
	t.TranslateX += dx
	t.TranslateY += dy
}

// Reset returns to identity.
func (t *Transform) Reset() {
	*t = Identity()
}

// IsIdentity reports whether t leaves coordinates unchanged.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}

// Apply maps a layout point to screen space.
func (t Transform) Apply(p layout.Point) layout.Point {
	return layout.Point{
		X: p.X*t.Scale + t.TranslateX,
		Y: p.Y*t.Scale + t.TranslateY,
	}
}

// Inverse maps a screen point back to layout space.
func (t Transform) Inverse(p layout.Point) layout.Point {
	return layout.Point{
		X: (p.X - t.TranslateX) / t.Scale,
		Y: (p.Y - t.TranslateY) / t.Scale,
	}
}

// ApplyRect maps a layout rectangle to screen space.
func (t Transform) ApplyRect(r layout.Rect) layout.Rect {
	a := t.Apply(layout.Point{X: r.X0, Y: r.Y0})
	b := t.Apply(layout.Point{X: r.X1, Y: r.Y1})
	return layout.Rect{X0: a.X, Y0: a.Y, X1: b.X, Y1: b.Y}
}

// SVG renders the transform as an SVG transform attribute value.
func (t Transform) SVG() string {
	return fmt.Sprintf("translate(%s, %s) scale(%s)",
		layout.FormatFloat(t.TranslateX), layout.FormatFloat(t.TranslateY), layout.FormatFloat(t.Scale))
}

// String implements fmt.Stringer.
func (t Transform) String() string {
	return fmt.Sprintf("%.0f%% @ (%.0f, %.0f)", t.Scale*100, t.TranslateX, t.TranslateY)
}
