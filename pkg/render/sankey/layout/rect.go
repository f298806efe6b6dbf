package layout

// Rect is an axis-aligned rectangle with Y growing downward.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Width returns the horizontal span.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns the vertical span.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// CenterX returns the horizontal centre.
func (r Rect) CenterX() float64 { return (r.X0 + r.X1) / 2 }

// CenterY returns the vertical centre.
func (r Rect) CenterY() float64 { return (r.Y0 + r.Y1) / 2 }

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}
