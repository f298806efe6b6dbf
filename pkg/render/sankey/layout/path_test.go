package layout

import (
	"strconv"
	"strings"
	"testing"
)

func TestStrokeWidth(t *testing.T) {
	tests := []struct {
		value float64
		want  float64
	}{
		{0, 2},
		{5, 2},
		{10, 2},
		{50, 10},
		{150, 30},
	}
	for _, tt := range tests {
		if got := StrokeWidth(tt.value); got != tt.want {
			t.Errorf("StrokeWidth(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestBuildCurve(t *testing.T) {
	src := Rect{X0: 0, Y0: 0, X1: 25, Y1: 100}
	tgt := Rect{X0: 475, Y0: 200, X1: 500, Y1: 300}

	c := BuildCurve(src, tgt)
	want := Curve{
		Start: Point{25, 50},
		C1:    Point{250, 50},
		C2:    Point{250, 250},
		End:   Point{475, 250},
	}
	if c != want {
		t.Fatalf("BuildCurve() = %+v, want %+v", c, want)
	}
	if c.At(0) != c.Start || c.At(1) != c.End {
		t.Error("At() endpoints do not match")
	}
	mid := c.At(0.5)
	if mid.X != 250 || mid.Y != 150 {
		t.Errorf("At(0.5) = %+v, want {250 150}", mid)
	}
}

func TestSVGPathRoundTrip(t *testing.T) {
	c := Curve{
		Start: Point{25, 1.0 / 3},
		C1:    Point{250.125, 1.0 / 3},
		C2:    Point{250.125, 412.7},
		End:   Point{475.25, 412.7},
	}
	d := c.SVGPath()
	if !strings.HasPrefix(d, "M25,") {
		t.Fatalf("path = %q", d)
	}
	fields := strings.FieldsFunc(d[1:], func(r rune) bool { return r == ',' || r == ' ' || r == 'C' })
	if len(fields) != 8 {
		t.Fatalf("fields = %v", fields)
	}
	got := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			t.Fatal(err)
		}
		got[i] = v
	}
	want := []float64{c.Start.X, c.Start.Y, c.C1.X, c.C1.Y, c.C2.X, c.C2.Y, c.End.X, c.End.Y}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("coordinate %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDistance(t *testing.T) {
	c := BuildCurve(Rect{X1: 10, Y1: 20}, Rect{X0: 110, X1: 120, Y1: 20})
	// Flat curve along y=10.
	if d := c.Distance(Point{60, 13}, 16); d < 2.99 || d > 3.01 {
		t.Errorf("Distance = %v, want 3", d)
	}
}
