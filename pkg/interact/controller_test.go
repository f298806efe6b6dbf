package interact

import (
	"testing"

	"github.com/matzehuels/sankeyflow/pkg/render/sankey/layout"
	"github.com/matzehuels/sankeyflow/pkg/view"
)

type fakeSurface struct {
	rects     []layout.Rect
	height    float64
	moves     int
	relayouts int
}

func (f *fakeSurface) NodeAt(x, y float64) (int, bool) {
	for i, r := range f.rects {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return -1, false
}

func (f *fakeSurface) NodeRect(idx int) layout.Rect { return f.rects[idx] }

func (f *fakeSurface) MoveNode(idx int, y0 float64) {
	h := f.rects[idx].Height()
	f.rects[idx].Y0 = y0
	f.rects[idx].Y1 = y0 + h
	f.moves++
}

func (f *fakeSurface) Relayout()            { f.relayouts++ }
func (f *fakeSurface) FrameHeight() float64 { return f.height }

func newFixture() (*fakeSurface, *view.Transform, *Controller) {
	s := &fakeSurface{
		rects:  []layout.Rect{{X0: 0, Y0: 100, X1: 25, Y1: 200}},
		height: 600,
	}
	v := view.Identity()
	return s, &v, NewController(s, &v)
}

func TestDragMovesNode(t *testing.T) {
	s, _, c := newFixture()

	if st := c.PointerDown(10, 150); st != DraggingNode {
		t.Fatalf("state = %v, want dragging", st)
	}
	c.PointerMove(10, 180)
	if s.rects[0].Y0 != 130 {
		t.Errorf("Y0 = %v, want 130", s.rects[0].Y0)
	}
	c.PointerUp()
	if c.State() != Idle {
		t.Errorf("state after up = %v", c.State())
	}
	if s.relayouts != 1 {
		t.Errorf("relayouts = %d, want 1", s.relayouts)
	}
}

func TestDragClamps(t *testing.T) {
	tests := []struct {
		name   string
		moveTo float64
		want   float64
	}{
		{"above top", -500, 0},
		{"below bottom", 2000, 500},
		{"inside", 160, 110},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, c := newFixture()
			c.PointerDown(10, 150)
			c.PointerMove(10, tt.moveTo)
			if s.rects[0].Y0 != tt.want {
				t.Errorf("Y0 = %v, want %v", s.rects[0].Y0, tt.want)
			}
		})
	}
}

func TestDragDividesByScale(t *testing.T) {
	s, v, c := newFixture()
	v.Zoom(2)

	// Node centre (12.5, 150) is at screen (25, 300) at scale 2.
	if st := c.PointerDown(25, 300); st != DraggingNode {
		t.Fatalf("state = %v", st)
	}
	c.PointerMove(25, 340)
	if s.rects[0].Y0 != 120 {
		t.Errorf("Y0 = %v, want 120", s.rects[0].Y0)
	}
}

func TestPan(t *testing.T) {
	s, v, c := newFixture()

	if st := c.PointerDown(500, 500); st != PanningCanvas {
		t.Fatalf("state = %v, want panning", st)
	}
	c.PointerMove(510, 490)
	c.PointerMove(520, 495)
	if v.TranslateX != 20 || v.TranslateY != -5 {
		t.Errorf("translate = (%v, %v), want (20, -5)", v.TranslateX, v.TranslateY)
	}
	c.PointerUp()
	if s.relayouts != 0 {
		t.Error("pan should not trigger relayout")
	}
	if s.moves != 0 {
		t.Error("pan should not move nodes")
	}
}

func TestPointerDownIgnoredWhileBusy(t *testing.T) {
	_, _, c := newFixture()
	c.PointerDown(500, 500)
	if st := c.PointerDown(10, 150); st != PanningCanvas {
		t.Errorf("second down changed state to %v", st)
	}
}

func TestZoomInAnyState(t *testing.T) {
	_, v, c := newFixture()
	c.PointerDown(10, 150)
	c.Zoom(view.ZoomInFactor)
	if v.Scale != 1.2 {
		t.Errorf("Scale = %v", v.Scale)
	}
	c.Reset()
	if !v.IsIdentity() {
		t.Error("Reset did not restore identity")
	}
}

func TestCancel(t *testing.T) {
	s, _, c := newFixture()
	c.PointerDown(10, 150)
	c.Cancel()
	if c.State() != Idle || s.relayouts != 0 {
		t.Errorf("Cancel: state=%v relayouts=%d", c.State(), s.relayouts)
	}
}
