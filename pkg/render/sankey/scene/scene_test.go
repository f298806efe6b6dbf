package scene

import (
	"testing"

	"github.com/matzehuels/sankeyflow/pkg/flow"
	"github.com/matzehuels/sankeyflow/pkg/flow/transform"
	"github.com/matzehuels/sankeyflow/pkg/render/sankey/layout"
	"github.com/matzehuels/sankeyflow/pkg/render/sankey/styles"
)

// twoIntoOne is A(10)->C and B(30)->C on the default frame.
func twoIntoOne(t *testing.T) (*flow.Graph, *layout.Layout) {
	t.Helper()
	g, err := flow.Build(
		[]flow.NodeSpec{{Name: "A"}, {Name: "B", Color: "#000000"}, {Name: "C"}},
		[]flow.LinkSpec{
			{Source: "A", Target: "C", Value: 10},
			{Source: "B", Target: "C", Value: 30},
		})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	transform.AssignLayers(g)
	l := layout.Build(g, layout.DefaultOptions())
	return g, &l
}

func TestBuild(t *testing.T) {
	g, l := twoIntoOne(t)
	s := Build(g, l, WithID("fixed"))

	if s.ID != "fixed" {
		t.Errorf("ID = %q", s.ID)
	}
	if len(s.Shapes) != 3 || len(s.Strokes) != 2 {
		t.Fatalf("shapes=%d strokes=%d", len(s.Shapes), len(s.Strokes))
	}
	if got := s.Shapes[0].Color; got != styles.DefaultPalette[0] {
		t.Errorf("palette colour = %s", got)
	}
	if got := s.Shapes[1].Color; got != "#000000" {
		t.Errorf("explicit colour = %s", got)
	}
	st := s.Strokes[1]
	if st.Gradient != "gradient-1" || st.Key != "1-2" {
		t.Errorf("stroke ids = %s %s", st.Gradient, st.Key)
	}
	if st.FromColor != "#000000" || st.ToColor != s.Shapes[2].Color {
		t.Errorf("stroke colours = %s -> %s", st.FromColor, st.ToColor)
	}
	if st.Share != 75 {
		t.Errorf("share = %v, want 75", st.Share)
	}
	if st.Width != 6 {
		t.Errorf("width = %v, want 6", st.Width)
	}
}

func TestBuildGeneratesID(t *testing.T) {
	g, l := twoIntoOne(t)
	a, b := Build(g, l), Build(g, l)
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("ids %q and %q", a.ID, b.ID)
	}
}

func TestAnimatedStops(t *testing.T) {
	g, l := twoIntoOne(t)
	s := Build(g, l, WithAnimated(true))
	sh := s.Shapes[0]
	want := []string{"#3b82f6", "#6eb5ff", "#3b82f6"}
	if len(sh.Stops) != 3 {
		t.Fatalf("stops = %v", sh.Stops)
	}
	for i := range want {
		if sh.Stops[i] != want[i] {
			t.Errorf("stop %d = %s, want %s", i, sh.Stops[i], want[i])
		}
	}
	if sh.Gradient != "node-gradient-0" {
		t.Errorf("gradient = %s", sh.Gradient)
	}

	flat := Build(g, l)
	if len(flat.Shapes[0].Stops) != 1 || flat.Shapes[0].Gradient != "" {
		t.Errorf("flat fill = %+v", flat.Shapes[0])
	}
}

func TestHandles(t *testing.T) {
	g, err := flow.FromIndices([]string{"A", "B"}, []flow.Link{
		{Source: 0, Target: 1, Value: 1},
		{Source: 0, Target: 1, Value: 2},
	})
	if err != nil {
		t.Fatal(err)
	}
	transform.AssignLayers(g)
	l := layout.Build(g, layout.DefaultOptions())
	s := Build(g, &l)

	if h := s.Handles("0-1"); len(h) != 2 || h[0] != 0 || h[1] != 1 {
		t.Errorf("Handles = %v", h)
	}
	if h := s.Handles("1-0"); len(h) != 0 {
		t.Errorf("reverse key has handles %v", h)
	}

	// Both parallel strokes follow a dragged endpoint.
	l.MoveNode(1, 300)
	s.UpdateNode(&l, 1)
	for i, st := range s.Strokes {
		if st.Curve != l.Links[i].Curve {
			t.Errorf("stroke %d not patched", i)
		}
	}
}

func TestUpdateNode(t *testing.T) {
	g, l := twoIntoOne(t)
	s := Build(g, l)

	l.MoveNode(0, 200)
	s.UpdateNode(l, 0)

	if got := s.Shapes[0].Rect.Y0; got != 200 {
		t.Errorf("shape Y0 = %v", got)
	}
	if got, want := s.Strokes[0].Curve.Start.Y, l.Nodes[0].CenterY(); got != want {
		t.Errorf("stroke start = %v, want %v", got, want)
	}
	if s.Strokes[1].Curve != l.Links[1].Curve {
		t.Error("untouched stroke changed")
	}
}

func TestPick(t *testing.T) {
	g, l := twoIntoOne(t)
	s := Build(g, l)

	tests := []struct {
		name string
		x, y float64
		want Target
	}{
		{"node", 10, 50, Target{NodeTarget, 0}},
		{"sink", 980, 300, Target{NodeTarget, 2}},
		{"link midpoint", 500, 186.5625, Target{LinkTarget, 0}},
		{"empty", 500, 10, Target{None, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Pick(tt.x, tt.y); got != tt.want {
				t.Errorf("Pick(%v, %v) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHover(t *testing.T) {
	g, l := twoIntoOne(t)
	h := NewHover(Build(g, l))

	ev := h.Move(10, 50)
	if len(ev) != 1 || ev[0].Type != Enter || ev[0].Node == nil || ev[0].Node.Name != "A" {
		t.Fatalf("enter node: %+v", ev)
	}
	if ev := h.Move(12, 60); ev != nil {
		t.Errorf("same target produced %+v", ev)
	}

	ev = h.Move(500, 186.5625)
	if len(ev) != 2 || ev[0].Type != Leave || ev[1].Type != Enter || ev[1].Link == nil {
		t.Fatalf("node to link: %+v", ev)
	}
	if got, want := ev[1].Tooltip(), "A → C\nFlow: 10\nShare: 25.0%"; got != want {
		t.Errorf("link tooltip = %q, want %q", got, want)
	}

	ev = h.Clear()
	if len(ev) != 1 || ev[0].Type != Leave || ev[0].Target.Kind != LinkTarget {
		t.Errorf("clear: %+v", ev)
	}
	if h.Current().Kind != None {
		t.Errorf("current = %+v", h.Current())
	}
}

func TestNodeInfo(t *testing.T) {
	g, l := twoIntoOne(t)
	info := Build(g, l).NodeInfo(2)
	if info.ValueIn != 40 || info.ValueOut != 0 || info.Balance != 40 {
		t.Errorf("NodeInfo = %+v", info)
	}
	if got, want := info.Tooltip(), "C\nIn: 40\nOut: 0\nBalance: 40"; got != want {
		t.Errorf("Tooltip = %q, want %q", got, want)
	}
}
