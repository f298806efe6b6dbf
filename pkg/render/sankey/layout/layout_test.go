package layout

import (
	"cmp"
	"math"
	"slices"
	"testing"

	"github.com/matzehuels/sankeyflow/pkg/flow"
	"github.com/matzehuels/sankeyflow/pkg/flow/transform"
)

func layered(t *testing.T, names []string, links []flow.Link) *flow.Graph {
	t.Helper()
	g, err := flow.FromIndices(names, links)
	if err != nil {
		t.Fatalf("FromIndices: %v", err)
	}
	transform.AssignLayers(g)
	return g
}

func sample(t *testing.T) *flow.Graph {
	return layered(t,
		[]string{"Fuente A", "Fuente B", "Fuente C", "Proceso", "Destino X", "Destino Y", "Destino Z"},
		[]flow.Link{
			{Source: 0, Target: 3, Value: 150},
			{Source: 1, Target: 3, Value: 100},
			{Source: 2, Target: 3, Value: 80},
			{Source: 3, Target: 4, Value: 120},
			{Source: 3, Target: 5, Value: 110},
			{Source: 3, Target: 6, Value: 100},
		})
}

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestBuildHorizontalBands(t *testing.T) {
	l := Build(sample(t), DefaultOptions())

	if l.MaxLayer != 2 {
		t.Fatalf("MaxLayer = %d, want 2", l.MaxLayer)
	}
	wantBand := (1000.0 - 25.0) / 2
	if l.BandWidth != wantBand {
		t.Errorf("BandWidth = %v, want %v", l.BandWidth, wantBand)
	}
	for _, n := range l.Nodes {
		if n.X0 != float64(n.Layer)*wantBand {
			t.Errorf("node %d X0 = %v", n.Index, n.X0)
		}
		if n.Width() != 25 {
			t.Errorf("node %d width = %v", n.Index, n.Width())
		}
	}
}

func TestBuildSingleLayerUsesOneBand(t *testing.T) {
	l := Build(layered(t, []string{"solo"}, nil), DefaultOptions())
	if l.BandWidth != 975 {
		t.Errorf("BandWidth = %v, want 975", l.BandWidth)
	}
}

func TestBuildLayerFillsHeight(t *testing.T) {
	opts := DefaultOptions()
	l := Build(sample(t), opts)

	byLayer := map[int][]NodeBox{}
	for _, n := range l.Nodes {
		byLayer[n.Layer] = append(byLayer[n.Layer], n)
	}
	for layer, boxes := range byLayer {
		var sum float64
		for _, b := range boxes {
			sum += b.Height()
		}
		sum += float64(len(boxes)-1) * opts.NodePadding
		if !almostEqual(sum, opts.Height) {
			t.Errorf("layer %d spans %v, want %v", layer, sum, opts.Height)
		}
	}
}

func TestWithDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   Options
		want Options
	}{
		{"zero frame", Options{NodePadding: 5}, Options{Width: DefaultWidth, Height: DefaultHeight, NodeWidth: DefaultNodeWidth, NodePadding: 5}},
		{"zero padding kept", Options{Width: 800, Height: 400, NodeWidth: 10}, Options{Width: 800, Height: 400, NodeWidth: 10}},
		{"full", DefaultOptions(), DefaultOptions()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.WithDefaults(); got != tt.want {
				t.Errorf("WithDefaults() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBuildZeroPadding(t *testing.T) {
	opts := DefaultOptions()
	opts.NodePadding = 0
	l := Build(sample(t), opts)

	byLayer := map[int][]NodeBox{}
	for _, n := range l.Nodes {
		byLayer[n.Layer] = append(byLayer[n.Layer], n)
	}
	for layer, boxes := range byLayer {
		slices.SortFunc(boxes, func(a, b NodeBox) int { return cmp.Compare(a.Y0, b.Y0) })
		for i := 1; i < len(boxes); i++ {
			if !almostEqual(boxes[i].Y0, boxes[i-1].Y1) {
				t.Errorf("layer %d: node %d starts at %v, previous ends at %v", layer, boxes[i].Index, boxes[i].Y0, boxes[i-1].Y1)
			}
		}
	}
}

func TestBuildProportionalHeights(t *testing.T) {
	// Two sources into one sink: A=10, B=5 share 600-15 = 585.
	g := layered(t, []string{"A", "B", "C"}, []flow.Link{
		{Source: 0, Target: 2, Value: 10},
		{Source: 1, Target: 2, Value: 5},
	})
	l := Build(g, DefaultOptions())

	if !almostEqual(l.Nodes[0].Height(), 390) {
		t.Errorf("A height = %v, want 390", l.Nodes[0].Height())
	}
	if !almostEqual(l.Nodes[1].Height(), 195) {
		t.Errorf("B height = %v, want 195", l.Nodes[1].Height())
	}
	if !almostEqual(l.Nodes[1].Y0, 405) {
		t.Errorf("B Y0 = %v, want 405", l.Nodes[1].Y0)
	}
	if l.Nodes[2].Height() != 600 {
		t.Errorf("C height = %v, want 600", l.Nodes[2].Height())
	}
}

func TestBuildIsolatedNode(t *testing.T) {
	opts := DefaultOptions()
	opts.Height = 10
	l := Build(layered(t, []string{"solo"}, nil), opts)
	if l.Nodes[0].Height() != opts.MinNodeHeight {
		t.Errorf("height = %v, want %v", l.Nodes[0].Height(), opts.MinNodeHeight)
	}
}

func TestBuildOverflowIsNotRenormalized(t *testing.T) {
	names := make([]string, 40)
	for i := range names {
		names[i] = string(rune('A'+i%26)) + string(rune('a'+i/26))
	}
	opts := DefaultOptions()
	l := Build(layered(t, names, nil), opts)

	last := l.Nodes[len(l.Nodes)-1]
	if last.Y1 <= opts.Height {
		t.Fatalf("expected overflow, last Y1 = %v", last.Y1)
	}
	for _, n := range l.Nodes {
		if n.Height() < opts.MinNodeHeight {
			t.Errorf("node %d height %v below minimum", n.Index, n.Height())
		}
	}
}

func TestMoveNodeUpdatesIncidentLinksOnly(t *testing.T) {
	l := Build(sample(t), DefaultOptions())
	before := l.Clone()

	touched := l.MoveNode(0, 100)
	if len(touched) != 1 || touched[0] != 0 {
		t.Fatalf("touched = %v, want [0]", touched)
	}
	if l.Nodes[0].Y0 != 100 {
		t.Errorf("Y0 = %v, want 100", l.Nodes[0].Y0)
	}
	if !almostEqual(l.Nodes[0].Height(), before.Nodes[0].Height()) {
		t.Errorf("height changed")
	}
	if l.Links[0].Curve == before.Links[0].Curve {
		t.Error("incident link not rebuilt")
	}
	for i := 1; i < len(l.Links); i++ {
		if l.Links[i].Curve != before.Links[i].Curve {
			t.Errorf("link %d changed", i)
		}
	}
	if !l.Attached() {
		t.Error("connectors detached after move")
	}
}

func TestNodeAt(t *testing.T) {
	l := Build(sample(t), DefaultOptions())

	n := l.Nodes[3]
	if idx, ok := l.NodeAt(n.CenterX(), n.CenterY()); !ok || idx != 3 {
		t.Errorf("NodeAt(center of 3) = %d, %v", idx, ok)
	}
	if _, ok := l.NodeAt(-5, -5); ok {
		t.Error("NodeAt outside should miss")
	}
}
