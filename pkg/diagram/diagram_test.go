package diagram

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/sankeyflow/pkg/dataset"
	"github.com/matzehuels/sankeyflow/pkg/errors"
	"github.com/matzehuels/sankeyflow/pkg/interact"
	"github.com/matzehuels/sankeyflow/pkg/render"
	"github.com/matzehuels/sankeyflow/pkg/render/sankey/layout"
	"github.com/matzehuels/sankeyflow/pkg/render/sankey/scene"
	"github.com/matzehuels/sankeyflow/pkg/render/sankey/styles"
)

func loaded(t *testing.T) *Diagram {
	t.Helper()
	d := New(DefaultConfig(), WithID("d1"))
	if err := d.Load(context.Background(), "sample", dataset.Sample()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return d
}

func TestLoadIsAtomic(t *testing.T) {
	d := loaded(t)
	before := d.Graph()

	bad := dataset.Sample()
	bad.Links = append(bad.Links, dataset.Sample().Links[0])
	bad.Links[len(bad.Links)-1].Target = "Z"

	err := d.Load(context.Background(), "bad", bad)
	if !errors.Is(err, errors.ErrCodeUnknownNode) {
		t.Fatalf("err = %v, want UNKNOWN_NODE", err)
	}
	if d.Graph() != before || d.Graph().NodeCount() != 7 {
		t.Error("failed load replaced the graph")
	}
}

func TestScenarioTwoSourcesOneSink(t *testing.T) {
	d := New(DefaultConfig())
	ds, err := dataset.ParseLists(strings.NewReader("A\nB\nC\n"), strings.NewReader("A,C,10\nB,C,30\n"))
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Load(context.Background(), "abc", ds); err != nil {
		t.Fatal(err)
	}
	g := d.Graph()
	for i, want := range []int{0, 0, 1} {
		if n, _ := g.Node(i); n.Layer != want {
			t.Errorf("node %d layer = %d, want %d", i, n.Layer, want)
		}
	}
	l := d.Layout()
	if l.Nodes[2].X0 != 975 || l.Nodes[2].Height() != 600 {
		t.Errorf("C = %+v", l.Nodes[2])
	}
	if h := l.Nodes[1].Height(); h != 438.75 {
		t.Errorf("B height = %v, want 438.75", h)
	}
	s, _ := d.Stats()
	if s.TotalFlow != 40 || s.Efficiency != 100 {
		t.Errorf("stats = %+v", s)
	}
}

func TestIsolatedNode(t *testing.T) {
	d := New(DefaultConfig())
	ds, _ := dataset.ParseLists(strings.NewReader("A\nB\nLonely\n"), strings.NewReader("A,B,5\n"))
	if err := d.Load(context.Background(), "iso", ds); err != nil {
		t.Fatal(err)
	}
	n, _ := d.Graph().Node(2)
	box := d.Layout().Nodes[2]
	if n.Layer != 0 || box.X0 != 0 || box.Height() < layout.DefaultMinNodeHeight {
		t.Errorf("isolated node: layer %d box %+v", n.Layer, box)
	}
}

func TestDragAndRelease(t *testing.T) {
	d := loaded(t)
	ctrl := d.Controller()

	rect := d.NodeRect(0)
	if st := ctrl.PointerDown(rect.CenterX(), rect.Y0+1); st != interact.DraggingNode {
		t.Fatalf("state = %v", st)
	}
	ctrl.PointerMove(rect.CenterX(), rect.Y0+41)
	if got := d.NodeRect(0).Y0; got != rect.Y0+40 {
		t.Errorf("dragged Y0 = %v, want %v", got, rect.Y0+40)
	}
	if !d.Layout().Attached() {
		t.Error("connectors detached during drag")
	}
	h := d.Scene().Handles("0-3")
	if len(h) != 1 || d.Scene().Strokes[h[0]].Curve.Start.Y != d.NodeRect(0).CenterY() {
		t.Error("scene stroke not patched during drag")
	}

	ctrl.PointerUp()
	if got := d.NodeRect(0).Y0; got != rect.Y0 {
		t.Errorf("after release Y0 = %v, want re-laid out %v", got, rect.Y0)
	}
	if !d.Layout().Attached() {
		t.Error("connectors detached after release")
	}
}

func TestPanAndZoomPersistAcrossRelayout(t *testing.T) {
	d := loaded(t)
	ctrl := d.Controller()
	ctrl.PointerDown(300, 5)
	ctrl.PointerMove(320, 15)
	ctrl.PointerUp()
	ctrl.Zoom(1.2)

	if err := d.SetLayoutOptions(layout.Options{NodeWidth: 40}); err != nil {
		t.Fatal(err)
	}
	v := d.View()
	if v.TranslateX != 20 || v.TranslateY != 10 || v.Scale != 1.2 {
		t.Errorf("view = %+v", v)
	}
	if w := d.NodeRect(0).Width(); w != 40 {
		t.Errorf("node width = %v, want 40", w)
	}
	if sh := d.Scene().Shapes[0]; sh.Rect.Width() != 40 {
		t.Errorf("scene not synced: %+v", sh.Rect)
	}
}

func TestSetLayoutOptionsZeroPadding(t *testing.T) {
	d := loaded(t)
	opts := layout.DefaultOptions()
	opts.NodePadding = 0
	if err := d.SetLayoutOptions(opts); err != nil {
		t.Fatal(err)
	}
	if got := d.Config().Layout.NodePadding; got != 0 {
		t.Fatalf("applied padding = %v, want 0", got)
	}
	// The three sources share layer 0 and now stack without gaps.
	if a, b := d.NodeRect(0), d.NodeRect(1); b.Y0 != a.Y1 {
		t.Errorf("second source starts at %v, first ends at %v", b.Y0, a.Y1)
	}
}

func TestSetLayoutOptionsRejects(t *testing.T) {
	d := loaded(t)
	err := d.SetLayoutOptions(layout.Options{Width: -1})
	if !errors.Is(err, errors.ErrCodeInvalidOption) {
		t.Errorf("err = %v", err)
	}
	if d.Config().Layout.Width != layout.DefaultWidth {
		t.Error("invalid options were applied")
	}
}

func TestHover(t *testing.T) {
	d := loaded(t)
	rect := d.NodeRect(3)
	ev := d.Hover(rect.CenterX(), rect.CenterY())
	if len(ev) != 1 || ev[0].Type != scene.Enter || ev[0].Node.Name != "Proceso" {
		t.Fatalf("hover = %+v", ev)
	}
	if ev[0].Node.ValueIn != 330 || ev[0].Node.ValueOut != 330 {
		t.Errorf("info = %+v", ev[0].Node)
	}
	if ev := d.ClearHover(); len(ev) != 1 || ev[0].Type != scene.Leave {
		t.Errorf("clear = %+v", ev)
	}
}

func TestExport(t *testing.T) {
	d := loaded(t)
	ctx := context.Background()
	for _, f := range render.Formats {
		t.Run(string(f), func(t *testing.T) {
			data, err := d.Export(ctx, f)
			if err != nil {
				t.Fatalf("Export: %v", err)
			}
			if len(data) == 0 {
				t.Fatal("empty export")
			}
			switch f {
			case render.FormatSVG:
				if !bytes.Contains(data, []byte(`id="sankey-d1"`)) {
					t.Error("svg missing instance id")
				}
			case render.FormatPNG:
				if !bytes.HasPrefix(data, []byte("\x89PNG")) {
					t.Error("not a PNG")
				}
			case render.FormatDOT:
				if !bytes.Contains(data, []byte("digraph")) {
					t.Error("not DOT")
				}
			case render.FormatNodeLink:
				if !bytes.Contains(data, []byte("<svg")) {
					t.Error("nodelink is not SVG")
				}
			}
		})
	}
}

func TestEmptyDiagram(t *testing.T) {
	d := New(Config{})
	if d.Loaded() {
		t.Error("new diagram reports loaded")
	}
	if _, err := d.Export(context.Background(), render.FormatSVG); err == nil {
		t.Error("export of empty diagram should fail")
	}
	if _, err := d.Stats(); err == nil {
		t.Error("stats of empty diagram should fail")
	}
	if d.Config().Theme.Name != styles.DefaultTheme.Name {
		t.Error("theme default not applied")
	}
	if st := d.Controller().PointerDown(10, 10); st != interact.PanningCanvas {
		t.Errorf("pointer down on empty diagram = %v", st)
	}
}

func TestInstancesAreIndependent(t *testing.T) {
	a, b := loaded(t), New(DefaultConfig())
	if a.ID() == b.ID() {
		t.Errorf("shared id %s", a.ID())
	}
	a.Controller().Zoom(2)
	if b.View().Scale != 1 {
		t.Error("view shared between instances")
	}
}
