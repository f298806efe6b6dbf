package sink

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/sankeyflow/pkg/view"
)

func TestRenderJSON(t *testing.T) {
	s, _ := sampleScene(t)
	v := view.Transform{Scale: 2, TranslateX: 5}

	data, err := RenderJSON(s, WithJSONView(v))
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if snap.ID != "test" || snap.Theme != "default" || snap.View != v {
		t.Errorf("header = %+v", snap)
	}
	if len(snap.Nodes) != 7 || len(snap.Links) != 6 {
		t.Fatalf("nodes=%d links=%d", len(snap.Nodes), len(snap.Links))
	}
	proc := snap.Nodes[3]
	if proc.Name != "Proceso" || proc.Layer != 1 || proc.ValueIn != 330 {
		t.Errorf("node 3 = %+v", proc)
	}
	if proc.X0 != s.Shapes[3].Rect.X0 || proc.Y1 != s.Shapes[3].Rect.Y1 {
		t.Errorf("node 3 geometry = %+v", proc)
	}
	lk := snap.Links[0]
	if lk.Key != "0-3" || lk.Width != 30 || lk.Path != s.Strokes[0].Path() {
		t.Errorf("link 0 = %+v", lk)
	}
}
