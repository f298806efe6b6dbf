package sink

import (
	"encoding/json"

	"github.com/matzehuels/sankeyflow/pkg/render/sankey/scene"
	"github.com/matzehuels/sankeyflow/pkg/view"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	view view.Transform
}

// WithJSONView records the view transform alongside the geometry.
func WithJSONView(v view.Transform) JSONOption { return func(r *jsonRenderer) { r.view = v } }

// Snapshot is the JSON form of a laid out scene. Coordinates are in layout
// space; View says how the surface currently maps them to the screen.
type Snapshot struct {
	ID       string         `json:"id"`
	Width    float64        `json:"width"`
	Height   float64        `json:"height"`
	Theme    string         `json:"theme"`
	Animated bool           `json:"animated,omitempty"`
	View     view.Transform `json:"view"`
	Nodes    []SnapshotNode `json:"nodes"`
	Links    []SnapshotLink `json:"links"`
}

type SnapshotNode struct {
	Index    int      `json:"index"`
	Name     string   `json:"name"`
	Color    string   `json:"color"`
	Layer    int      `json:"layer"`
	X0       float64  `json:"x0"`
	Y0       float64  `json:"y0"`
	X1       float64  `json:"x1"`
	Y1       float64  `json:"y1"`
	ValueIn  float64  `json:"value_in"`
	ValueOut float64  `json:"value_out"`
	Stops    []string `json:"stops,omitempty"`
}

type SnapshotLink struct {
	Index   int     `json:"index"`
	Key     string  `json:"key"`
	Source  int     `json:"source"`
	Target  int     `json:"target"`
	Value   float64 `json:"value"`
	Percent float64 `json:"percent"`
	Width   float64 `json:"width"`
	Path    string  `json:"path"`
}

// NewSnapshot captures the scene at view v.
func NewSnapshot(s *scene.Scene, v view.Transform) Snapshot {
	out := Snapshot{
		ID:       s.ID,
		Width:    s.Width,
		Height:   s.Height,
		Theme:    s.Theme.Name,
		Animated: s.Animated,
		View:     v,
		Nodes:    make([]SnapshotNode, len(s.Shapes)),
		Links:    make([]SnapshotLink, len(s.Strokes)),
	}
	for i, sh := range s.Shapes {
		n := SnapshotNode{
			Index:    sh.Index,
			Name:     sh.Name,
			Color:    sh.Color,
			Layer:    sh.Layer,
			X0:       sh.Rect.X0,
			Y0:       sh.Rect.Y0,
			X1:       sh.Rect.X1,
			Y1:       sh.Rect.Y1,
			ValueIn:  sh.ValueIn,
			ValueOut: sh.ValueOut,
		}
		if len(sh.Stops) > 1 {
			n.Stops = sh.Stops
		}
		out.Nodes[i] = n
	}
	for i, st := range s.Strokes {
		out.Links[i] = SnapshotLink{
			Index:   st.Index,
			Key:     st.Key,
			Source:  st.Source,
			Target:  st.Target,
			Value:   st.Value,
			Percent: st.Share,
			Width:   st.Width,
			Path:    st.Path(),
		}
	}
	return out
}

// RenderJSON exports the scene geometry as a pretty-printed JSON document.
func RenderJSON(s *scene.Scene, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{view: view.Identity()}
	for _, opt := range opts {
		opt(&r)
	}
	return json.MarshalIndent(NewSnapshot(s, r.view), "", "  ")
}
