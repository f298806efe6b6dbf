package sink

import (
	"testing"

	"github.com/matzehuels/sankeyflow/pkg/flow"
	"github.com/matzehuels/sankeyflow/pkg/flow/transform"
	"github.com/matzehuels/sankeyflow/pkg/render/sankey/layout"
	"github.com/matzehuels/sankeyflow/pkg/render/sankey/scene"
)

func sampleScene(t *testing.T, opts ...scene.Option) (*scene.Scene, *layout.Layout) {
	t.Helper()
	g, err := flow.FromIndices(
		[]string{"Fuente A", "Fuente B", "Fuente C", "Proceso", "Destino X", "Destino Y", "Destino Z"},
		[]flow.Link{
			{Source: 0, Target: 3, Value: 150},
			{Source: 1, Target: 3, Value: 100},
			{Source: 2, Target: 3, Value: 80},
			{Source: 3, Target: 4, Value: 120},
			{Source: 3, Target: 5, Value: 110},
			{Source: 3, Target: 6, Value: 100},
		})
	if err != nil {
		t.Fatalf("FromIndices: %v", err)
	}
	transform.AssignLayers(g)
	l := layout.Build(g, layout.DefaultOptions())
	opts = append([]scene.Option{scene.WithID("test")}, opts...)
	return scene.Build(g, &l, opts...), &l
}
