package flow

import (
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/sankeyflow/pkg/errors"
)

func TestBuild(t *testing.T) {
	g, err := Build(
		[]NodeSpec{{Name: "A"}, {Name: "B"}, {Name: "C"}},
		[]LinkSpec{{Source: "A", Target: "C", Value: 10}, {Source: "B", Target: "C", Value: 5}},
	)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	c, _ := g.Node(2)
	if c.ValueIn != 15 {
		t.Errorf("C.ValueIn = %v, want 15", c.ValueIn)
	}
	if c.ValueOut != 0 {
		t.Errorf("C.ValueOut = %v, want 0", c.ValueOut)
	}
	if !slices.Equal(c.TargetLinks, []int{0, 1}) {
		t.Errorf("C.TargetLinks = %v, want [0 1]", c.TargetLinks)
	}
	a, _ := g.Node(0)
	if !slices.Equal(a.SourceLinks, []int{0}) || a.ValueOut != 10 {
		t.Errorf("A = %+v", a)
	}
	if got := g.Sources(); !slices.Equal(got, []int{0, 1}) {
		t.Errorf("Sources() = %v", got)
	}
	if got := g.Sinks(); !slices.Equal(got, []int{2}) {
		t.Errorf("Sinks() = %v", got)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name     string
		nodes    []NodeSpec
		links    []LinkSpec
		code     errors.Code
		line     int
		contains string
	}{
		{
			name:     "unknown target",
			nodes:    []NodeSpec{{Name: "A"}},
			links:    []LinkSpec{{Source: "A", Target: "Z", Value: 1, Line: 2}},
			code:     errors.ErrCodeUnknownNode,
			line:     2,
			contains: `"Z"`,
		},
		{
			name:     "unknown source is case sensitive",
			nodes:    []NodeSpec{{Name: "A"}, {Name: "B"}},
			links:    []LinkSpec{{Source: "a", Target: "B", Value: 1}},
			code:     errors.ErrCodeUnknownNode,
			contains: `"a"`,
		},
		{
			name:  "negative value",
			nodes: []NodeSpec{{Name: "A"}, {Name: "B"}},
			links: []LinkSpec{{Source: "A", Target: "B", Value: -1, Line: 1}},
			code:  errors.ErrCodeInvalidValue,
			line:  1,
		},
		{
			name:  "empty name",
			nodes: []NodeSpec{{Name: ""}},
			code:  errors.ErrCodeInvalidName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Build(tt.nodes, tt.links)
			if err == nil {
				t.Fatal("expected error")
			}
			if g != nil {
				t.Error("graph should be nil on error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), tt.code)
			}
			if errors.GetLine(err) != tt.line {
				t.Errorf("line = %d, want %d", errors.GetLine(err), tt.line)
			}
			if tt.contains != "" && !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error %q does not mention %s", err, tt.contains)
			}
		})
	}
}

func TestFromIndicesRange(t *testing.T) {
	_, err := FromIndices([]string{"A"}, []Link{{Source: 0, Target: 4, Value: 1}})
	if !errors.Is(err, errors.ErrCodeUnknownNode) {
		t.Fatalf("err = %v, want UNKNOWN_NODE", err)
	}
}

func TestDuplicateNamesResolveToFirst(t *testing.T) {
	g, err := Build(
		[]NodeSpec{{Name: "X"}, {Name: "X"}, {Name: "Y"}},
		[]LinkSpec{{Source: "X", Target: "Y", Value: 3}},
	)
	if err != nil {
		t.Fatal(err)
	}
	if g.Links()[0].Source != 0 {
		t.Errorf("source = %d, want 0", g.Links()[0].Source)
	}
	if g.NodeCount() != 3 {
		t.Errorf("NodeCount() = %d, want 3", g.NodeCount())
	}
}

func TestSelfLoop(t *testing.T) {
	g, err := FromIndices([]string{"A"}, []Link{{Source: 0, Target: 0, Value: 4}})
	if err != nil {
		t.Fatal(err)
	}
	n, _ := g.Node(0)
	if n.ValueIn != 4 || n.ValueOut != 4 {
		t.Errorf("aggregates = %v/%v, want 4/4", n.ValueIn, n.ValueOut)
	}
	if got := g.Incident(0); !slices.Equal(got, []int{0}) {
		t.Errorf("Incident(0) = %v, want [0]", got)
	}
}

func TestStats(t *testing.T) {
	tests := []struct {
		name       string
		nodes      []string
		links      []Link
		total      float64
		efficiency int
	}{
		{
			name:       "isolated node",
			nodes:      []string{"solo"},
			total:      0,
			efficiency: 0,
		},
		{
			name:       "balanced",
			nodes:      []string{"A", "B", "C"},
			links:      []Link{{Source: 0, Target: 2, Value: 10}, {Source: 1, Target: 2, Value: 5}},
			total:      15,
			efficiency: 100,
		},
		{
			name:  "sample dataset",
			nodes: []string{"Fuente A", "Fuente B", "Fuente C", "Proceso", "Destino X", "Destino Y", "Destino Z"},
			links: []Link{
				{Source: 0, Target: 3, Value: 150},
				{Source: 1, Target: 3, Value: 100},
				{Source: 2, Target: 3, Value: 80},
				{Source: 3, Target: 4, Value: 120},
				{Source: 3, Target: 5, Value: 110},
				{Source: 3, Target: 6, Value: 100},
			},
			total:      660,
			efficiency: 100,
		},
		{
			name:       "lossy",
			nodes:      []string{"in", "mid", "out"},
			links:      []Link{{Source: 0, Target: 1, Value: 3}, {Source: 1, Target: 2, Value: 2}},
			total:      5,
			efficiency: 67,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := FromIndices(tt.nodes, tt.links)
			if err != nil {
				t.Fatal(err)
			}
			s := g.Stats()
			if s.Nodes != len(tt.nodes) || s.Links != len(tt.links) {
				t.Errorf("counts = %d/%d", s.Nodes, s.Links)
			}
			if s.TotalFlow != tt.total {
				t.Errorf("TotalFlow = %v, want %v", s.TotalFlow, tt.total)
			}
			if s.Efficiency != tt.efficiency {
				t.Errorf("Efficiency = %d, want %d", s.Efficiency, tt.efficiency)
			}
		})
	}
}

func TestLinkKey(t *testing.T) {
	key := LinkKey(3, 12)
	if key != "3-12" {
		t.Fatalf("LinkKey = %q", key)
	}
}

func TestClone(t *testing.T) {
	g, _ := FromIndices([]string{"A", "B"}, []Link{{Source: 0, Target: 1, Value: 2}})
	c := g.Clone()
	c.SetLayers([]int{0, 5})
	if g.Nodes()[1].Layer != 0 {
		t.Error("Clone shares node storage")
	}
}
