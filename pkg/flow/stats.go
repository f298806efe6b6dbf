package flow

import (
	"fmt"
	"math"
)

// Stats summarizes a graph for status lines and API responses.
type Stats struct {
	Nodes      int     `json:"nodes"`
	Links      int     `json:"links"`
	TotalFlow  float64 `json:"total_flow"`
	Efficiency int     `json:"efficiency"`
	Layers     int     `json:"layers"`
}

// String renders the stats on one line.
func (s Stats) String() string {
	return fmt.Sprintf("%d nodes, %d links, total flow %g, efficiency %d%%", s.Nodes, s.Links, s.TotalFlow, s.Efficiency)
}

// Stats computes the summary. Layers counts distinct layers and is only
// meaningful after layer assignment.
func (g *Graph) Stats() Stats {
	layers := 0
	if len(g.nodes) > 0 {
		layers = g.MaxLayer() + 1
	}
	return Stats{
		Nodes:      g.NodeCount(),
		Links:      g.LinkCount(),
		TotalFlow:  g.TotalFlow(),
		Efficiency: g.Efficiency(),
		Layers:     layers,
	}
}

// TotalFlow returns the sum of all link values.
func (g *Graph) TotalFlow() float64 {
	var sum float64
	for _, l := range g.links {
		sum += l.Value
	}
	return sum
}

// Efficiency returns round(sinkIn / sourceOut * 100), where sinkIn sums
// ValueIn over nodes without outgoing links and sourceOut sums ValueOut over
// nodes without incoming links. It is 0 when sourceOut is 0.
func (g *Graph) Efficiency() int {
	var in, out float64
	for _, n := range g.nodes {
		if n.IsSink() {
			in += n.ValueIn
		}
		if n.IsSource() {
			out += n.ValueOut
		}
	}
	if out == 0 {
		return 0
	}
	return int(math.Round(in / out * 100))
}

// Share returns value as a percentage of the total flow, or 0 when the
// graph carries no flow.
func (g *Graph) Share(value float64) float64 {
	total := g.TotalFlow()
	if total == 0 {
		return 0
	}
	return value / total * 100
}
