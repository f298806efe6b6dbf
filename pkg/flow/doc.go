// Package flow provides the weighted directed graph behind a Sankey diagram.
//
// # Overview
//
// A [Graph] owns an ordered node sequence and an ordered link sequence. Nodes
// are addressed by their index, which is stable for the lifetime of the
// graph. Every link carries a non-negative flow value; each node tracks the
// sum of its incoming values ([Node.ValueIn]), the sum of its outgoing values
// ([Node.ValueOut]) and the indices of its incident links.
//
// # Building
//
// Graphs are built in one go and never edited afterwards. A caller loading new
// data builds a fresh graph and swaps it in only once [Build] succeeded, so a
// failed load never disturbs the graph on screen:
//
//	g, err := flow.Build(
//	    []flow.NodeSpec{{Name: "A"}, {Name: "B"}, {Name: "C"}},
//	    []flow.LinkSpec{{Source: "A", Target: "C", Value: 10}, {Source: "B", Target: "C", Value: 5}},
//	)
//
// Name lookup is exact and case-sensitive. When two nodes share a name, links
// resolve to the first one.
//
// # Statistics
//
// [Graph.TotalFlow] sums every link value. [Graph.Efficiency] compares what
// arrives at the sinks with what leaves the sources, as a rounded percentage.
//
// # Self-loops
//
// A link whose source and target coincide is accepted. It contributes to both
// aggregates of its node and is otherwise ignored by layering.
package flow
