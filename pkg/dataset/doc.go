// Package dataset reads and writes the node and link lists a Sankey diagram
// is built from.
//
// # Formats
//
// Text datasets come either as two lists (one node name per line, and one
// "source,target,value" triple per line) or as a single document with
// "nodes:" and "links:" section headers:
//
//	nodes:
//	Solar
//	Grid
//	links:
//	Solar,Grid,200
//
// JSON and YAML datasets share one shape:
//
//	{"nodes": [{"name": "Solar", "color": "#f59e0b"}, {"name": "Grid"}],
//	 "links": [{"source": "Solar", "target": "Grid", "value": 200}]}
//
// Names are matched exactly and case-sensitively. A malformed line aborts
// the whole read with an error naming the line; nothing partial is returned.
//
// # Built-in datasets
//
// [Sample] and [EnergyExample] are fixed demo datasets. [Random] generates a
// three-stage flow from a seed.
package dataset
