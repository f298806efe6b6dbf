// Package styles holds colours, themes and label helpers shared by the
// Sankey sinks.
//
// Colour math goes through go-colorful so that every sink (SVG, PNG and the
// terminal explorer) derives identical gradient stops from the same node
// colours.
package styles
