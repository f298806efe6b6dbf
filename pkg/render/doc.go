// Package render names the output formats of sankeyflow and hosts the
// renderers in its subpackages.
//
// # Overview
//
//   - Sankey diagrams (in [sankey] subpackages): layout, scene, styles and sinks
//   - Node-link diagrams (in [nodelink] subpackage) via Graphviz
//
// Key sankey subpackages:
//   - [sankey/layout]: node rectangles and link curves
//   - [sankey/scene]: drawable shapes, strokes and hover picking
//   - [sankey/sink]: output formats (SVG, PNG, JSON)
//   - [sankey/styles]: palette, themes and colour math
//
// # Formats
//
// [Format] enumerates what the pipeline can produce. [ParseFormats] reads a
// comma-separated list as accepted by the CLI and the HTTP host.
//
// [sankey]: github.com/matzehuels/sankeyflow/pkg/render/sankey
// [sankey/layout]: github.com/matzehuels/sankeyflow/pkg/render/sankey/layout
// [sankey/scene]: github.com/matzehuels/sankeyflow/pkg/render/sankey/scene
// [sankey/sink]: github.com/matzehuels/sankeyflow/pkg/render/sankey/sink
// [sankey/styles]: github.com/matzehuels/sankeyflow/pkg/render/sankey/styles
// [nodelink]: github.com/matzehuels/sankeyflow/pkg/render/nodelink
package render
