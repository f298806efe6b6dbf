// Package cli implements the sankeyflow command-line interface.
//
// Commands read a dataset (a text, JSON or YAML file, a pair of list files or
// a built-in sample), run it through the pipeline and write diagrams, layout
// snapshots or summaries. The CLI is built using cobra; progress and pipeline
// events are logged with charmbracelet/log.
//
// # Commands
//
//   - render: Generate SVG, PNG, JSON, DOT or nodelink output
//   - layout: Write node rectangles and link paths as JSON
//   - stats: Summarize node count, link count, total flow and efficiency
//   - explore: Browse a diagram interactively in the terminal
//   - serve: Run the HTTP rendering host
//   - sample: Print a built-in dataset
//   - cache, config: Manage the local cache and config file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// reports pipeline stage timings and cache hits.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// logTimeFormat keeps hundredths of a second, e.g. "14:32:01.45".
const logTimeFormat = "15:04:05.00"

// newLogger writes timestamped records to w. At debug level each record
// also carries its call site.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		ReportCaller:    level <= log.DebugLevel,
		TimeFormat:      logTimeFormat,
		Level:           level,
	})
}
