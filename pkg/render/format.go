package render

import (
	"strings"

	"github.com/matzehuels/sankeyflow/pkg/errors"
)

// Format is an output format.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatJSON Format = "json"
	FormatDOT  Format = "dot"

	// FormatNodeLink is the flow graph drawn by Graphviz as SVG.
	FormatNodeLink Format = "nodelink"
)

// Formats lists every supported format.
var Formats = []Format{FormatSVG, FormatPNG, FormatJSON, FormatDOT, FormatNodeLink}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	switch f {
	case FormatSVG, FormatNodeLink:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatJSON:
		return "application/json"
	case FormatDOT:
		return "text/vnd.graphviz"
	}
	return "application/octet-stream"
}

// Ext returns the file extension of f, with the dot.
func (f Format) Ext() string {
	if f == FormatNodeLink {
		return ".nodelink.svg"
	}
	return "." + string(f)
}

// TrimExt strips the longest known format extension from path.
func TrimExt(path string) (string, bool) {
	best := ""
	for _, f := range Formats {
		if ext := f.Ext(); strings.HasSuffix(path, ext) && len(ext) > len(best) {
			best = ext
		}
	}
	if best == "" {
		return path, false
	}
	return strings.TrimSuffix(path, best), true
}

// ParseFormat validates a single format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if err := errors.ValidateFormat(string(f), names()); err != nil {
		return "", err
	}
	return f, nil
}

// ParseFormats reads a comma-separated list, dropping duplicates. An empty
// string yields svg.
func ParseFormats(s string) ([]Format, error) {
	if strings.TrimSpace(s) == "" {
		return []Format{FormatSVG}, nil
	}
	var out []Format
	seen := make(map[Format]bool)
	for _, part := range strings.Split(s, ",") {
		f, err := ParseFormat(part)
		if err != nil {
			return nil, err
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out, nil
}

func names() []string {
	out := make([]string, len(Formats))
	for i, f := range Formats {
		out[i] = string(f)
	}
	return out
}
