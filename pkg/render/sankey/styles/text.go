package styles

import "html"

// EscapeXML escapes s for use in SVG text and attribute values. Newlines
// are kept so multi-line titles survive.
func EscapeXML(s string) string {
	return html.EscapeString(s)
}
