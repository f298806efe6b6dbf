package styles

// DefaultPalette colours nodes that arrive without a colour, by index.
var DefaultPalette = []string{
	"#3b82f6", "#10b981", "#f59e0b", "#ef4444", "#8b5cf6",
	"#ec4899", "#06b6d4", "#84cc16", "#f97316", "#6366f1",
}

// NodeColor returns explicit when set, otherwise the palette entry for idx.
// An empty palette falls back to DefaultPalette.
func NodeColor(palette []string, idx int, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return palette[idx%len(palette)]
}
