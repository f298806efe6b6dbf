package styles

import "sort"

// Theme collects the presentation constants of a diagram.
type Theme struct {
	Name          string
	Background    string
	LabelColor    string
	NodeStroke    string  // Outline colour
	StrokeOpacity float64 // Outline opacity
	NodeStrokeW   float64 // Outline width
	CornerRadius  float64
	LinkOpacity   float64
	FontSize      float64
	Palette       []string
}

// DefaultTheme is the stock light look.
var DefaultTheme = Theme{
	Name:          "default",
	Background:    "#ffffff",
	LabelColor:    "#ffffff",
	NodeStroke:    "#ffffff",
	StrokeOpacity: 0.3,
	NodeStrokeW:   1.5,
	CornerRadius:  6,
	LinkOpacity:   0.6,
	FontSize:      11,
	Palette:       DefaultPalette,
}

// DarkTheme renders on a dark canvas with brighter links.
var DarkTheme = Theme{
	Name:          "dark",
	Background:    "#111827",
	LabelColor:    "#f9fafb",
	NodeStroke:    "#000000",
	StrokeOpacity: 0.4,
	NodeStrokeW:   1.5,
	CornerRadius:  6,
	LinkOpacity:   0.75,
	FontSize:      11,
	Palette:       DefaultPalette,
}

var themes = map[string]Theme{
	DefaultTheme.Name: DefaultTheme,
	DarkTheme.Name:    DarkTheme,
}

// LookupTheme returns the theme called name.
func LookupTheme(name string) (Theme, bool) {
	if name == "" {
		return DefaultTheme, true
	}
	t, ok := themes[name]
	return t, ok
}

// ThemeNames lists the registered themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
