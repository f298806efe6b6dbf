package styles

import "testing"

func TestLighten(t *testing.T) {
	tests := []struct {
		in      string
		percent float64
		want    string
	}{
		{"#3b82f6", 20, "#6eb5ff"},
		{"#000000", 20, "#333333"},
		{"#ffffff", 20, "#ffffff"},
		{"#808080", -100, "#000000"},
	}
	for _, tt := range tests {
		if got := Lighten(tt.in, tt.percent); got != tt.want {
			t.Errorf("Lighten(%s, %v) = %s, want %s", tt.in, tt.percent, got, tt.want)
		}
	}
}

func TestBlend(t *testing.T) {
	if got := Blend("#000000", "#ffffff", 0); got != "#000000" {
		t.Errorf("Blend t=0 = %s", got)
	}
	if got := Blend("#000000", "#ffffff", 1); got != "#ffffff" {
		t.Errorf("Blend t=1 = %s", got)
	}
}

func TestParse(t *testing.T) {
	for _, ok := range []string{"#3b82f6", "#abc"} {
		if !ValidColor(ok) {
			t.Errorf("ValidColor(%q) = false", ok)
		}
	}
	for _, bad := range []string{"", "blue", "#12"} {
		if ValidColor(bad) {
			t.Errorf("ValidColor(%q) = true", bad)
		}
	}
	if got := MustParse("nope").Hex(); got != Fallback {
		t.Errorf("MustParse fallback = %s", got)
	}
}

func TestRGBA(t *testing.T) {
	c := RGBA("#ff0000", 0.6)
	if c.R != 255 || c.G != 0 || c.B != 0 || c.A != 153 {
		t.Errorf("RGBA = %+v", c)
	}
}

func TestNodeColor(t *testing.T) {
	if got := NodeColor(nil, 0, "#123456"); got != "#123456" {
		t.Errorf("explicit colour ignored: %s", got)
	}
	if got := NodeColor(nil, 11, ""); got != DefaultPalette[1] {
		t.Errorf("palette wrap = %s", got)
	}
	if got := NodeColor([]string{"#000000"}, 5, ""); got != "#000000" {
		t.Errorf("custom palette = %s", got)
	}
}

func TestLookupTheme(t *testing.T) {
	if th, ok := LookupTheme(""); !ok || th.Name != "default" {
		t.Errorf("empty name = %v, %v", th.Name, ok)
	}
	if _, ok := LookupTheme("neon"); ok {
		t.Error("unknown theme found")
	}
	if names := ThemeNames(); len(names) != 2 || names[0] != "dark" {
		t.Errorf("ThemeNames() = %v", names)
	}
}

func TestEscapeXML(t *testing.T) {
	if got := EscapeXML(`A & <B>`); got != "A &amp; &lt;B&gt;" {
		t.Errorf("EscapeXML = %q", got)
	}
}
