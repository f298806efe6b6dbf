package cli

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{12_800, "12.5 KB"},
		{3 * 1024 * 1024, "3.0 MB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatFlow(t *testing.T) {
	tests := map[float64]string{
		150:  "150",
		12.5: "12.5",
		0:    "0",
		-30:  "-30",
	}
	for v, want := range tests {
		if got := formatFlow(v); got != want {
			t.Errorf("formatFlow(%v) = %q, want %q", v, got, want)
		}
	}
}

func TestEfficiencyStyle(t *testing.T) {
	tests := []struct {
		pct  int
		want lipgloss.Color
	}{
		{100, colorGreen},
		{efficiencyGood, colorGreen},
		{efficiencyGood - 1, colorYellow},
		{efficiencyFair, colorYellow},
		{efficiencyFair - 1, colorRed},
		{0, colorRed},
	}
	for _, tt := range tests {
		if got := efficiencyStyle(tt.pct).GetForeground(); got != tt.want {
			t.Errorf("efficiencyStyle(%d) foreground = %v, want %v", tt.pct, got, tt.want)
		}
	}
}
