package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/sankeyflow/pkg/flow"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary
	colorGreen  = lipgloss.Color("35")  // Green - success, balanced flows
	colorYellow = lipgloss.Color("220") // Amber - warnings, lossy flows
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - commands, addresses
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - keys
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// Efficiency thresholds in percent. Below efficiencyFair a summary is
// shown in red.
const (
	efficiencyGood = 90
	efficiencyFair = 50
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for dataset names and headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleLink for the serve address.
	StyleLink = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleNumber for counts and flow values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleCached  = lipgloss.NewStyle().Foreground(colorGreen)
	styleFresh   = lipgloss.NewStyle().Foreground(colorGray)
	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	separator   = " · "
)

// =============================================================================
// Status Output
// =============================================================================

func printStatus(icon lipgloss.Style, glyph, msg string) {
	fmt.Println(icon.Render(glyph) + " " + msg)
}

func printSuccess(format string, args ...any) {
	printStatus(styleIconSuccess, iconSuccess, fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	printStatus(styleIconError, iconError, fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	printStatus(styleIconWarning, iconWarning, styleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	printStatus(styleIconInfo, iconInfo, fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line under a status message.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Println()
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// =============================================================================
// Files
// =============================================================================

// printFile prints a written path.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + styleValue.Render(path))
}

// printArtifact prints a written artifact with its size.
func printArtifact(path string, size int) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + styleValue.Render(path) + "  " + StyleDim.Render(formatBytes(size)))
}

// formatBytes renders a byte count in B, KB or MB with one decimal.
func formatBytes(n int) string {
	switch {
	case n < 1024:
		return strconv.Itoa(n) + " B"
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}

// =============================================================================
// Flow Summaries
// =============================================================================

// formatFlow renders a flow value without trailing zeros.
func formatFlow(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// efficiencyStyle colours an efficiency percentage by how much flow reaches
// the sinks.
func efficiencyStyle(pct int) lipgloss.Style {
	switch {
	case pct >= efficiencyGood:
		return styleIconSuccess
	case pct >= efficiencyFair:
		return styleWarning
	default:
		return styleIconError
	}
}

// printSummary prints a one-line flow summary followed by the cache status.
func printSummary(st flow.Stats, cached bool) {
	counts := []string{
		fmt.Sprintf("%d nodes", st.Nodes),
		fmt.Sprintf("%d links", st.Links),
		formatFlow(st.TotalFlow) + " total",
	}
	status := styleFresh.Render("fresh")
	if cached {
		status = styleCached.Render("cached")
	}
	fmt.Println("  " + StyleDim.Render(strings.Join(counts, separator)) +
		StyleDim.Render(separator) + efficiencyStyle(st.Efficiency).Render(fmt.Sprintf("%d%% efficient", st.Efficiency)) +
		StyleDim.Render(separator) + status)
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + value)
}

// printStatsTable prints a flow summary as aligned key/value lines.
func printStatsTable(source string, st flow.Stats) {
	fmt.Println(StyleTitle.Render(source))
	printKeyValue("Nodes", StyleNumber.Render(strconv.Itoa(st.Nodes)))
	printKeyValue("Links", StyleNumber.Render(strconv.Itoa(st.Links)))
	printKeyValue("Layers", StyleNumber.Render(strconv.Itoa(st.Layers)))
	printKeyValue("Total flow", StyleNumber.Render(formatFlow(st.TotalFlow)))
	printKeyValue("Efficiency", efficiencyStyle(st.Efficiency).Render(strconv.Itoa(st.Efficiency)+"%"))
}
