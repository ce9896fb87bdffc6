package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/ptop/internal/ui"
)

// Severity thresholds for utilization meters. The boundary values belong
// to the higher tier: 60.0 renders yellow, 85.0 renders red.
const (
	WarningThreshold  = 60.0
	CriticalThreshold = 85.0
)

// Base styles for the dashboard. The palette stays within the base 16
// ANSI colors so the dashboard inherits the operator's terminal scheme.
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ui.ColorInfo).
			Bold(true)

	HostStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPrimary).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ui.ColorSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPrimary)

	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ui.ColorSecondary).
				Bold(true)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)

	ErrorNoticeStyle = lipgloss.NewStyle().
				Foreground(ui.ColorError).
				Bold(true)

	borderStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)
)

// metricColor maps a utilization percentage to its severity color.
var metricColor = ui.ThresholdColorFunc(WarningThreshold, CriticalThreshold)

// MetricColor returns the severity color for a percentage-based metric:
// green below WarningThreshold, yellow up to CriticalThreshold, red above.
func MetricColor(percent float64) lipgloss.Color {
	return metricColor(percent)
}

// MetricStyle returns a style carrying the severity color for the metric.
func MetricStyle(percent float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(MetricColor(percent))
}

// MeterBar renders a utilization bar of exactly width cells followed by
// the percentage, colored by severity.
func MeterBar(width int, percent float64) string {
	return ui.RenderBar(percent, ui.BarConfig{
		Width:       width,
		ColorFunc:   metricColor,
		ShowPercent: true,
	})
}

// StateStyle returns the style for a process state column value. Running
// and zombie processes stand out; everything else renders plain.
func StateStyle(state string) lipgloss.Style {
	switch state {
	case "R":
		return lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	case "Z":
		return lipgloss.NewStyle().Foreground(ui.ColorError)
	case "D":
		return lipgloss.NewStyle().Foreground(ui.ColorWarning)
	default:
		return ValueStyle
	}
}

// SectionHeader renders the top border of a framed section with the title
// on the left and a value on the right:
//
//	╭─ Title ──────────────────────────── Value ╮
func SectionHeader(title, value string, width int) string {
	if width < 10 {
		width = 10
	}

	// Widths are measured with lipgloss so styled fragments count their
	// visible cells, not their escape bytes.
	leftWidth := 3 + lipgloss.Width(title) + 1
	rightWidth := 1 + lipgloss.Width(value) + 2

	fillWidth := width - leftWidth - rightWidth
	if fillWidth < 1 {
		fillWidth = 1
	}

	return borderStyle.Render("╭─ ") +
		TitleStyle.Render(title) +
		borderStyle.Render(" "+strings.Repeat("─", fillWidth)+" ") +
		HostStyle.Render(value) +
		borderStyle.Render(" ╮")
}

// SectionFooter renders the bottom border of a framed section.
func SectionFooter(width int) string {
	if width < 2 {
		width = 2
	}
	return borderStyle.Render("╰" + strings.Repeat("─", width-2) + "╯")
}

// SectionContentLine renders one framed content line, padded to width:
//
//	│ content                                   │
func SectionContentLine(content string, width int) string {
	if width < 4 {
		width = 4
	}

	padding := width - 4 - lipgloss.Width(content)
	if padding < 0 {
		padding = 0
	}

	return borderStyle.Render("│") + " " + content + strings.Repeat(" ", padding) + " " + borderStyle.Render("│")
}
