package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Progress bar block characters.
const (
	BarFilled = '█'
	BarEmpty  = '░'
)

// ProgressColorFunc is a function that returns a color based on percentage.
type ProgressColorFunc func(percent float64) lipgloss.Color

// ThresholdColorFunc builds a color function for utilization bars: green
// below warn, yellow from warn up to crit, red at crit and above. The
// boundaries belong to the higher tier (warn exactly is yellow, crit
// exactly is red).
func ThresholdColorFunc(warn, crit float64) ProgressColorFunc {
	return func(percent float64) lipgloss.Color {
		switch {
		case percent >= crit:
			return ColorError
		case percent >= warn:
			return ColorWarning
		default:
			return ColorSuccess
		}
	}
}

// BarConfig configures progress bar rendering.
type BarConfig struct {
	Width       int               // Width of the bar in cells
	Brackets    bool              // Whether to wrap bar in [ ]
	ColorFunc   ProgressColorFunc // Function to determine bar color
	ShowPercent bool              // Whether to append the percentage
}

// ClampPercent clamps a percentage to the 0-100 range.
func ClampPercent(percent float64) float64 {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// CalculateBarCounts returns the number of filled and empty cells for a bar.
// Percent should be 0-100, width is the total bar width. Filled plus empty
// always equals width.
func CalculateBarCounts(percent float64, width int) (filled, empty int) {
	filled = int((percent / 100.0) * float64(width))
	empty = width - filled
	return
}

// BuildBarString builds the raw bar string (without styling) from filled/empty counts.
// If brackets is true, wraps in [ ].
func BuildBarString(filledCount, emptyCount int, brackets bool) string {
	var sb strings.Builder
	capacity := filledCount + emptyCount
	if brackets {
		capacity += 2
	}
	sb.Grow(capacity)

	if brackets {
		sb.WriteRune('[')
	}

	for i := 0; i < filledCount; i++ {
		sb.WriteRune(BarFilled)
	}
	for i := 0; i < emptyCount; i++ {
		sb.WriteRune(BarEmpty)
	}

	if brackets {
		sb.WriteRune(']')
	}

	return sb.String()
}

// RenderBar renders a progress bar with the given configuration.
// Percent should be 0-100; values outside the range are clamped.
func RenderBar(percent float64, config BarConfig) string {
	if config.Width <= 0 {
		return ""
	}

	percent = ClampPercent(percent)
	filled, empty := CalculateBarCounts(percent, config.Width)
	bar := BuildBarString(filled, empty, config.Brackets)

	// Apply color if a color function is provided
	if config.ColorFunc != nil {
		color := config.ColorFunc(percent)
		style := lipgloss.NewStyle().Foreground(color)
		bar = style.Render(bar)
	}

	if config.ShowPercent {
		bar += fmt.Sprintf(" %5.1f%%", percent)
	}

	return bar
}
