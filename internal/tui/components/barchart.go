package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/tempo/internal/tui/styles"
)

const (
	barChar       = "█"
	maxLabelWidth = 16
)

// Bar is one labelled value in a BarChart.
type Bar struct {
	Label string
	Value float64
}

// BarChart renders horizontal bars scaled to the largest value:
//
//	Monday     ██████████ 4
//	Tuesday    █████      2
type BarChart struct {
	Bars   []Bar
	Width  int                  // total width available, labels and values included
	Format func(float64) string // value formatter, defaults to %g
}

// NewBarChart creates a BarChart.
func NewBarChart(bars []Bar, width int) BarChart {
	return BarChart{Bars: bars, Width: width}
}

// View renders the chart, one line per bar. An empty chart renders "".
func (c BarChart) View() string {
	if len(c.Bars) == 0 {
		return ""
	}

	format := c.Format
	if format == nil {
		format = func(v float64) string { return fmt.Sprintf("%g", v) }
	}

	labelWidth, valueWidth := 0, 0
	maxValue := 0.0
	values := make([]string, len(c.Bars))
	for i, b := range c.Bars {
		labelWidth = max(labelWidth, lipgloss.Width(b.Label))
		values[i] = format(b.Value)
		valueWidth = max(valueWidth, len(values[i]))
		maxValue = max(maxValue, b.Value)
	}
	labelWidth = min(labelWidth, maxLabelWidth)

	barWidth := c.Width - labelWidth - valueWidth - 2
	if barWidth < 1 {
		barWidth = 1
	}

	lines := make([]string, len(c.Bars))
	for i, b := range c.Bars {
		n := 0
		if maxValue > 0 && b.Value > 0 {
			n = max(1, int(b.Value/maxValue*float64(barWidth)))
		}
		bar := styles.BarStyle.Render(strings.Repeat(barChar, n)) + strings.Repeat(" ", barWidth-n)
		lines[i] = fmt.Sprintf("%-*s %s %s", labelWidth, truncate(b.Label, labelWidth), bar, values[i])
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
