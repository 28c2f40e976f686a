package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/tempo/internal/analysis"
	"github.com/pablasso/tempo/internal/tui/components"
	"github.com/pablasso/tempo/internal/tui/msgs"
	"github.com/pablasso/tempo/internal/tui/styles"
)

// Chart identifies one analytics series.
type Chart int

const (
	ChartByDay Chart = iota
	ChartByType
	ChartMeanByType
	chartCount
)

// Title returns the heading shown above the chart.
func (c Chart) Title() string {
	switch c {
	case ChartByDay:
		return "Tasks by Day"
	case ChartByType:
		return "Tasks by Type"
	case ChartMeanByType:
		return "Average Minutes by Type"
	}
	return ""
}

const maxChartWidth = 72

// AnalyticsModel shows the task distribution charts one at a time.
type AnalyticsModel struct {
	svc    Service
	report analysis.Report
	chart  Chart
	errMsg string
	width  int
	height int
}

// NewAnalyticsModel creates an AnalyticsModel and computes the report.
func NewAnalyticsModel(svc Service) AnalyticsModel {
	m := AnalyticsModel{svc: svc}
	m.reload()
	return m
}

func (m *AnalyticsModel) reload() {
	report, err := m.svc.Analytics()
	if err != nil {
		m.errMsg = errorText(err)
		return
	}
	m.errMsg = ""
	m.report = report
}

// Init implements tea.Model.
func (m AnalyticsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m AnalyticsModel) Update(msg tea.Msg) (AnalyticsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc", "q":
			return m, func() tea.Msg { return msgs.GoToHomeMsg{} }
		case "right", "l", "tab":
			m.chart = (m.chart + 1) % chartCount
		case "left", "h", "shift+tab":
			m.chart = (m.chart + chartCount - 1) % chartCount
		case "1":
			m.chart = ChartByDay
		case "2":
			m.chart = ChartByType
		case "3":
			m.chart = ChartMeanByType
		case "r":
			m.reload()
		}
	}
	return m, nil
}

// bars returns the series for the selected chart.
func (m AnalyticsModel) bars() []analysis.Bar {
	switch m.chart {
	case ChartByType:
		return m.report.ByType
	case ChartMeanByType:
		return m.report.MeanByType
	}
	return m.report.ByDay
}

// renderChart renders the selected chart at the given width.
func (m AnalyticsModel) renderChart(width int) string {
	series := m.bars()
	bars := make([]components.Bar, len(series))
	for i, b := range series {
		bars[i] = components.Bar{Label: b.Label, Value: b.Value}
	}

	chart := components.NewBarChart(bars, width)
	if m.chart == ChartMeanByType {
		chart.Format = func(v float64) string { return fmt.Sprintf("%.1f min", v) }
	}
	return chart.View()
}

// View implements tea.Model.
func (m AnalyticsModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var tabs []string
	for c := Chart(0); c < chartCount; c++ {
		label := fmt.Sprintf("[%d] %s", c+1, c.Title())
		if c == m.chart {
			tabs = append(tabs, styles.SelectedStyle.Render(label))
		} else {
			tabs = append(tabs, styles.SubtleStyle.Render(label))
		}
	}

	var body string
	switch {
	case m.errMsg != "":
		body = styles.ErrorStyle.Render(m.errMsg)
	case len(m.bars()) == 0:
		body = styles.SubtleStyle.Render("No tasks to analyze yet.")
	default:
		body = m.renderChart(min(m.width-4, maxChartWidth))
	}

	lines := []string{
		styles.TitleStyle.Render("Analytics"),
		strings.Join(tabs, "   "),
		"",
		styles.SectionStyle.Render(m.chart.Title()),
		"",
		body,
	}
	if m.report.UndatedTasks > 0 && m.chart == ChartByDay {
		lines = append(lines, "", styles.PendingStyle.Render(
			fmt.Sprintf("%d task(s) skipped: date not recognized", m.report.UndatedTasks)))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	contentHeight := lipgloss.Height(content)
	availableHeight := m.height - 1
	topPadding := max(0, (availableHeight-contentHeight)/3)

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", topPadding))
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content))
	b.WriteString(strings.Repeat("\n", max(1, availableHeight-topPadding-contentHeight+1)))
	b.WriteString(components.NewStatusBar().Render(m.width, []components.HelpItem{
		{Key: "←→", Desc: "Switch chart"},
		{Key: "r", Desc: "Refresh"},
		{Key: "esc", Desc: "Back"},
	}))
	return b.String()
}

// SetSize updates the model dimensions.
func (m *AnalyticsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Chart returns the selected chart.
func (m AnalyticsModel) Chart() Chart {
	return m.chart
}

// Report returns the loaded analytics report.
func (m AnalyticsModel) Report() analysis.Report {
	return m.report
}

// Error returns the current error message.
func (m AnalyticsModel) Error() string {
	return m.errMsg
}
