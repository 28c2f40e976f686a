package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/tempo/internal/tui/components"
	"github.com/pablasso/tempo/internal/tui/msgs"
	"github.com/pablasso/tempo/internal/tui/styles"
)

// MenuItem represents a menu option in the home view.
type MenuItem struct {
	Label       string
	Shortcut    string
	Description string
}

// MenuSection represents a group of related menu items.
type MenuSection struct {
	Title string
	Items []MenuItem
}

// HomeModel is the model for the home view landing screen.
type HomeModel struct {
	sections []MenuSection
	cursor   int
	width    int
	height   int
	errorMsg string // Temporary error message to display
}

// NewHomeModel creates a new HomeModel.
func NewHomeModel() HomeModel {
	return HomeModel{
		sections: []MenuSection{
			{
				Title: "Track",
				Items: []MenuItem{
					{Label: "Add Task", Shortcut: "a", Description: "Log a task with its date, type and duration"},
					{Label: "View Tasks", Shortcut: "t", Description: "Review tasks and mark them done"},
				},
			},
			{
				Title: "Insights",
				Items: []MenuItem{
					{Label: "Analytics", Shortcut: "s", Description: "See busy days, focus areas and durations"},
					{Label: "Predict Productivity", Shortcut: "p", Description: "Ask whether a day and type tend to be productive"},
				},
			},
			{
				Title: "",
				Items: []MenuItem{
					{Label: "Quit", Shortcut: "q", Description: ""},
				},
			},
		},
	}
}

// Init implements tea.Model.
func (m HomeModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m HomeModel) Update(msg tea.Msg) (HomeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < m.totalMenuItems()-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			return m, commandFor(m.getShortcutAtCursor())
		}
		return m, commandFor(msg.String())
	}
	return m, nil
}

// commandFor maps a menu shortcut to its navigation command.
func commandFor(shortcut string) tea.Cmd {
	switch shortcut {
	case "a":
		return func() tea.Msg { return msgs.GoToAddTaskMsg{} }
	case "t":
		return func() tea.Msg { return msgs.GoToTaskListMsg{} }
	case "s":
		return func() tea.Msg { return msgs.GoToAnalyticsMsg{} }
	case "p":
		return func() tea.Msg { return msgs.GoToPredictMsg{} }
	case "q":
		return tea.Quit
	}
	return nil
}

// totalMenuItems returns the total number of menu items across all sections.
func (m HomeModel) totalMenuItems() int {
	total := 0
	for _, section := range m.sections {
		total += len(section.Items)
	}
	return total
}

// getShortcutAtCursor returns the shortcut key for the currently selected item.
func (m HomeModel) getShortcutAtCursor() string {
	idx := 0
	for _, section := range m.sections {
		for _, item := range section.Items {
			if idx == m.cursor {
				return item.Shortcut
			}
			idx++
		}
	}
	return ""
}

// View implements tea.Model.
func (m HomeModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder

	title := styles.TitleStyle.Render("T E M P O")
	tagline := styles.SubtleStyle.Render("Task tracker with a productivity predictor")

	var menuLines []string
	cursorIdx := 0
	for sectionIdx, section := range m.sections {
		if section.Title != "" {
			menuLines = append(menuLines, styles.SectionStyle.Render(section.Title))
		}

		for _, item := range section.Items {
			mainPart := "[" + item.Shortcut + "] " + item.Label
			var line string
			if cursorIdx == m.cursor {
				line = styles.SelectedStyle.Render(mainPart)
			} else {
				line = styles.SubtleStyle.Render(mainPart)
			}
			if item.Description != "" {
				line += "  " + styles.SubtleStyle.Render(item.Description)
			}
			menuLines = append(menuLines, line)
			cursorIdx++
		}

		if sectionIdx < len(m.sections)-1 {
			menuLines = append(menuLines, "")
		}
	}

	// title + tagline + spacing + menu (+ spacing + error)
	contentHeight := 4 + len(menuLines)
	if m.errorMsg != "" {
		contentHeight += 2
	}
	availableHeight := m.height - 1 // status bar
	topPadding := max(0, (availableHeight-contentHeight)/2)

	b.WriteString(strings.Repeat("\n", topPadding))
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tagline))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, strings.Join(menuLines, "\n")))

	if m.errorMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.ErrorStyle.Render(m.errorMsg)))
	}

	bottomPadding := max(0, availableHeight-topPadding-contentHeight)
	b.WriteString(strings.Repeat("\n", bottomPadding))

	b.WriteString(components.NewStatusBar().Render(m.width, []components.HelpItem{
		{Key: "↑↓", Desc: "Navigate"},
		{Key: "enter", Desc: "Select"},
		{Key: "q", Desc: "Quit"},
	}))

	return b.String()
}

// SetSize updates the model dimensions.
func (m *HomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Cursor returns the current cursor position.
func (m HomeModel) Cursor() int {
	return m.cursor
}

// SetError sets an error message to display temporarily.
func (m *HomeModel) SetError(msg string) {
	m.errorMsg = msg
}

// Error returns the current error message.
func (m HomeModel) Error() string {
	return m.errorMsg
}
