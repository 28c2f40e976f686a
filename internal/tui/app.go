// Package tui implements the interactive terminal interface.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/tempo/internal/tui/msgs"
	"github.com/pablasso/tempo/internal/tui/styles"
	"github.com/pablasso/tempo/internal/tui/views"
)

// Minimum terminal size the layouts are designed for.
const (
	MinTerminalWidth  = 60
	MinTerminalHeight = 15
)

// View represents the different screens in the TUI.
type View int

const (
	ViewHome View = iota
	ViewAddTask
	ViewTaskList
	ViewAnalytics
	ViewPredict
)

// Model is the main Bubble Tea model that orchestrates all views.
type Model struct {
	currentView View
	width       int
	height      int

	home      views.HomeModel
	addTask   views.AddTaskModel
	taskList  views.TaskListModel
	analytics views.AnalyticsModel
	predict   views.PredictModel

	svc views.Service
	now func() time.Time
}

// Run starts the TUI application.
func Run(svc views.Service) error {
	p := tea.NewProgram(
		initialModel(svc),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

func initialModel(svc views.Service) Model {
	return Model{
		currentView: ViewHome,
		home:        views.NewHomeModel(),
		svc:         svc,
		now:         time.Now,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.updateCurrent(msg)

	case msgs.GoToHomeMsg:
		m.currentView = ViewHome
		m.home.SetSize(m.width, m.height)
		return m, nil

	case msgs.GoToAddTaskMsg:
		m.currentView = ViewAddTask
		m.addTask = views.NewAddTaskModel(m.svc, m.now())
		m.addTask.SetSize(m.width, m.height)
		return m, m.addTask.Init()

	case msgs.GoToTaskListMsg:
		m.currentView = ViewTaskList
		m.taskList = views.NewTaskListModel(m.svc)
		m.taskList.SetSize(m.width, m.height)
		return m, m.taskList.Init()

	case msgs.GoToAnalyticsMsg:
		m.currentView = ViewAnalytics
		m.analytics = views.NewAnalyticsModel(m.svc)
		m.analytics.SetSize(m.width, m.height)
		return m, m.analytics.Init()

	case msgs.GoToPredictMsg:
		m.currentView = ViewPredict
		m.predict = views.NewPredictModel(m.svc)
		m.predict.SetSize(m.width, m.height)
		return m, m.predict.Init()
	}

	return m.updateCurrent(msg)
}

// updateCurrent delegates msg to the active view.
func (m Model) updateCurrent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentView {
	case ViewHome:
		m.home, cmd = m.home.Update(msg)
	case ViewAddTask:
		m.addTask, cmd = m.addTask.Update(msg)
	case ViewTaskList:
		m.taskList, cmd = m.taskList.Update(msg)
	case ViewAnalytics:
		m.analytics, cmd = m.analytics.Update(msg)
	case ViewPredict:
		m.predict, cmd = m.predict.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width > 0 && m.height > 0 && (m.width < MinTerminalWidth || m.height < MinTerminalHeight) {
		return m.renderTerminalTooSmall()
	}

	switch m.currentView {
	case ViewAddTask:
		return m.addTask.View()
	case ViewTaskList:
		return m.taskList.View()
	case ViewAnalytics:
		return m.analytics.View()
	case ViewPredict:
		return m.predict.View()
	}
	return m.home.View()
}

// renderTerminalTooSmall renders a warning when the terminal is below the minimum size.
func (m Model) renderTerminalTooSmall() string {
	lines := []string{
		styles.ErrorStyle.Render("Terminal too small"),
		"",
		fmt.Sprintf("Minimum: %dx%d", MinTerminalWidth, MinTerminalHeight),
		fmt.Sprintf("Current: %dx%d", m.width, m.height),
	}
	content := strings.Join(lines, "\n")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
