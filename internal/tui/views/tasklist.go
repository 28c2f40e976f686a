package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/tempo/internal/analysis"
	"github.com/pablasso/tempo/internal/task"
	"github.com/pablasso/tempo/internal/tui/components"
	"github.com/pablasso/tempo/internal/tui/msgs"
	"github.com/pablasso/tempo/internal/tui/styles"
)

const (
	progressBarWidth = 20
	nameColumnWidth  = 28
	// title, counters, progress and spacing above the list
	taskListChrome = 7
)

// TaskListModel lists every task with its status and lets the user mark
// pending ones as done.
type TaskListModel struct {
	svc     Service
	tasks   []task.Task
	stats   analysis.Stats
	cursor  int
	offset  int
	errMsg  string
	notice  string
	pending bool // a mark-done is in flight
	width   int
	height  int
}

// NewTaskListModel creates a TaskListModel and loads the current tasks.
func NewTaskListModel(svc Service) TaskListModel {
	m := TaskListModel{svc: svc}
	m.reload()
	return m
}

// reload re-reads the task log and recomputes the counters.
func (m *TaskListModel) reload() {
	tasks, err := m.svc.Tasks()
	if err != nil {
		m.errMsg = errorText(err)
		return
	}
	m.tasks = tasks
	m.stats = analysis.Summarize(tasks)
	if m.cursor >= len(m.tasks) {
		m.cursor = max(0, len(m.tasks)-1)
	}
	m.clampOffset()
}

// Init implements tea.Model.
func (m TaskListModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m TaskListModel) Update(msg tea.Msg) (TaskListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampOffset()
		return m, nil

	case msgs.TaskMarkedDoneMsg:
		m.pending = false
		if msg.Err != nil {
			m.notice = ""
			m.errMsg = errorText(msg.Err)
			return m, nil
		}
		m.errMsg = ""
		m.reload()
		if msg.Index >= 0 && msg.Index < len(m.tasks) {
			m.notice = fmt.Sprintf("Marked %q as done", m.tasks[msg.Index].Name)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc", "q":
			return m, func() tea.Msg { return msgs.GoToHomeMsg{} }
		case "a":
			return m, func() tea.Msg { return msgs.GoToAddTaskMsg{} }
		case "r":
			m.errMsg, m.notice = "", ""
			m.reload()
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			m.clampOffset()
		case "down", "j":
			if m.cursor < len(m.tasks)-1 {
				m.cursor++
			}
			m.clampOffset()
		case "home", "g":
			m.cursor = 0
			m.clampOffset()
		case "end", "G":
			m.cursor = max(0, len(m.tasks)-1)
			m.clampOffset()
		case "enter", "d":
			return m.markSelected()
		}
	}
	return m, nil
}

// markSelected marks the task under the cursor as done.
func (m TaskListModel) markSelected() (TaskListModel, tea.Cmd) {
	if m.pending || m.cursor >= len(m.tasks) {
		return m, nil
	}
	if m.tasks[m.cursor].IsDone() {
		m.errMsg = ""
		m.notice = "Task is already done"
		return m, nil
	}

	m.pending = true
	svc, index := m.svc, m.cursor
	return m, func() tea.Msg {
		return msgs.TaskMarkedDoneMsg{Index: index, Err: svc.MarkDone(index)}
	}
}

// listHeight is the number of task rows that fit on screen.
func (m TaskListModel) listHeight() int {
	return max(1, m.height-taskListChrome-3) // message line, spacing, status bar
}

// clampOffset keeps the cursor inside the visible window.
func (m *TaskListModel) clampOffset() {
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	m.offset = max(0, min(m.offset, len(m.tasks)-h))
}

// View implements tea.Model.
func (m TaskListModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.TitleStyle.Render("Tasks")))
	b.WriteString("\n")

	counters := fmt.Sprintf("Total %d   %s   %s",
		m.stats.Total,
		styles.DoneStyle.Render(fmt.Sprintf("Done %d", m.stats.Done)),
		styles.PendingStyle.Render(fmt.Sprintf("Pending %d", m.stats.Pending)),
	)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, counters))
	b.WriteString("\n")
	progress := components.NewProgress(m.stats.Percent, progressBarWidth)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, "Progress "+progress.View()))
	b.WriteString("\n\n")

	used := taskListChrome - 1
	if len(m.tasks) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, "No tasks yet."))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
			styles.SubtleStyle.Render("Press 'a' to add your first task, or Esc to go back.")))
		used += 2
	} else {
		h := m.listHeight()
		end := min(len(m.tasks), m.offset+h)
		lines := make([]string, 0, h)
		for i := m.offset; i < end; i++ {
			lines = append(lines, m.formatTaskLine(i, m.tasks[i]))
		}
		for len(lines) < h {
			lines = append(lines, "")
		}
		list := lipgloss.JoinHorizontal(lipgloss.Top,
			strings.Join(lines, "\n"),
			" ",
			components.RenderScrollbar(h, len(m.tasks), m.offset),
		)
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, list))
		used += h
	}

	b.WriteString("\n\n")
	switch {
	case m.errMsg != "":
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.ErrorStyle.Render(m.errMsg)))
	case m.notice != "":
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.DoneStyle.Render(m.notice)))
	}
	used += 2

	b.WriteString(strings.Repeat("\n", max(0, m.height-1-used)))
	b.WriteString(components.NewStatusBar().Render(m.width, []components.HelpItem{
		{Key: "↑↓", Desc: "Navigate"},
		{Key: "enter", Desc: "Mark done"},
		{Key: "a", Desc: "Add"},
		{Key: "r", Desc: "Reload"},
		{Key: "esc", Desc: "Back"},
	}))

	return b.String()
}

// formatTaskLine formats one task row.
// Format: ● 3. Name                 2024-03-04  Work      45 minutes  Pending
func (m TaskListModel) formatTaskLine(index int, t task.Task) string {
	indicator := "○"
	if index == m.cursor {
		indicator = "●"
	}

	name := t.Name
	if r := []rune(name); len(r) > nameColumnWidth {
		name = string(r[:nameColumnWidth-1]) + "…"
	}

	line := fmt.Sprintf("%s %3d. %-*s  %-10s  %-10s  %-12s  %s",
		indicator, index+1, nameColumnWidth, name, t.Date, t.Type, t.Duration, t.Status)

	switch {
	case index == m.cursor:
		return styles.SelectedStyle.Render(line)
	case t.IsDone():
		return styles.SubtleStyle.Render(line)
	}
	return line
}

// SetSize updates the model dimensions.
func (m *TaskListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.clampOffset()
}

// Tasks returns the loaded tasks.
func (m TaskListModel) Tasks() []task.Task {
	return m.tasks
}

// Stats returns the counters for the loaded tasks.
func (m TaskListModel) Stats() analysis.Stats {
	return m.stats
}

// Cursor returns the current cursor position.
func (m TaskListModel) Cursor() int {
	return m.cursor
}

// Offset returns the index of the first visible row.
func (m TaskListModel) Offset() int {
	return m.offset
}

// Error returns the current error message.
func (m TaskListModel) Error() string {
	return m.errMsg
}

// Notice returns the current status message.
func (m TaskListModel) Notice() string {
	return m.notice
}
