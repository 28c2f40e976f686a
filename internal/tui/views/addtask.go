package views

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/tempo/internal/tracker"
	"github.com/pablasso/tempo/internal/tui/components"
	"github.com/pablasso/tempo/internal/tui/msgs"
	"github.com/pablasso/tempo/internal/tui/styles"
)

// DateLayout is the layout used to prefill the date field.
const DateLayout = "2006-01-02"

// Field indexes of the add-task form.
const (
	fieldName = iota
	fieldDate
	fieldType
	fieldDuration
	fieldCount
)

var fieldLabels = [fieldCount]string{"Task name", "Date", "Type", "Duration"}

// AddTaskModel is the form for logging a new task.
type AddTaskModel struct {
	svc    Service
	inputs []textinput.Model
	focus  int
	saving bool
	notice string // success line shown after a save
	errMsg string
	width  int
	height int
}

// NewAddTaskModel creates the form with the date field set to today.
func NewAddTaskModel(svc Service, now time.Time) AddTaskModel {
	placeholders := [fieldCount]string{
		"e.g. Write report",
		DateLayout,
		"e.g. Work, Study, Exercise",
		"e.g. 45 minutes, 1.5 hours",
	}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 128
		ti.Width = 40
		inputs[i] = ti
	}
	inputs[fieldDate].SetValue(now.Format(DateLayout))
	inputs[fieldName].Focus()

	return AddTaskModel{svc: svc, inputs: inputs}
}

// Init implements tea.Model.
func (m AddTaskModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m AddTaskModel) Update(msg tea.Msg) (AddTaskModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case msgs.TaskAddedMsg:
		m.saving = false
		if msg.Err != nil {
			m.notice = ""
			m.errMsg = errorText(msg.Err)
			return m, nil
		}
		m.errMsg = ""
		m.notice = "Task added & model updated"
		m.reset()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m, func() tea.Msg { return msgs.GoToHomeMsg{} }
		case "tab", "down":
			m.setFocus(m.focus + 1)
			return m, nil
		case "shift+tab", "up":
			m.setFocus(m.focus - 1)
			return m, nil
		case "ctrl+s":
			return m.submit()
		case "enter":
			if m.focus == fieldCount-1 {
				return m.submit()
			}
			m.setFocus(m.focus + 1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// submit validates the form and saves it in the background.
func (m AddTaskModel) submit() (AddTaskModel, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	in := m.Input()
	m.notice = ""
	if err := in.Validate(); err != nil {
		m.errMsg = errorText(err)
		return m, nil
	}

	m.errMsg = ""
	m.saving = true
	svc := m.svc
	return m, func() tea.Msg {
		return msgs.TaskAddedMsg{Name: in.Name, Err: svc.AddTask(in)}
	}
}

// reset clears everything except the date so several tasks from the same
// day can be logged in a row.
func (m *AddTaskModel) reset() {
	for i := range m.inputs {
		if i != fieldDate {
			m.inputs[i].SetValue("")
		}
	}
	m.setFocus(fieldName)
}

func (m *AddTaskModel) setFocus(i int) {
	i = (i + fieldCount) % fieldCount
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// errorText turns an error into a one-line message for the form.
func errorText(err error) string {
	if errors.Is(err, tracker.ErrMissingField) {
		return "Please fill all fields"
	}
	s := err.Error()
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// View implements tea.Model.
func (m AddTaskModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder

	title := styles.TitleStyle.Render("Add Task")

	var lines []string
	for i, in := range m.inputs {
		label := fieldLabels[i]
		if i == m.focus {
			label = styles.SelectedStyle.Render("> " + label)
		} else {
			label = styles.SubtleStyle.Render("  " + label)
		}
		lines = append(lines, label, "  "+in.View(), "")
	}

	switch {
	case m.saving:
		lines = append(lines, styles.SubtleStyle.Render("Saving..."))
	case m.errMsg != "":
		lines = append(lines, styles.ErrorStyle.Render(m.errMsg))
	case m.notice != "":
		lines = append(lines, styles.DoneStyle.Render("✓ "+m.notice))
	default:
		lines = append(lines, "")
	}

	form := strings.Join(lines, "\n")

	contentHeight := 2 + len(lines)
	availableHeight := m.height - 1
	topPadding := max(0, (availableHeight-contentHeight)/3)

	b.WriteString(strings.Repeat("\n", topPadding))
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, form))
	b.WriteString(strings.Repeat("\n", max(0, availableHeight-topPadding-contentHeight)))

	b.WriteString(components.NewStatusBar().Render(m.width, []components.HelpItem{
		{Key: "tab", Desc: "Next field"},
		{Key: "enter", Desc: "Next/Save"},
		{Key: "ctrl+s", Desc: "Save"},
		{Key: "esc", Desc: "Back"},
	}))

	return b.String()
}

// SetSize updates the model dimensions.
func (m *AddTaskModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Input returns the current form values as a tracker input.
func (m AddTaskModel) Input() tracker.NewTask {
	return tracker.NewTask{
		Name:     m.inputs[fieldName].Value(),
		Date:     m.inputs[fieldDate].Value(),
		Type:     m.inputs[fieldType].Value(),
		Duration: m.inputs[fieldDuration].Value(),
	}
}

// Focus returns the index of the focused field.
func (m AddTaskModel) Focus() int {
	return m.focus
}

// Error returns the current error message.
func (m AddTaskModel) Error() string {
	return m.errMsg
}

// Notice returns the current success message.
func (m AddTaskModel) Notice() string {
	return m.notice
}
