package views

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/tempo/internal/model"
	"github.com/pablasso/tempo/internal/tui/components"
	"github.com/pablasso/tempo/internal/tui/msgs"
	"github.com/pablasso/tempo/internal/tui/styles"
)

// Verdict texts shown after a prediction.
const (
	VerdictProductive   = "This task is likely productive"
	VerdictUnproductive = "This task may be less productive"
)

const (
	selectDay = iota
	selectType
)

// PredictModel lets the user pick a known day and type and asks the
// freshly trained classifier for a verdict.
type PredictModel struct {
	svc       Service
	predictor *model.Predictor
	days      []string
	types     []string
	dayIdx    int
	typeIdx   int
	focus     int
	result    *msgs.PredictionMsg
	errMsg    string
	width     int
	height    int
}

// NewPredictModel creates a PredictModel. The model is retrained from the
// whole task log every time the view is entered.
func NewPredictModel(svc Service) PredictModel {
	m := PredictModel{svc: svc}
	m.retrain()
	return m
}

func (m *PredictModel) retrain() {
	m.result = nil
	p, err := m.svc.Retrain()
	if err != nil {
		m.predictor = nil
		m.days, m.types = nil, nil
		if errors.Is(err, model.ErrInsufficientData) {
			m.errMsg = "Not enough data to train the model yet. Add tasks with a valid date first."
		} else {
			m.errMsg = errorText(err)
		}
		return
	}
	m.errMsg = ""
	m.predictor = p
	m.days = p.Days()
	m.types = p.Types()
	m.dayIdx = min(m.dayIdx, len(m.days)-1)
	m.typeIdx = min(m.typeIdx, len(m.types)-1)
}

// Init implements tea.Model.
func (m PredictModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PredictModel) Update(msg tea.Msg) (PredictModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case msgs.PredictionMsg:
		if msg.Err != nil {
			m.result = nil
			m.errMsg = errorText(msg.Err)
			return m, nil
		}
		m.errMsg = ""
		m.result = &msg
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc", "q":
			return m, func() tea.Msg { return msgs.GoToHomeMsg{} }
		case "r":
			m.retrain()
			return m, nil
		}

		if m.predictor == nil {
			return m, nil
		}

		switch msg.String() {
		case "tab", "shift+tab", "up", "down", "k", "j":
			m.focus = 1 - m.focus
		case "right", "l":
			m.cycle(1)
		case "left", "h":
			m.cycle(-1)
		case "enter", "p":
			return m, m.predict()
		}
	}
	return m, nil
}

// cycle moves the focused selector by delta, wrapping around.
func (m *PredictModel) cycle(delta int) {
	m.result = nil
	if m.focus == selectDay {
		m.dayIdx = wrap(m.dayIdx+delta, len(m.days))
	} else {
		m.typeIdx = wrap(m.typeIdx+delta, len(m.types))
	}
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// predict classifies the selected pair.
func (m PredictModel) predict() tea.Cmd {
	p, day, typ := m.predictor, m.Day(), m.Type()
	return func() tea.Msg {
		productive, err := p.Predict(day, typ)
		return msgs.PredictionMsg{Day: day, Type: typ, Productive: productive, Err: err}
	}
}

// View implements tea.Model.
func (m PredictModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	lines := []string{styles.TitleStyle.Render("Predict Productivity")}

	if m.predictor == nil {
		lines = append(lines, styles.ErrorStyle.Render(m.errMsg))
	} else {
		lines = append(lines,
			m.renderSelector("Day", m.Day(), m.focus == selectDay),
			m.renderSelector("Type", m.Type(), m.focus == selectType),
			"",
		)
		switch {
		case m.errMsg != "":
			lines = append(lines, styles.ErrorStyle.Render(m.errMsg))
		case m.result != nil && m.result.Productive:
			lines = append(lines, styles.ProductiveStyle.Render("✓ "+VerdictProductive))
		case m.result != nil:
			lines = append(lines, styles.LessProductiveStyle.Render("! "+VerdictUnproductive))
		default:
			lines = append(lines, styles.SubtleStyle.Render("Press enter to predict"))
		}
		lines = append(lines, "", styles.SubtleStyle.Render(
			"Trained on "+pluralTasks(m.predictor.Rows())+", productive means 60+ minutes"))
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
		{Key: "tab", Desc: "Switch field"},
		{Key: "←→", Desc: "Change"},
		{Key: "enter", Desc: "Predict"},
		{Key: "r", Desc: "Retrain"},
		{Key: "esc", Desc: "Back"},
	}))
	return b.String()
}

func (m PredictModel) renderSelector(label, value string, focused bool) string {
	text := label + ":  ‹ " + value + " ›"
	if focused {
		return styles.SelectedStyle.Render(text)
	}
	return styles.SubtleStyle.Render(text)
}

func pluralTasks(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}

// SetSize updates the model dimensions.
func (m *PredictModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Day returns the selected day, or "" when the model is not trained.
func (m PredictModel) Day() string {
	if len(m.days) == 0 {
		return ""
	}
	return m.days[m.dayIdx]
}

// Type returns the selected type, or "" when the model is not trained.
func (m PredictModel) Type() string {
	if len(m.types) == 0 {
		return ""
	}
	return m.types[m.typeIdx]
}

// Days returns the day choices offered by the selector.
func (m PredictModel) Days() []string {
	return m.days
}

// Types returns the type choices offered by the selector.
func (m PredictModel) Types() []string {
	return m.types
}

// Ready reports whether a trained model is available.
func (m PredictModel) Ready() bool {
	return m.predictor != nil
}

// Result returns the last verdict, if any.
func (m PredictModel) Result() (msgs.PredictionMsg, bool) {
	if m.result == nil {
		return msgs.PredictionMsg{}, false
	}
	return *m.result, true
}

// Error returns the current error message.
func (m PredictModel) Error() string {
	return m.errMsg
}
