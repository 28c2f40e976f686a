package views

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pablasso/tempo/internal/task"
	"github.com/pablasso/tempo/internal/tui/msgs"
)

var testNow = time.Date(2024, time.January, 1, 9, 30, 0, 0, time.UTC)

// typeInto types text into the focused field and moves to the next one.
func typeInto(m AddTaskModel, text string) AddTaskModel {
	if text != "" {
		m, _ = m.Update(keyRunes(text))
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	return m
}

func TestNewAddTaskModel_Defaults(t *testing.T) {
	svc, _ := newTestService(t)
	m := NewAddTaskModel(svc, testNow)

	if m.Focus() != fieldName {
		t.Errorf("expected focus on name, got %d", m.Focus())
	}
	in := m.Input()
	if in.Date != "2024-01-01" {
		t.Errorf("expected date prefilled with today, got %q", in.Date)
	}
	if in.Name != "" || in.Type != "" || in.Duration != "" {
		t.Errorf("expected other fields empty, got %+v", in)
	}
	if m.Init() == nil {
		t.Error("expected Init to start the cursor blink")
	}
}

func TestAddTaskModel_FocusCycling(t *testing.T) {
	svc, _ := newTestService(t)
	m := NewAddTaskModel(svc, testNow)

	tests := []struct {
		key  tea.KeyMsg
		want int
	}{
		{tea.KeyMsg{Type: tea.KeyTab}, fieldDate},
		{tea.KeyMsg{Type: tea.KeyDown}, fieldType},
		{tea.KeyMsg{Type: tea.KeyEnter}, fieldDuration},
		{tea.KeyMsg{Type: tea.KeyTab}, fieldName},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, fieldDuration},
		{tea.KeyMsg{Type: tea.KeyUp}, fieldType},
	}
	for i, tt := range tests {
		m, _ = m.Update(tt.key)
		if m.Focus() != tt.want {
			t.Fatalf("step %d (%s): expected focus %d, got %d", i, tt.key, tt.want, m.Focus())
		}
	}
}

func TestAddTaskModel_Submit_Success(t *testing.T) {
	svc, store := newTestService(t)
	m := NewAddTaskModel(svc, testNow)
	m.SetSize(80, 24)

	m = typeInto(m, "Write report")
	m = typeInto(m, "")
	m = typeInto(m, "Work")
	m, _ = m.Update(keyRunes("90 minutes"))

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected save command on enter in the last field")
	}
	if !strings.Contains(m.View(), "Saving...") {
		t.Error("expected saving indicator while the command runs")
	}

	msg, ok := cmd().(msgs.TaskAddedMsg)
	if !ok {
		t.Fatalf("expected TaskAddedMsg, got %T", msg)
	}
	if msg.Err != nil || msg.Name != "Write report" {
		t.Fatalf("unexpected result: %+v", msg)
	}

	tasks, _ := store.ReadAll()
	want := task.Task{Name: "Write report", Date: "2024-01-01", Type: "Work", Duration: "90 minutes", Status: task.StatusPending}
	if len(tasks) != 1 || tasks[0] != want {
		t.Fatalf("expected %+v stored, got %+v", want, tasks)
	}

	m, _ = m.Update(msg)
	if m.Notice() != "Task added & model updated" {
		t.Errorf("unexpected notice %q", m.Notice())
	}
	if !strings.Contains(m.View(), "Task added & model updated") {
		t.Error("expected notice in view")
	}

	in := m.Input()
	if in.Name != "" || in.Type != "" || in.Duration != "" {
		t.Errorf("expected form cleared, got %+v", in)
	}
	if in.Date != "2024-01-01" {
		t.Errorf("expected date kept, got %q", in.Date)
	}
	if m.Focus() != fieldName {
		t.Errorf("expected focus back on name, got %d", m.Focus())
	}
}

func TestAddTaskModel_Submit_CtrlS(t *testing.T) {
	svc, store := newTestService(t)
	m := NewAddTaskModel(svc, testNow)

	m = typeInto(m, "Read")
	m = typeInto(m, "")
	m = typeInto(m, "Study")
	m, _ = m.Update(keyRunes("1 hour"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatal("expected save command from ctrl+s")
	}
	cmd()

	tasks, _ := store.ReadAll()
	if len(tasks) != 1 || tasks[0].Duration != "1 hour" {
		t.Fatalf("unexpected tasks %+v", tasks)
	}
}

func TestAddTaskModel_Submit_MissingField(t *testing.T) {
	svc, store := newTestService(t)
	m := NewAddTaskModel(svc, testNow)
	m.SetSize(80, 24)

	m = typeInto(m, "Write report")
	m = typeInto(m, "")
	m = typeInto(m, "   ")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("expected no save command when a field is empty")
	}
	if m.Error() != "Please fill all fields" {
		t.Errorf("unexpected error %q", m.Error())
	}
	if !strings.Contains(m.View(), "Please fill all fields") {
		t.Error("expected error in view")
	}

	tasks, _ := store.ReadAll()
	if len(tasks) != 0 {
		t.Errorf("expected nothing stored, got %d tasks", len(tasks))
	}
}

func TestAddTaskModel_Submit_StorageError(t *testing.T) {
	m := NewAddTaskModel(brokenService{}, testNow)

	m = typeInto(m, "Write report")
	m = typeInto(m, "")
	m = typeInto(m, "Work")
	m, _ = m.Update(keyRunes("90 minutes"))

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected save command")
	}
	msg := cmd().(msgs.TaskAddedMsg)
	if !errors.Is(msg.Err, task.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", msg.Err)
	}

	m, _ = m.Update(msg)
	if m.Error() == "" {
		t.Error("expected error to be shown")
	}
	if m.Notice() != "" {
		t.Errorf("expected no notice, got %q", m.Notice())
	}
	if m.Input().Name != "Write report" {
		t.Error("expected input kept after a failed save")
	}
}

func TestAddTaskModel_Esc(t *testing.T) {
	svc, _ := newTestService(t)
	_, cmd := NewAddTaskModel(svc, testNow).Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected command from esc")
	}
	if _, ok := cmd().(msgs.GoToHomeMsg); !ok {
		t.Error("expected GoToHomeMsg")
	}
}

func TestAddTaskModel_View(t *testing.T) {
	svc, _ := newTestService(t)
	m := NewAddTaskModel(svc, testNow)
	if m.View() != "" {
		t.Error("expected empty view before size is known")
	}

	m.SetSize(80, 24)
	view := m.View()
	for _, want := range []string{"Add Task", "Task name", "Date", "Type", "Duration", "2024-01-01"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}
