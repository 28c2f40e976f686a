package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pablasso/tempo/internal/task"
	"github.com/pablasso/tempo/internal/tracker"
	"github.com/pablasso/tempo/internal/tui/msgs"
)

// createTestModel creates a Model backed by a CSV store in a temp dir.
func createTestModel(t *testing.T, seed ...task.Task) (Model, *task.CSVStore) {
	t.Helper()

	store, err := task.OpenCSVStore(filepath.Join(t.TempDir(), "tasks.csv"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	for _, tk := range seed {
		if err := store.Append(tk); err != nil {
			t.Fatalf("failed to seed store: %v", err)
		}
	}

	m := initialModel(tracker.New(store, nil))
	m.now = func() time.Time { return time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC) }
	return m, store
}

// sendKey simulates sending a key press to the model.
func sendKey(t *testing.T, m *Model, key string) tea.Cmd {
	t.Helper()

	var keyMsg tea.KeyMsg
	switch key {
	case "up":
		keyMsg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		keyMsg = tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		keyMsg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		keyMsg = tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		keyMsg = tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		keyMsg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		keyMsg = tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		keyMsg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		keyMsg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}

	newModel, cmd := m.Update(keyMsg)
	*m = newModel.(Model)
	return cmd
}

// sendWindowSize simulates a window resize event.
func sendWindowSize(t *testing.T, m *Model, width, height int) tea.Cmd {
	t.Helper()

	msg := tea.WindowSizeMsg{Width: width, Height: height}
	newModel, cmd := m.Update(msg)
	*m = newModel.(Model)
	return cmd
}

// processCmd processes a command and returns the resulting message.
func processCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// deliver runs cmd and feeds its message back into the model.
func deliver(t *testing.T, m *Model, cmd tea.Cmd) tea.Msg {
	t.Helper()

	msg := processCmd(cmd)
	if msg == nil {
		t.Fatal("expected a message from command")
	}
	newModel, _ := m.Update(msg)
	*m = newModel.(Model)
	return msg
}

// TestAddTaskFlow: Home → AddTask → save → Home
func TestAddTaskFlow(t *testing.T) {
	m, store := createTestModel(t)
	sendWindowSize(t, &m, 80, 24)

	msg := deliver(t, &m, sendKey(t, &m, "a"))
	if _, ok := msg.(msgs.GoToAddTaskMsg); !ok {
		t.Fatalf("expected GoToAddTaskMsg, got %T", msg)
	}
	if m.currentView != ViewAddTask {
		t.Fatalf("expected ViewAddTask, got %d", m.currentView)
	}
	if !strings.Contains(m.View(), "2024-01-01") {
		t.Error("expected date field prefilled with today")
	}

	sendKey(t, &m, "Write report")
	sendKey(t, &m, "tab")
	sendKey(t, &m, "tab")
	sendKey(t, &m, "Work")
	sendKey(t, &m, "tab")
	sendKey(t, &m, "90 minutes")

	msg = deliver(t, &m, sendKey(t, &m, "enter"))
	added, ok := msg.(msgs.TaskAddedMsg)
	if !ok {
		t.Fatalf("expected TaskAddedMsg, got %T", msg)
	}
	if added.Err != nil {
		t.Fatalf("unexpected error: %v", added.Err)
	}
	if !strings.Contains(m.View(), "Task added & model updated") {
		t.Error("expected success notice")
	}

	tasks, err := store.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 || tasks[0].Name != "Write report" || tasks[0].Status != task.StatusPending {
		t.Fatalf("unexpected stored tasks %+v", tasks)
	}

	deliver(t, &m, sendKey(t, &m, "esc"))
	if m.currentView != ViewHome {
		t.Errorf("expected ViewHome after esc, got %d", m.currentView)
	}
}

// TestMarkDoneFlow: Home → TaskList → mark done → counters update
func TestMarkDoneFlow(t *testing.T) {
	m, store := createTestModel(t,
		task.Task{Name: "Write report", Date: "2024-01-01", Type: "Work", Duration: "90 minutes"},
		task.Task{Name: "Walk", Date: "2024-01-02", Type: "Exercise", Duration: "20 minutes"},
	)
	sendWindowSize(t, &m, 100, 30)

	deliver(t, &m, sendKey(t, &m, "t"))
	if m.currentView != ViewTaskList {
		t.Fatalf("expected ViewTaskList, got %d", m.currentView)
	}
	if !strings.Contains(m.View(), "Pending 2") {
		t.Error("expected two pending tasks")
	}

	sendKey(t, &m, "down")
	msg := deliver(t, &m, sendKey(t, &m, "enter"))
	done, ok := msg.(msgs.TaskMarkedDoneMsg)
	if !ok || done.Err != nil || done.Index != 1 {
		t.Fatalf("unexpected mark-done result %+v", msg)
	}

	view := m.View()
	if !strings.Contains(view, "Done 1") || !strings.Contains(view, "50%") {
		t.Error("expected counters refreshed after mark done")
	}

	tasks, _ := store.ReadAll()
	if tasks[0].IsDone() || !tasks[1].IsDone() {
		t.Errorf("expected only the second task done, got %+v", tasks)
	}
}

// TestPredictFlow: Home → Predict → verdict
func TestPredictFlow(t *testing.T) {
	m, _ := createTestModel(t,
		task.Task{Name: "Write report", Date: "2024-01-01", Type: "Work", Duration: "90 minutes"},
		task.Task{Name: "Walk", Date: "2024-01-02", Type: "Exercise", Duration: "20 minutes"},
	)
	sendWindowSize(t, &m, 80, 24)

	deliver(t, &m, sendKey(t, &m, "p"))
	if m.currentView != ViewPredict {
		t.Fatalf("expected ViewPredict, got %d", m.currentView)
	}

	// Monday is selected; move the type selector to Work.
	sendKey(t, &m, "tab")
	sendKey(t, &m, "right")
	deliver(t, &m, sendKey(t, &m, "enter"))

	if !strings.Contains(m.View(), "likely productive") {
		t.Error("expected productive verdict for Monday/Work")
	}
}

// TestAnalyticsFlow: Home → Analytics → switch chart → Home
func TestAnalyticsFlow(t *testing.T) {
	m, _ := createTestModel(t,
		task.Task{Name: "Write report", Date: "2024-01-01", Type: "Work", Duration: "90 minutes"},
	)
	sendWindowSize(t, &m, 80, 24)

	deliver(t, &m, sendKey(t, &m, "s"))
	if m.currentView != ViewAnalytics {
		t.Fatalf("expected ViewAnalytics, got %d", m.currentView)
	}
	if !strings.Contains(m.View(), "Monday") {
		t.Error("expected by-day chart")
	}

	sendKey(t, &m, "right")
	sendKey(t, &m, "right")
	if !strings.Contains(m.View(), "90.0 min") {
		t.Error("expected mean duration chart")
	}

	deliver(t, &m, sendKey(t, &m, "q"))
	if m.currentView != ViewHome {
		t.Errorf("expected ViewHome, got %d", m.currentView)
	}
}

// TestWindowResize tests that layout adapts to size changes.
func TestWindowResize(t *testing.T) {
	t.Run("Layout adapts to size changes", func(t *testing.T) {
		m, _ := createTestModel(t)

		sendWindowSize(t, &m, 80, 24)
		view1 := m.View()
		if view1 == "" {
			t.Error("expected non-empty view at 80x24")
		}

		sendWindowSize(t, &m, 120, 40)
		view2 := m.View()
		if view2 == "" {
			t.Error("expected non-empty view at 120x40")
		}
		if view1 == view2 {
			t.Error("expected views to differ for different sizes")
		}
	})

	t.Run("Minimum size warning appears", func(t *testing.T) {
		m, _ := createTestModel(t)

		sendWindowSize(t, &m, MinTerminalWidth-1, MinTerminalHeight)
		if !strings.Contains(m.View(), "Terminal too small") {
			t.Error("expected 'Terminal too small' warning for width below minimum")
		}

		sendWindowSize(t, &m, MinTerminalWidth, MinTerminalHeight)
		if strings.Contains(m.View(), "Terminal too small") {
			t.Error("should NOT show warning at exactly minimum size")
		}
	})

	t.Run("Views entered before a resize get the current size", func(t *testing.T) {
		m, _ := createTestModel(t)
		sendWindowSize(t, &m, 80, 24)

		for _, key := range []string{"a", "t", "s", "p"} {
			deliver(t, &m, sendKey(t, &m, key))
			if m.View() == "" {
				t.Errorf("expected non-empty view after %q", key)
			}
			sendWindowSize(t, &m, 100, 40)
			if m.View() == "" {
				t.Errorf("expected non-empty view after resize in %q", key)
			}
			deliver(t, &m, sendKey(t, &m, "esc"))
			if m.currentView != ViewHome {
				t.Fatalf("expected ViewHome after esc from %q, got %d", key, m.currentView)
			}
		}
	})
}

func TestQuitFromHome(t *testing.T) {
	m, _ := createTestModel(t)
	sendWindowSize(t, &m, 80, 24)

	if _, ok := processCmd(sendKey(t, &m, "q")).(tea.QuitMsg); !ok {
		t.Error("expected quit from home")
	}
	if _, ok := processCmd(sendKey(t, &m, "ctrl+c")).(tea.QuitMsg); !ok {
		t.Error("expected quit on ctrl+c")
	}
}
