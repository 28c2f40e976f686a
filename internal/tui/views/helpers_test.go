package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pablasso/tempo/internal/analysis"
	"github.com/pablasso/tempo/internal/model"
	"github.com/pablasso/tempo/internal/task"
	"github.com/pablasso/tempo/internal/tracker"
)

// sampleTasks is a small log: Monday/Work is productive, Tuesday/Exercise is not.
func sampleTasks() []task.Task {
	return []task.Task{
		{Name: "Write report", Date: "2024-01-01", Type: "Work", Duration: "90 minutes", Status: task.StatusPending},
		{Name: "Walk", Date: "2024-01-02", Type: "Exercise", Duration: "20 minutes", Status: task.StatusDone},
	}
}

func newTestService(t *testing.T, tasks ...task.Task) (*tracker.Tracker, *task.MemoryStore) {
	t.Helper()
	store := task.NewMemoryStore(tasks...)
	return tracker.New(store, nil), store
}

// brokenService fails every call with a storage error.
type brokenService struct{}

func (brokenService) AddTask(tracker.NewTask) error       { return task.ErrStorage }
func (brokenService) Tasks() ([]task.Task, error)         { return nil, task.ErrStorage }
func (brokenService) MarkDone(int) error                  { return task.ErrStorage }
func (brokenService) Stats() (analysis.Stats, error)      { return analysis.Stats{}, task.ErrStorage }
func (brokenService) Analytics() (analysis.Report, error) { return analysis.Report{}, task.ErrStorage }
func (brokenService) Retrain() (*model.Predictor, error)  { return nil, task.ErrStorage }

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
