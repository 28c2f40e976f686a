// Package task defines the task record and the stores that persist it.
package task

import "errors"

// Task is a single logged task. Identity is positional: a task is addressed by
// its 0-based index in the store.
type Task struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Type     string `json:"type"`
	Duration string `json:"duration"`
	Status   string `json:"status"`
}

// Task status constants
const (
	StatusPending = "Pending"
	StatusDone    = "Done"
)

var (
	// ErrIndexOutOfRange is returned when a positional index does not address a task.
	ErrIndexOutOfRange = errors.New("task index out of range")

	// ErrStorage wraps failures of the backing medium.
	ErrStorage = errors.New("task storage error")
)

// IsDone reports whether the task has been marked done.
func (t Task) IsDone() bool {
	return t.Status == StatusDone
}
