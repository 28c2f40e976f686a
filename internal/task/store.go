package task

import (
	"fmt"
	"sync"
)

// Store persists tasks in insertion order.
type Store interface {
	// Append adds a task with status Pending.
	Append(t Task) error
	// ReadAll returns every task in stored order. An empty store yields an empty slice.
	ReadAll() ([]Task, error)
	// Update replaces the task at index.
	Update(index int, t Task) error
}

// MarkDone sets the task at index to Done. Marking a task that is already
// done is a no-op. An invalid index leaves the store untouched.
func MarkDone(s Store, index int) error {
	tasks, err := s.ReadAll()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(tasks) {
		return fmt.Errorf("%w: %d (have %d tasks)", ErrIndexOutOfRange, index, len(tasks))
	}

	t := tasks[index]
	if t.IsDone() {
		return nil
	}
	t.Status = StatusDone
	return s.Update(index, t)
}

// MemoryStore keeps tasks in memory. It is used by tests and has no persistence.
type MemoryStore struct {
	mu    sync.Mutex
	tasks []Task
}

// NewMemoryStore creates a MemoryStore seeded with the given tasks.
func NewMemoryStore(seed ...Task) *MemoryStore {
	tasks := make([]Task, len(seed))
	copy(tasks, seed)
	return &MemoryStore{tasks: tasks}
}

// Append implements Store.
func (s *MemoryStore) Append(t Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.Status = StatusPending
	s.tasks = append(s.tasks, t)
	return nil
}

// ReadAll implements Store.
func (s *MemoryStore) ReadAll() ([]Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

// Update implements Store.
func (s *MemoryStore) Update(index int, t Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.tasks) {
		return fmt.Errorf("%w: %d (have %d tasks)", ErrIndexOutOfRange, index, len(s.tasks))
	}
	s.tasks[index] = t
	return nil
}
