package task

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Header is the first row of every task log.
var Header = []string{"Task Name", "Date", "Type", "Duration", "Status"}

// CSVStore persists tasks to a flat CSV file with one row per task.
type CSVStore struct {
	path string
	mu   sync.Mutex
}

// OpenCSVStore opens the task log at path, creating it header-only if absent.
func OpenCSVStore(path string) (*CSVStore, error) {
	s := &CSVStore{path: path}

	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return nil, fmt.Errorf("%w: %s is a directory", ErrStorage, path)
	case err == nil && info.Size() > 0:
		return s, nil
	case err != nil && !os.IsNotExist(err):
		return nil, fmt.Errorf("%w: failed to stat %s: %w", ErrStorage, path, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("%w: failed to create %s: %w", ErrStorage, dir, err)
		}
	}
	if err := s.writeAll(nil); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the location of the task log.
func (s *CSVStore) Path() string {
	return s.path
}

// Append implements Store. The row is appended in place; existing rows are not rewritten.
func (s *CSVStore) Append(t Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.Status = StatusPending

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(toRecord(t)); err != nil {
		return fmt.Errorf("%w: failed to encode task: %w", ErrStorage, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: failed to encode task: %w", ErrStorage, err)
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("%w: failed to open %s: %w", ErrStorage, s.path, err)
	}
	defer f.Close()

	terminated, err := endsWithNewline(f)
	if err != nil {
		return fmt.Errorf("%w: failed to read %s: %w", ErrStorage, s.path, err)
	}
	row := buf.Bytes()
	if !terminated {
		row = append([]byte{'\n'}, row...)
	}

	// A single write keeps a failed append from leaving a half-written row behind
	// in the common case.
	if _, err := f.Write(row); err != nil {
		return fmt.Errorf("%w: failed to append to %s: %w", ErrStorage, s.path, err)
	}
	return nil
}

// ReadAll implements Store.
func (s *CSVStore) ReadAll() ([]Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readAll()
}

// Update implements Store. The whole log is rewritten atomically.
func (s *CSVStore) Update(index int, t Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.readAll()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(tasks) {
		return fmt.Errorf("%w: %d (have %d tasks)", ErrIndexOutOfRange, index, len(tasks))
	}
	tasks[index] = t
	return s.writeAll(tasks)
}

func (s *CSVStore) readAll() ([]Task, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Task{}, nil
		}
		return nil, fmt.Errorf("%w: failed to open %s: %w", ErrStorage, s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	tasks := []Task{}
	first := true
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrStorage, s.path, err)
		}
		if first {
			first = false
			if isHeader(record) {
				continue
			}
		}
		tasks = append(tasks, fromRecord(record))
	}
	return tasks, nil
}

// writeAll replaces the log with the header followed by tasks.
// Uses a temp file + rename so a failed write never truncates the existing log.
func (s *CSVStore) writeAll(tasks []Task) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("%w: failed to encode header: %w", ErrStorage, err)
	}
	for _, t := range tasks {
		if err := w.Write(toRecord(t)); err != nil {
			return fmt.Errorf("%w: failed to encode task: %w", ErrStorage, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: failed to encode tasks: %w", ErrStorage, err)
	}

	tmpPath := fmt.Sprintf("%s.tmp.%d", s.path, os.Getpid())
	if err := os.WriteFile(tmpPath, buf.Bytes(), 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to write temp file: %w", ErrStorage, err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to rename temp file: %w", ErrStorage, err)
	}
	return nil
}

// endsWithNewline reports whether the file is empty or its last byte is '\n'.
// Hand-edited logs often lack the final newline.
func endsWithNewline(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return true, nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return false, err
	}
	return last[0] == '\n', nil
}

func isHeader(record []string) bool {
	if len(record) != len(Header) {
		return false
	}
	for i := range Header {
		if record[i] != Header[i] {
			return false
		}
	}
	return true
}

func toRecord(t Task) []string {
	return []string{t.Name, t.Date, t.Type, t.Duration, t.Status}
}

// fromRecord tolerates short rows, leaving missing columns empty.
func fromRecord(record []string) Task {
	field := func(i int) string {
		if i < len(record) {
			return record[i]
		}
		return ""
	}
	return Task{
		Name:     field(0),
		Date:     field(1),
		Type:     field(2),
		Duration: field(3),
		Status:   field(4),
	}
}
