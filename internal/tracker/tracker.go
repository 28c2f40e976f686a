// Package tracker ties the task store to the productivity model. Every
// surface (TUI and CLI) goes through a Tracker so the retrain policy lives in
// one place: the model is refit from the whole log after each added task and
// each time a prediction is requested.
package tracker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pablasso/tempo/internal/analysis"
	"github.com/pablasso/tempo/internal/model"
	"github.com/pablasso/tempo/internal/task"
)

// ErrMissingField is returned when a new task has an empty field.
var ErrMissingField = errors.New("please fill all fields")

// ErrInvalidField is returned when a field holds a carriage return, which the
// CSV log cannot store verbatim.
var ErrInvalidField = errors.New("invalid field")

// Tracker is the application service.
type Tracker struct {
	store task.Store
	log   *zap.Logger
}

// New creates a Tracker. A nil logger disables logging.
func New(store task.Store, log *zap.Logger) *Tracker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker{store: store, log: log}
}

// NewTask is the user input for AddTask.
type NewTask struct {
	Name     string
	Date     string
	Type     string
	Duration string
}

// Validate reports the first empty field, or a field with a carriage return.
// Values are only trimmed for the check.
func (n NewTask) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", n.Name},
		{"date", n.Date},
		{"type", n.Type},
		{"duration", n.Duration},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is empty", ErrMissingField, f.name)
		}
		if strings.ContainsRune(f.value, '\r') {
			return fmt.Errorf("%w: %s contains a carriage return", ErrInvalidField, f.name)
		}
	}
	return nil
}

// AddTask validates and stores a new pending task, then retrains the model.
// A retrain that finds no usable rows is logged, not returned: the task is saved.
func (t *Tracker) AddTask(in NewTask) error {
	if err := in.Validate(); err != nil {
		return err
	}

	err := t.store.Append(task.Task{
		Name:     in.Name,
		Date:     in.Date,
		Type:     in.Type,
		Duration: in.Duration,
		Status:   task.StatusPending,
	})
	if err != nil {
		t.log.Error("failed to append task", zap.Error(err))
		return fmt.Errorf("failed to save task: %w", err)
	}
	t.log.Info("task added",
		zap.String("type", in.Type),
		zap.String("date", in.Date),
		zap.Float64("minutes", model.DurationMinutes(in.Duration)),
	)

	if _, err := t.Retrain(); err != nil {
		if errors.Is(err, model.ErrInsufficientData) {
			return nil
		}
		return err
	}
	return nil
}

// Tasks returns every task in stored order.
func (t *Tracker) Tasks() ([]task.Task, error) {
	tasks, err := t.store.ReadAll()
	if err != nil {
		t.log.Error("failed to read tasks", zap.Error(err))
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	return tasks, nil
}

// MarkDone marks the task at the 0-based index as done.
func (t *Tracker) MarkDone(index int) error {
	if err := task.MarkDone(t.store, index); err != nil {
		t.log.Warn("mark done rejected", zap.Int("index", index), zap.Error(err))
		return err
	}
	t.log.Info("task marked done", zap.Int("index", index))
	return nil
}

// Stats returns the aggregate counters.
func (t *Tracker) Stats() (analysis.Stats, error) {
	tasks, err := t.Tasks()
	if err != nil {
		return analysis.Stats{}, err
	}
	return analysis.Summarize(tasks), nil
}

// Analytics returns the chart series.
func (t *Tracker) Analytics() (analysis.Report, error) {
	tasks, err := t.Tasks()
	if err != nil {
		return analysis.Report{}, err
	}
	return analysis.Analyze(tasks), nil
}

// Retrain fits a fresh predictor from the entire task log.
func (t *Tracker) Retrain() (*model.Predictor, error) {
	runID := uuid.NewString()
	log := t.log.With(zap.String("run_id", runID))

	tasks, err := t.Tasks()
	if err != nil {
		return nil, err
	}

	p, err := model.Train(tasks)
	if err != nil {
		if errors.Is(err, model.ErrInsufficientData) {
			log.Warn("retrain skipped", zap.Int("tasks", len(tasks)), zap.Error(err))
		} else {
			log.Error("retrain failed", zap.Error(err))
		}
		return nil, err
	}

	log.Info("model retrained",
		zap.Int("tasks", len(tasks)),
		zap.Int("rows", p.Rows()),
		zap.Int("dropped", p.Dropped()),
		zap.Int("days", len(p.Days())),
		zap.Int("types", len(p.Types())),
		zap.Int("depth", p.Tree().Depth()),
		zap.Int("leaves", p.Tree().Leaves()),
		zap.Int64("seed", model.Seed),
	)
	return p, nil
}

// Predict retrains and classifies a (day, type) pair.
func (t *Tracker) Predict(day, typ string) (bool, error) {
	p, err := t.Retrain()
	if err != nil {
		return false, err
	}
	productive, err := p.Predict(day, typ)
	if err != nil {
		t.log.Warn("prediction rejected", zap.String("day", day), zap.String("type", typ), zap.Error(err))
		return false, err
	}
	t.log.Info("prediction", zap.String("day", day), zap.String("type", typ), zap.Bool("productive", productive))
	return productive, nil
}
