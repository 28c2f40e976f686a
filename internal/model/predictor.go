package model

import (
	"errors"
	"fmt"

	"github.com/pablasso/tempo/internal/task"
)

var (
	// ErrInsufficientData is returned when no task survives feature derivation.
	ErrInsufficientData = errors.New("insufficient data: no tasks with a valid date to learn from")

	// ErrUnknownCategory is matched by every UnknownCategoryError.
	ErrUnknownCategory = errors.New("unknown category")
)

// UnknownCategoryError reports a prediction input that the model never saw during training.
type UnknownCategoryError struct {
	Feature string // "day" or "type"
	Value   string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown %s %q: not present in training data", e.Feature, e.Value)
}

// Is lets errors.Is(err, ErrUnknownCategory) match.
func (e *UnknownCategoryError) Is(target error) bool {
	return target == ErrUnknownCategory
}

// Predictor is a classifier fitted on one training pass, together with the
// encoders that produced its feature codes.
type Predictor struct {
	tree    *Tree
	days    *Encoder
	types   *Encoder
	rows    int
	dropped int
}

// Train derives features from the full task log and fits a new classifier.
// Every call is a full retrain; cost is linear in the number of tasks per
// tree level, which is fine for a personal log.
func Train(tasks []task.Task) (*Predictor, error) {
	ds := Derive(tasks)
	if len(ds.Rows) == 0 {
		return nil, ErrInsufficientData
	}

	x, y := ds.Features()
	tree, err := FitTree(x, y, Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to fit classifier: %w", err)
	}

	return &Predictor{
		tree:    tree,
		days:    ds.Days,
		types:   ds.Types,
		rows:    len(ds.Rows),
		dropped: ds.Dropped,
	}, nil
}

// Predict reports whether a task of type typ on weekday day is likely productive.
func (p *Predictor) Predict(day, typ string) (bool, error) {
	dayCode, ok := p.days.Encode(day)
	if !ok {
		return false, &UnknownCategoryError{Feature: "day", Value: day}
	}
	typeCode, ok := p.types.Encode(typ)
	if !ok {
		return false, &UnknownCategoryError{Feature: "type", Value: typ}
	}
	return p.tree.Predict([]int{dayCode, typeCode})
}

// Days returns the weekday names seen in training, in code order.
func (p *Predictor) Days() []string {
	return p.days.Classes()
}

// Types returns the task types seen in training, in code order.
func (p *Predictor) Types() []string {
	return p.types.Classes()
}

// Rows returns the number of training rows used.
func (p *Predictor) Rows() int {
	return p.rows
}

// Dropped returns the number of tasks skipped for an unparseable date.
func (p *Predictor) Dropped() int {
	return p.dropped
}

// Tree returns the fitted classifier.
func (p *Predictor) Tree() *Tree {
	return p.tree
}
