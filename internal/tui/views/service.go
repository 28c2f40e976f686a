package views

import (
	"github.com/pablasso/tempo/internal/analysis"
	"github.com/pablasso/tempo/internal/model"
	"github.com/pablasso/tempo/internal/task"
	"github.com/pablasso/tempo/internal/tracker"
)

// Service is the subset of *tracker.Tracker the views depend on.
type Service interface {
	AddTask(in tracker.NewTask) error
	Tasks() ([]task.Task, error)
	MarkDone(index int) error
	Stats() (analysis.Stats, error)
	Analytics() (analysis.Report, error)
	Retrain() (*model.Predictor, error)
}

var _ Service = (*tracker.Tracker)(nil)
