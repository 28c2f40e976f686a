package model

import (
	"errors"
	"reflect"
	"testing"

	"github.com/pablasso/tempo/internal/task"
)

func scenarioTasks() []task.Task {
	return []task.Task{
		{Name: "Write report", Date: "2024-01-01", Type: "Work", Duration: "90 minutes", Status: task.StatusPending},
		{Name: "Walk", Date: "2024-01-02", Type: "Exercise", Duration: "20 minutes", Status: task.StatusPending},
	}
}

func TestTrain_EndToEndScenario(t *testing.T) {
	p, err := Train(scenarioTasks())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Rows() != 2 {
		t.Errorf("expected 2 training rows, got %d", p.Rows())
	}
	if got := p.Days(); !reflect.DeepEqual(got, []string{"Monday", "Tuesday"}) {
		t.Errorf("Days() = %v", got)
	}
	if got := p.Types(); !reflect.DeepEqual(got, []string{"Exercise", "Work"}) {
		t.Errorf("Types() = %v", got)
	}

	productive, err := p.Predict("Monday", "Work")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !productive {
		t.Error("expected (Monday, Work) to be productive")
	}

	productive, err = p.Predict("Tuesday", "Exercise")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if productive {
		t.Error("expected (Tuesday, Exercise) to not be productive")
	}
}

func TestPredict_UnknownType(t *testing.T) {
	p, err := Train(scenarioTasks())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = p.Predict("Monday", "Unknown")
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}

	var uce *UnknownCategoryError
	if !errors.As(err, &uce) {
		t.Fatalf("expected *UnknownCategoryError, got %T", err)
	}
	if uce.Feature != "type" || uce.Value != "Unknown" {
		t.Errorf("unexpected error detail: %+v", uce)
	}
}

func TestPredict_UnknownDay(t *testing.T) {
	p, _ := Train(scenarioTasks())

	_, err := p.Predict("Sunday", "Work")
	var uce *UnknownCategoryError
	if !errors.As(err, &uce) || uce.Feature != "day" {
		t.Fatalf("expected unknown day error, got %v", err)
	}
}

func TestTrain_InsufficientData(t *testing.T) {
	tests := []struct {
		name  string
		tasks []task.Task
	}{
		{name: "empty log", tasks: nil},
		{name: "only unparseable dates", tasks: []task.Task{
			{Date: "not a date", Type: "Work", Duration: "1 hour"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Train(tt.tasks)
			if !errors.Is(err, ErrInsufficientData) {
				t.Errorf("expected ErrInsufficientData, got %v", err)
			}
		})
	}
}

func TestTrain_DroppedCount(t *testing.T) {
	tasks := append(scenarioTasks(), task.Task{Date: "??", Type: "Work", Duration: "1 hour"})

	p, err := Train(tasks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Dropped() != 1 {
		t.Errorf("expected 1 dropped task, got %d", p.Dropped())
	}
}

func TestTrain_Deterministic(t *testing.T) {
	tasks := []task.Task{
		{Date: "2024-01-01", Type: "Work", Duration: "2 hours"},
		{Date: "2024-01-01", Type: "Exercise", Duration: "1 hour"},
		{Date: "2024-01-02", Type: "Work", Duration: "30 minutes"},
		{Date: "2024-01-03", Type: "Reading", Duration: "90 minutes"},
		{Date: "2024-01-03", Type: "Work", Duration: "10 minutes"},
	}

	a, _ := Train(tasks)
	b, _ := Train(tasks)

	for _, day := range a.Days() {
		for _, typ := range a.Types() {
			pa, _ := a.Predict(day, typ)
			pb, _ := b.Predict(day, typ)
			if pa != pb {
				t.Errorf("retrain changed prediction for (%s, %s)", day, typ)
			}
		}
	}
}
