// Package demo generates synthetic task histories so the TUI can be explored
// without touching a real task file.
package demo

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/pablasso/tempo/internal/task"
)

// Scenario shapes the generated history.
type Scenario string

const (
	// ScenarioSteady has long focus blocks early in the week and short ones later.
	ScenarioSteady Scenario = "steady"
	// ScenarioCrunch has many long tasks on every day.
	ScenarioCrunch Scenario = "crunch"
	// ScenarioSparse has few short tasks and some without a usable date.
	ScenarioSparse Scenario = "sparse"
)

// DefaultSeed makes demo data reproducible across runs.
const DefaultSeed int64 = 7

// ParseScenario validates and normalizes a scenario value.
func ParseScenario(value string) (Scenario, error) {
	switch s := Scenario(strings.ToLower(strings.TrimSpace(value))); s {
	case ScenarioSteady, ScenarioCrunch, ScenarioSparse:
		return s, nil
	default:
		return "", fmt.Errorf("invalid demo scenario %q (valid: steady, crunch, sparse)", value)
	}
}

type profile struct {
	perDay  int                        // upper bound of tasks per day
	longP   func(time.Weekday) float64 // chance a task runs 60 minutes or more
	undated float64                    // chance the date is left unparseable
}

var profiles = map[Scenario]profile{
	ScenarioSteady: {
		perDay: 3,
		longP: func(d time.Weekday) float64 {
			switch d {
			case time.Monday, time.Tuesday, time.Wednesday:
				return 0.8
			case time.Saturday, time.Sunday:
				return 0.1
			}
			return 0.4
		},
	},
	ScenarioCrunch: {
		perDay: 5,
		longP:  func(time.Weekday) float64 { return 0.85 },
	},
	ScenarioSparse: {
		perDay:  1,
		longP:   func(time.Weekday) float64 { return 0.2 },
		undated: 0.15,
	},
}

var catalog = []struct {
	typ   string
	names []string
}{
	{"Work", []string{"Write report", "Review pull requests", "Plan sprint", "Fix login bug", "Team sync"}},
	{"Study", []string{"Read a chapter", "Online course", "Practice Go", "Flashcards"}},
	{"Exercise", []string{"Run", "Gym", "Walk", "Yoga"}},
	{"Chores", []string{"Groceries", "Laundry", "Pay bills", "Clean kitchen"}},
}

var (
	longDurations  = []string{"1 hour", "90 minutes", "2 hours", "1.5 hours", "75 minutes"}
	shortDurations = []string{"15 minutes", "20 minutes", "30 minutes", "45 minutes"}
)

// Tasks generates weeks of history ending the day before end. Output is
// deterministic for a given scenario, span, end date and seed. Tasks older
// than a week are done; recent ones are a mix.
func Tasks(s Scenario, weeks int, end time.Time, seed int64) ([]task.Task, error) {
	p, ok := profiles[s]
	if !ok {
		return nil, fmt.Errorf("unknown demo scenario %q", s)
	}
	if weeks <= 0 {
		return nil, fmt.Errorf("weeks must be positive, got %d", weeks)
	}

	rng := rand.New(rand.NewSource(seed))
	start := end.AddDate(0, 0, -7*weeks)

	var tasks []task.Task
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		n := 1 + rng.Intn(p.perDay)
		for k := 0; k < n; k++ {
			entry := catalog[rng.Intn(len(catalog))]
			t := task.Task{
				Name:   entry.names[rng.Intn(len(entry.names))],
				Date:   day.Format("2006-01-02"),
				Type:   entry.typ,
				Status: task.StatusPending,
			}
			if rng.Float64() < p.longP(day.Weekday()) {
				t.Duration = longDurations[rng.Intn(len(longDurations))]
			} else {
				t.Duration = shortDurations[rng.Intn(len(shortDurations))]
			}
			if rng.Float64() < p.undated {
				t.Date = "someday"
			}
			if end.Sub(day) > 7*24*time.Hour || rng.Intn(2) == 0 {
				t.Status = task.StatusDone
			}
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

// Store returns an in-memory store seeded with a generated history.
func Store(s Scenario, weeks int, end time.Time) (*task.MemoryStore, error) {
	tasks, err := Tasks(s, weeks, end, DefaultSeed)
	if err != nil {
		return nil, err
	}
	return task.NewMemoryStore(tasks...), nil
}
