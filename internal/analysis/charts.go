package analysis

import (
	"sort"
	"time"

	"github.com/pablasso/tempo/internal/model"
	"github.com/pablasso/tempo/internal/task"
)

// Bar is one labelled value of a chart series.
type Bar struct {
	Label string
	Value float64
}

// Report holds every analytics series.
type Report struct {
	ByDay        []Bar
	ByType       []Bar
	MeanByType   []Bar
	UndatedTasks int
}

// weekOrder lists weekdays starting on Monday.
var weekOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// Analyze builds every chart series from the task log.
func Analyze(tasks []task.Task) Report {
	byDay, undated := TasksByDay(tasks)
	return Report{
		ByDay:        byDay,
		ByType:       TasksByType(tasks),
		MeanByType:   MeanMinutesByType(tasks),
		UndatedTasks: undated,
	}
}

// TasksByDay counts tasks per weekday, Monday first. Days without tasks are
// omitted. Tasks with an unparseable date are skipped and counted in undated.
func TasksByDay(tasks []task.Task) (bars []Bar, undated int) {
	counts := make(map[string]int)
	for _, t := range tasks {
		day, err := model.DayName(t.Date)
		if err != nil {
			undated++
			continue
		}
		counts[day]++
	}

	for _, d := range weekOrder {
		if n := counts[d.String()]; n > 0 {
			bars = append(bars, Bar{Label: d.String(), Value: float64(n)})
		}
	}
	return bars, undated
}

// TasksByType counts tasks per type, most frequent first, ties by name.
func TasksByType(tasks []task.Task) []Bar {
	counts := make(map[string]int)
	for _, t := range tasks {
		counts[t.Type]++
	}

	bars := make([]Bar, 0, len(counts))
	for typ, n := range counts {
		bars = append(bars, Bar{Label: typ, Value: float64(n)})
	}
	sort.Slice(bars, func(i, j int) bool {
		if bars[i].Value != bars[j].Value {
			return bars[i].Value > bars[j].Value
		}
		return bars[i].Label < bars[j].Label
	})
	return bars
}

// MeanMinutesByType averages duration in minutes per type over every task,
// including tasks with an unparseable date. Unparseable durations count as 0.
func MeanMinutesByType(tasks []task.Task) []Bar {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, t := range tasks {
		sums[t.Type] += model.DurationMinutes(t.Duration)
		counts[t.Type]++
	}

	bars := make([]Bar, 0, len(counts))
	for typ, n := range counts {
		bars = append(bars, Bar{Label: typ, Value: sums[typ] / float64(n)})
	}
	sort.Slice(bars, func(i, j int) bool {
		return bars[i].Label < bars[j].Label
	})
	return bars
}
