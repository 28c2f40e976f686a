// Package analysis computes the aggregate counters and chart series shown to the user.
package analysis

import "github.com/pablasso/tempo/internal/task"

// Stats are the aggregate counters of the task list.
type Stats struct {
	Total   int
	Done    int
	Pending int
	Percent int // Done as a whole percentage of Total, truncated
}

// Summarize counts tasks by status. Tasks whose status is neither Pending nor
// Done count toward Total only.
func Summarize(tasks []task.Task) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case task.StatusDone:
			s.Done++
		case task.StatusPending:
			s.Pending++
		}
	}
	if s.Total > 0 {
		s.Percent = s.Done * 100 / s.Total
	}
	return s
}
