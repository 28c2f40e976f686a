package analysis

import (
	"testing"

	"github.com/pablasso/tempo/internal/task"
)

func TestSummarize(t *testing.T) {
	pending := task.Task{Status: task.StatusPending}
	done := task.Task{Status: task.StatusDone}

	tests := []struct {
		name  string
		tasks []task.Task
		want  Stats
	}{
		{
			name:  "empty store",
			tasks: nil,
			want:  Stats{},
		},
		{
			name:  "one of four done",
			tasks: []task.Task{done, pending, pending, pending},
			want:  Stats{Total: 4, Done: 1, Pending: 3, Percent: 25},
		},
		{
			name:  "percent truncates",
			tasks: []task.Task{done, done, pending},
			want:  Stats{Total: 3, Done: 2, Pending: 1, Percent: 66},
		},
		{
			name:  "all done",
			tasks: []task.Task{done, done},
			want:  Stats{Total: 2, Done: 2, Pending: 0, Percent: 100},
		},
		{
			name:  "unknown status counts toward total only",
			tasks: []task.Task{done, {Status: "Archived"}},
			want:  Stats{Total: 2, Done: 1, Pending: 0, Percent: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summarize(tt.tasks); got != tt.want {
				t.Errorf("Summarize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
