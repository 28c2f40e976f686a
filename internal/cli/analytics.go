package cli

import (
	"fmt"
	"io"

	"github.com/pablasso/tempo/internal/analysis"
	"github.com/pablasso/tempo/internal/tui/components"
	"github.com/spf13/cobra"
)

const chartWidth = 60

func newAnalyticsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Show tasks by day, tasks by type and average duration by type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.tracker.Analytics()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(r.ByType) == 0 {
				fmt.Fprintln(out, "No tasks to analyze yet.")
				return nil
			}

			printChart(out, "Tasks by Day", r.ByDay, nil)
			if r.UndatedTasks > 0 {
				fmt.Fprintf(out, "(%d task(s) skipped: date not recognized)\n", r.UndatedTasks)
			}
			fmt.Fprintln(out)
			printChart(out, "Tasks by Type", r.ByType, nil)
			fmt.Fprintln(out)
			printChart(out, "Average Minutes by Type", r.MeanByType, func(v float64) string {
				return fmt.Sprintf("%.1f min", v)
			})
			return nil
		},
	}
}

func printChart(w io.Writer, title string, series []analysis.Bar, format func(float64) string) {
	fmt.Fprintln(w, title)
	if len(series) == 0 {
		fmt.Fprintln(w, "  (no data)")
		return
	}
	bars := make([]components.Bar, len(series))
	for i, b := range series {
		bars[i] = components.Bar{Label: b.Label, Value: b.Value}
	}
	chart := components.NewBarChart(bars, chartWidth)
	chart.Format = format
	fmt.Fprintln(w, chart.View())
}
