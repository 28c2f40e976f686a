package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks with their status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := a.tracker.Tasks()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(tasks) == 0 {
				fmt.Fprintln(out, "No tasks yet. Add one with `tempo add`.")
				return nil
			}

			rows := make([][]string, len(tasks))
			for i, t := range tasks {
				rows[i] = []string{strconv.Itoa(i + 1), t.Name, t.Date, t.Type, t.Duration, t.Status}
			}
			tbl := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("#", "Task Name", "Date", "Type", "Duration", "Status").
				Rows(rows...)
			fmt.Fprintln(out, tbl.String())
			return nil
		},
	}
}
