package cli

import (
	"fmt"

	"github.com/pablasso/tempo/internal/tui/components"
	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show task counters and completion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.tracker.Stats()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total:    %d\n", s.Total)
			fmt.Fprintf(out, "Done:     %d\n", s.Done)
			fmt.Fprintf(out, "Pending:  %d\n", s.Pending)
			fmt.Fprintf(out, "Progress: %s\n", components.NewProgress(s.Percent, 20).View())
			return nil
		},
	}
}
