package cli

import (
	"fmt"

	"github.com/pablasso/tempo/internal/tracker"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

func newAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a new task",
		Long: `Log a new pending task and retrain the productivity model.

Duration is free text such as "45 minutes" or "1.5 hours".`,
		Example: `  tempo add --name "Write report" --type Work --duration "90 minutes"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := tracker.NewTask{}
			in.Name, _ = cmd.Flags().GetString("name")
			in.Date, _ = cmd.Flags().GetString("date")
			in.Type, _ = cmd.Flags().GetString("type")
			in.Duration, _ = cmd.Flags().GetString("duration")
			if !cmd.Flags().Changed("date") {
				in.Date = a.now().Format(dateLayout)
			}

			if err := a.tracker.AddTask(in); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Task added & model updated")
			return nil
		},
	}

	cmd.Flags().String("name", "", "task name")
	cmd.Flags().String("date", "", "task date (default today, "+dateLayout+")")
	cmd.Flags().String("type", "", "task type, e.g. Work or Study")
	cmd.Flags().String("duration", "", `duration, e.g. "30 minutes" or "2 hours"`)
	return cmd
}
