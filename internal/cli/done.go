package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newDoneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "done <number>",
		Short: "Mark a task as done",
		Long:  "Mark a task as done. <number> is the task's position as shown by `tempo list`, starting at 1.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task number %q", args[0])
			}
			if err := a.tracker.MarkDone(n - 1); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task %d marked as done\n", n)
			return nil
		},
	}
}
