package cli

import (
	"fmt"

	"github.com/pablasso/tempo/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// No config, logger or store needed.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tempo %s (commit %s, built %s)\n",
				version.Version, version.CommitSHA, version.BuildDate)
		},
	}
}
