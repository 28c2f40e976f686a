package main

import (
	"os"

	"github.com/pablasso/tempo/internal/cli"
)

func main() {
	// With no args the root command launches the TUI; otherwise route to the subcommand.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
