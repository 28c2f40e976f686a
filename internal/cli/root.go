// Package cli implements the tempo command line. With no subcommand it starts
// the interactive TUI.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/pablasso/tempo/internal/config"
	"github.com/pablasso/tempo/internal/demo"
	"github.com/pablasso/tempo/internal/logger"
	"github.com/pablasso/tempo/internal/tracker"
	"github.com/pablasso/tempo/internal/tui"
	"github.com/pablasso/tempo/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const demoWeeks = 6

// app holds the state shared by every command for one invocation.
type app struct {
	v       *viper.Viper
	cfg     *config.Config
	log     *zap.Logger
	tracker *tracker.Tracker
	now     func() time.Time
	closers []func()
}

func newRoot() (*cobra.Command, *app) {
	a := &app{v: config.New(), now: time.Now}

	rootCmd := &cobra.Command{
		Use:   "tempo",
		Short: "Personal task tracker with a productivity predictor",
		Long: `Tempo logs your tasks, tracks what is done, and learns from your history
whether a task of a given type on a given weekday tends to be productive.

Run without a subcommand to open the interactive interface.`,
		Version:            version.Version,
		Args:               cobra.NoArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error { a.close(); return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(a.tracker)
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default ./"+config.DefaultConfigFile+" if present)")
	flags.String("data", "", "CSV task file (overrides data_file)")
	flags.String("backend", "", "storage backend: csv or bolt")
	flags.Bool("demo", false, "use generated in-memory demo data; nothing is saved")
	flags.String("demo-scenario", string(demo.ScenarioSteady), "demo data shape: steady|crunch|sparse")
	_ = a.v.BindPFlag("data_file", flags.Lookup("data"))
	_ = a.v.BindPFlag("backend", flags.Lookup("backend"))

	rootCmd.AddCommand(
		newAddCmd(a),
		newListCmd(a),
		newDoneCmd(a),
		newStatsCmd(a),
		newAnalyticsCmd(a),
		newPredictCmd(a),
		newVersionCmd(),
	)
	return rootCmd, a
}

// NewRootCmd builds the tempo command tree.
func NewRootCmd() *cobra.Command {
	cmd, _ := newRoot()
	return cmd
}

// Execute runs the root command.
func Execute() error {
	cmd, a := newRoot()
	defer a.close()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// setup loads configuration, the logger and the task store.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(a.v, path)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, syncLog, err := logger.New(logger.Config{
		Level:    cfg.LogLevel,
		Encoding: cfg.LogEncoding,
		File:     cfg.LogFile,
	})
	if err != nil {
		return err
	}
	a.log = log
	a.closers = append(a.closers, syncLog)

	if on, _ := cmd.Flags().GetBool("demo"); on {
		return a.setupDemo(cmd)
	}

	store, closeStore, err := tracker.OpenStore(cfg)
	if err != nil {
		log.Error("failed to open task store", zap.String("backend", cfg.Backend), zap.Error(err))
		return err
	}
	a.closers = append(a.closers, func() {
		if err := closeStore(); err != nil {
			log.Warn("failed to close task store", zap.Error(err))
		}
	})

	a.tracker = tracker.New(store, log.With(zap.String("backend", cfg.Backend)))
	log.Debug("command started", zap.String("command", cmd.CommandPath()))
	return nil
}

// setupDemo backs the tracker with generated tasks held in memory.
func (a *app) setupDemo(cmd *cobra.Command) error {
	value, _ := cmd.Flags().GetString("demo-scenario")
	scenario, err := demo.ParseScenario(value)
	if err != nil {
		return err
	}
	store, err := demo.Store(scenario, demoWeeks, a.now())
	if err != nil {
		return err
	}
	a.log.Info("demo mode", zap.String("scenario", string(scenario)), zap.Int("weeks", demoWeeks))
	a.tracker = tracker.New(store, a.log.With(zap.String("backend", "demo")))
	return nil
}

// close releases resources in reverse order. It is safe to call more than once.
func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
