package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sghaida/tour/tour"
)

// newRootCmd builds the CLI. It exists separately from main so tests can
// execute the command against a buffer without touching os.Exit.
func newRootCmd() *cobra.Command {
	var (
		cfgPath string
		only    []string
		verbose bool
		noColor bool

		logger *zap.Logger
	)

	cmd := &cobra.Command{
		Use:   "tour",
		Short: "Run the language-feature tour sections",
		Long: `tour walks through a fixed set of small, self-contained demonstrations
(object model, behavior wrapping, recursion, error handling, collection
helpers, file I/O) and prints each one as human-readable console text.

Sections share no state and run in a fixed order; a failing section is
reported and the remaining sections still run.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config = zap.NewDevelopmentConfig()
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := tour.LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			if noColor {
				cfg.NoColor = true
			}

			ids := make([]tour.SectionID, 0, len(only))
			for _, name := range only {
				ids = append(ids, tour.SectionID(name))
			}

			runner := tour.NewRunner(tour.DefaultRegistry(), cfg, cmd.OutOrStdout(), logger)
			return runner.Run(ids...)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "path to a YAML config file")
	cmd.Flags().StringSliceVar(&only, "only", nil, "run only the named sections, in order")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable styled output")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
