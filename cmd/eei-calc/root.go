package main

import (
	"fmt"

	"github.com/eei/returns-calculator/internal/calculation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cli holds state shared by all subcommands of one invocation.
type cli struct {
	verbose bool
	format  string
	saveDir string
	logger  *zap.Logger
	engine  *calculation.Engine
}

func newRootCmd() *cobra.Command {
	c := &cli{engine: calculation.NewEngine(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "eei-calc",
		Short: "EEI franchisee and investor return illustrations",
		Long: `eei-calc computes the illustrative returns shown on the EEI franchisee
and investor pages, either from flags, from a YAML file of form fields, or by
serving the forms over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if c.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.logger = logger
			c.engine.SetLogger(calculation.NewZapLogger(logger))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&c.format, "format", "f", "console", "output format (console, csv, html, json)")
	root.PersistentFlags().StringVar(&c.saveDir, "save", "", "also write the output to a timestamped file in this directory")

	root.AddCommand(newFranchiseCmd(c), newInvestorCmd(c), newServeCmd(c))
	return root
}
