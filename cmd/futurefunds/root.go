package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/futurefunds/retirement-planner/internal/calculation"
)

// nowFunc supplies the default projection base year.
var nowFunc = time.Now

// app carries state shared by all subcommands.
type app struct {
	verbose bool
	logger  calculation.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: calculation.NopLogger{}}
	root := &cobra.Command{
		Use:          "futurefunds",
		Short:        "Retirement corpus planner for Indian savers",
		Long:         "FutureFunds projects mutual fund, fixed deposit and recurring deposit savings to retirement and compares them with the corpus needed to cover inflated expenses.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			a.logger = calculation.NewSlogLogger(slog.New(handler))
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newCalculateCmd(a),
		newExampleCmd(a),
		newSchemesCmd(a),
		newServeCmd(a),
	)
	return root
}
