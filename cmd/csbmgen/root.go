package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loggerFactory builds the process logger; jsonLogs selects the production
// encoder.
type loggerFactory func(jsonLogs bool) (*zap.Logger, error)

func defaultLogger(jsonLogs bool) (*zap.Logger, error) {
	if jsonLogs {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	jsonLogs  bool
	newLogger loggerFactory
}

func (o *rootOptions) logger() (*zap.Logger, error) {
	return o.newLogger(o.jsonLogs)
}

func newRootCmd(newLogger loggerFactory) *cobra.Command {
	opts := &rootOptions{newLogger: newLogger}

	root := &cobra.Command{
		Use:   "csbmgen",
		Short: "Generate Contextual Stochastic Block Model datasets",
		Long: `csbmgen samples two-community CSBM instances: a graph, a Gaussian
feature matrix and a partially revealed label vector, all driven by the same
hidden labels. Runs are reproducible for a fixed seed.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&opts.jsonLogs, "json-logs", false, "Emit JSON logs (production encoder)")

	root.AddCommand(
		newSampleCmd(opts),
		newSNRCmd(),
		newStatsCmd(),
	)
	return root
}
