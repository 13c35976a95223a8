package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/csbm/csbm"
)

type snrOptions struct {
	n, p      int
	d, lambda float64
	mu        float64
}

func newSNRCmd() *cobra.Command {
	opts := &snrOptions{}

	cmd := &cobra.Command{
		Use:   "snr",
		Short: "Print the effective SNR λ² + μ²·P/N and the edge probabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// ρ does not enter the SNR.
			cfg, err := csbm.NewModelConfig(opts.n, opts.p, opts.d, opts.lambda, opts.mu, 0)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "effective_snr: %.6g\n", cfg.EffectiveSNR())

			aff, err := cfg.Affinities()
			switch {
			case errors.Is(err, csbm.ErrDegenerateAffinity):
				fmt.Fprintln(out, "affinity: degenerate")
			case err != nil:
				return err
			default:
				fmt.Fprintf(out, "p_in: %.6g\np_out: %.6g\n", aff.In, aff.Out)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.n, "n", 1000, "Number of nodes N")
	f.IntVar(&opts.p, "p", 10, "Feature dimension P")
	f.Float64Var(&opts.d, "d", 5, "Target average degree d")
	f.Float64Var(&opts.lambda, "lambda", 1, "Graph SNR λ")
	f.Float64Var(&opts.mu, "mu", 1, "Feature SNR μ")

	return cmd
}
