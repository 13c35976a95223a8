package csbm_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/csbm/csbm"
	"github.com/stretchr/testify/require"
)

func TestResolveAffinities(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		n             int
		d, lambda     float64
		wantIn, wantO float64
	}{
		{"erdos-renyi", 100, 5, 0, 0.05, 0.05},
		{"assortative", 100, 4, 1, 0.06, 0.02},
		{"disassortative", 100, 4, -1, 0.02, 0.06},
		{"boundary lambda", 100, 4, 2, 0.08, 0},
		{"empty", 10, 0, 3, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a, err := csbm.ResolveAffinities(tc.n, tc.d, tc.lambda)
			require.NoError(t, err)
			require.InDelta(t, tc.wantIn, a.In, 1e-12)
			require.InDelta(t, tc.wantO, a.Out, 1e-12)
			// (c_in + c_out)/2 = d
			require.InDelta(t, tc.d, float64(tc.n)*(a.In+a.Out)/2, 1e-9)
		})
	}
}

func TestResolveAffinities_Degenerate(t *testing.T) {
	t.Parallel()

	// |λ| > √d drives one rate negative.
	_, err := csbm.ResolveAffinities(100, 4, 2.5)
	require.ErrorIs(t, err, csbm.ErrDegenerateAffinity)
	_, err = csbm.ResolveAffinities(100, 4, -2.5)
	require.ErrorIs(t, err, csbm.ErrDegenerateAffinity)

	// c_in above N.
	_, err = csbm.ResolveAffinities(10, 9, 1)
	require.ErrorIs(t, err, csbm.ErrDegenerateAffinity)

	// Invalid inputs are configuration errors, not affinity errors.
	_, err = csbm.ResolveAffinities(0, 4, 0)
	require.ErrorIs(t, err, csbm.ErrInvalidConfiguration)
	_, err = csbm.ResolveAffinities(10, -1, 0)
	require.ErrorIs(t, err, csbm.ErrInvalidConfiguration)
	_, err = csbm.ResolveAffinities(10, 1, math.NaN())
	require.ErrorIs(t, err, csbm.ErrInvalidConfiguration)
}

func TestModelConfig_Affinities(t *testing.T) {
	t.Parallel()

	cfg, err := csbm.NewModelConfig(50, 3, 9, 1, 0, 0)
	require.NoError(t, err)
	a, err := cfg.Affinities()
	require.NoError(t, err)
	require.InDelta(t, 12.0/50, a.In, 1e-12)
	require.InDelta(t, 6.0/50, a.Out, 1e-12)
}
