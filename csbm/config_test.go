package csbm_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/csbm/csbm"
	"github.com/stretchr/testify/require"
)

func TestNewModelConfig_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		p       csbm.Params
		wantErr bool
	}{
		{"valid", csbm.Params{N: 100, P: 5, D: 5, Lambda: 1, Mu: 1, Rho: 0.5}, false},
		{"zero degree", csbm.Params{N: 10, P: 1, D: 0, Lambda: 0, Mu: 0, Rho: 0}, false},
		{"negative lambda", csbm.Params{N: 10, P: 1, D: 4, Lambda: -1, Mu: 0, Rho: 1}, false},
		{"N zero", csbm.Params{N: 0, P: 5, D: 5, Rho: 0.5}, true},
		{"N negative", csbm.Params{N: -3, P: 5, D: 5, Rho: 0.5}, true},
		{"P zero", csbm.Params{N: 10, P: 0, D: 5, Rho: 0.5}, true},
		{"d negative", csbm.Params{N: 10, P: 2, D: -0.5, Rho: 0.5}, true},
		{"rho negative", csbm.Params{N: 10, P: 2, D: 1, Rho: -0.01}, true},
		{"rho above one", csbm.Params{N: 10, P: 2, D: 1, Rho: 1.01}, true},
		{"mu negative", csbm.Params{N: 10, P: 2, D: 1, Mu: -1, Rho: 0.5}, true},
		{"lambda NaN", csbm.Params{N: 10, P: 2, D: 1, Lambda: math.NaN(), Rho: 0.5}, true},
		{"d inf", csbm.Params{N: 10, P: 2, D: math.Inf(1), Rho: 0.5}, true},
		{"rho NaN", csbm.Params{N: 10, P: 2, D: 1, Rho: math.NaN()}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := csbm.NewModelConfig(tc.p.N, tc.p.P, tc.p.D, tc.p.Lambda, tc.p.Mu, tc.p.Rho)
			if tc.wantErr {
				require.ErrorIs(t, err, csbm.ErrInvalidConfiguration)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.p, cfg.Params())
			require.Equal(t, tc.p.N, cfg.N())
			require.Equal(t, tc.p.P, cfg.P())
			require.Equal(t, tc.p.D, cfg.D())
			require.Equal(t, tc.p.Lambda, cfg.Lambda())
			require.Equal(t, tc.p.Mu, cfg.Mu())
			require.Equal(t, tc.p.Rho, cfg.Rho())
		})
	}
}

func TestNewModelConfig_ErrorNamesField(t *testing.T) {
	t.Parallel()

	_, err := csbm.NewModelConfig(10, 2, 1, 0, 0, 3)
	require.ErrorIs(t, err, csbm.ErrInvalidConfiguration)
	require.Contains(t, err.Error(), "rho")
}

func TestEffectiveSNR(t *testing.T) {
	t.Parallel()

	cfg, err := csbm.NewModelConfig(1000, 10, 3, 2, 3, 0.1)
	require.NoError(t, err)

	first := csbm.EffectiveSNR(cfg)
	require.InDelta(t, 4.09, first, 1e-12)
	require.Equal(t, first, csbm.EffectiveSNR(cfg))
	require.Equal(t, first, cfg.EffectiveSNR())
}

func TestModelConfig_String(t *testing.T) {
	t.Parallel()

	cfg, err := csbm.NewModelConfig(100, 5, 5, 1, 1, 0.5)
	require.NoError(t, err)
	require.Equal(t, "csbm{N=100 P=5 d=5 λ=1 μ=1 ρ=0.5}", cfg.String())
}
