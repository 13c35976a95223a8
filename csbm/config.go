// SPDX-License-Identifier: MIT
// Package: csbm
//
// config.go - model parameters and their validation.
//
// Design:
//   • Params is the plain record (YAML/flag friendly, validator tags).
//   • ModelConfig is the validated, immutable form; the only way to obtain
//     one is NewModelConfig (or Params.Config).
//   • Every real parameter is float64 (IEEE-754 binary64); integers are
//     promoted to float64 only inside derived quantities.

package csbm

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Params is the unvalidated parameter record of the model.
type Params struct {
	// N is the number of nodes.
	N int `yaml:"n" validate:"gt=0"`
	// P is the feature dimension.
	P int `yaml:"p" validate:"gt=0"`
	// D is the target average degree d.
	D float64 `yaml:"d" validate:"gte=0"`
	// Lambda is the graph SNR λ; its sign selects assortative (λ>0) or
	// disassortative (λ<0) structure.
	Lambda float64 `yaml:"lambda"`
	// Mu is the feature SNR μ.
	Mu float64 `yaml:"mu" validate:"gte=0"`
	// Rho is the fraction of labels revealed.
	Rho float64 `yaml:"rho" validate:"gte=0,lte=1"`
}

// Config validates p and returns the corresponding ModelConfig.
func (p Params) Config() (ModelConfig, error) {
	for _, f := range []struct {
		name string
		v    float64
	}{{"d", p.D}, {"lambda", p.Lambda}, {"mu", p.Mu}, {"rho", p.Rho}} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return ModelConfig{}, fmt.Errorf("NewModelConfig: %s=%v is not finite: %w",
				f.name, f.v, ErrInvalidConfiguration)
		}
	}
	if err := validate.Struct(p); err != nil {
		return ModelConfig{}, fmt.Errorf("NewModelConfig: %s: %w", describe(err), ErrInvalidConfiguration)
	}

	return ModelConfig{p: p, ok: true}, nil
}

// ModelConfig is an immutable, validated CSBM parameter set.
// The zero value is not usable; Sample rejects it with ErrZeroConfig.
type ModelConfig struct {
	p  Params
	ok bool
}

// NewModelConfig validates {N, P, d, λ, μ, ρ}.
//
// Errors: ErrInvalidConfiguration when N ≤ 0, P ≤ 0, d < 0, μ < 0,
// ρ ∉ [0,1], or any real parameter is NaN/±Inf.
func NewModelConfig(n, p int, d, lambda, mu, rho float64) (ModelConfig, error) {
	return Params{N: n, P: p, D: d, Lambda: lambda, Mu: mu, Rho: rho}.Config()
}

// N returns the graph size.
func (c ModelConfig) N() int { return c.p.N }

// P returns the feature dimension.
func (c ModelConfig) P() int { return c.p.P }

// D returns the target average degree.
func (c ModelConfig) D() float64 { return c.p.D }

// Lambda returns the graph SNR λ.
func (c ModelConfig) Lambda() float64 { return c.p.Lambda }

// Mu returns the feature SNR μ.
func (c ModelConfig) Mu() float64 { return c.p.Mu }

// Rho returns the revealed-label fraction ρ.
func (c ModelConfig) Rho() float64 { return c.p.Rho }

// Params returns a copy of the underlying record.
func (c ModelConfig) Params() Params { return c.p }

// EffectiveSNR is λ² + μ²·P/N.
func (c ModelConfig) EffectiveSNR() float64 {
	return c.p.Lambda*c.p.Lambda + c.p.Mu*c.p.Mu*float64(c.p.P)/float64(c.p.N)
}

// Affinities resolves (p_in, p_out) for this configuration.
func (c ModelConfig) Affinities() (Affinities, error) {
	return ResolveAffinities(c.p.N, c.p.D, c.p.Lambda)
}

// String is a compact one-line rendering for logs.
func (c ModelConfig) String() string {
	return fmt.Sprintf("csbm{N=%d P=%d d=%g λ=%g μ=%g ρ=%g}",
		c.p.N, c.p.P, c.p.D, c.p.Lambda, c.p.Mu, c.p.Rho)
}

// EffectiveSNR is the free-function form of ModelConfig.EffectiveSNR.
func EffectiveSNR(cfg ModelConfig) float64 {
	return cfg.EffectiveSNR()
}

// describe flattens validator errors into "n must be gt 0; rho must be lte 1".
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, e := range verrs {
		parts = append(parts, fmt.Sprintf("%s must be %s %s", strings.ToLower(e.Field()), e.Tag(), e.Param()))
	}
	return strings.Join(parts, "; ")
}
