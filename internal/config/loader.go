package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "CSBM_"

// Loader merges defaults, a run file and environment overrides.
type Loader struct {
	// lookupEnv is os.LookupEnv outside tests.
	lookupEnv func(string) (string, bool)
}

// NewLoader returns a Loader reading the process environment.
func NewLoader() *Loader {
	return &Loader{lookupEnv: os.LookupEnv}
}

// Load is NewLoader().Load(path).
func Load(path string) (*Config, error) {
	return NewLoader().Load(path)
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and CSBM_* variables, then validates it.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		defer f.Close()

		if err := decode(f, cfg); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		cfg.LoadedFrom = append(cfg.LoadedFrom, path)
	}

	applied, err := l.applyEnv(cfg)
	if err != nil {
		return nil, err
	}
	if applied {
		cfg.LoadedFrom = append(cfg.LoadedFrom, "environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes a run file from r over the defaults and validates the
// result. Environment variables are not consulted.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := decode(r, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode overlays YAML onto cfg. Unknown keys are rejected; an empty
// document leaves cfg unchanged.
func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: yaml: %v", ErrInvalid, err)
	}
	return nil
}

// applyEnv overlays CSBM_* variables and reports whether any was set.
func (l *Loader) applyEnv(cfg *Config) (bool, error) {
	var applied bool

	ints := []struct {
		key string
		dst *int
	}{
		{"N", &cfg.Model.N},
		{"P", &cfg.Model.P},
		{"WORKERS", &cfg.Workers},
	}
	for _, e := range ints {
		val, ok := l.lookupEnv(EnvPrefix + e.key)
		if !ok || val == "" {
			continue
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return false, fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, e.key, val, err)
		}
		*e.dst = n
		applied = true
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"D", &cfg.Model.D},
		{"LAMBDA", &cfg.Model.Lambda},
		{"MU", &cfg.Model.Mu},
		{"RHO", &cfg.Model.Rho},
	}
	for _, e := range floats {
		val, ok := l.lookupEnv(EnvPrefix + e.key)
		if !ok || val == "" {
			continue
		}
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return false, fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, e.key, val, err)
		}
		*e.dst = f
		applied = true
	}

	if val, ok := l.lookupEnv(EnvPrefix + "SEED"); ok && val != "" {
		seed, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			return false, fmt.Errorf("%w: %sSEED=%q: %v", ErrInvalid, EnvPrefix, val, err)
		}
		cfg.Seed = seed
		applied = true
	}
	if val, ok := l.lookupEnv(EnvPrefix + "OUTPUT"); ok && val != "" {
		cfg.Output = val
		applied = true
	}

	return applied, nil
}
