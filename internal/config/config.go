package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/csbm/csbm"
)

// ErrInvalid wraps every load or validation failure.
var ErrInvalid = errors.New("config: invalid run configuration")

var validate = validator.New()

// Config is one csbmgen run.
type Config struct {
	// Model holds the CSBM parameters; checked by csbm.Params.Config.
	Model csbm.Params `yaml:"model"`

	// Seed initializes the PCG stream.
	Seed uint64 `yaml:"seed"`

	// Workers is the graph sampling parallelism; 1 keeps the sequential layout.
	Workers int `yaml:"workers" validate:"gte=1,lte=1024"`

	// Output is the dataset directory.
	Output string `yaml:"output" validate:"required"`

	// LoadedFrom lists the sources merged into this Config, in order.
	LoadedFrom []string `yaml:"-"`
}

// Default returns the configuration used when nothing else is given.
func Default() *Config {
	return &Config{
		Model: csbm.Params{
			N:      1000,
			P:      10,
			D:      5,
			Lambda: 1,
			Mu:     1,
			Rho:    0.1,
		},
		Seed:       1,
		Workers:    1,
		Output:     "out",
		LoadedFrom: []string{"defaults"},
	}
}

// Validate checks the run fields and the model parameters.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := c.Model.Config(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// ModelConfig returns the validated model parameters.
func (c *Config) ModelConfig() (csbm.ModelConfig, error) {
	return c.Model.Config()
}
