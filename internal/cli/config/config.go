// SPDX-License-Identifier: MIT

// Package config loads the gcalg CLI configuration.
//
// Sources, lowest to highest precedence: built-in defaults, the YAML file
// (--config, else ./gcalg.yaml or ./gcalg.yml), GCALG_* environment
// variables, explicitly set command-line flags.
package config

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Coefficient rings accepted by the "ring" key.
const (
	RingInt = "int"
	RingRat = "rat"
	RingGF  = "gf"
)

// Output formats accepted by the "output" key.
const (
	OutputTable = "table"
	OutputPlain = "plain"
	OutputLatex = "latex"
	OutputYAML  = "yaml"
)

// Defaults.
const (
	DefaultRing      = RingInt
	DefaultOutput    = OutputTable
	DefaultMulSymbol = "*"
	DefaultFile      = "gcalg.yaml"
	EnvPrefix        = "GCALG_"

	// unsetMaxDegree marks a missing max_degree; zero is a legal value.
	unsetMaxDegree = -1
)

// Config is the resolved CLI configuration.
type Config struct {
	Names          []string `koanf:"names" yaml:"names,omitempty"`
	Degrees        []int    `koanf:"degrees" yaml:"degrees,omitempty"`
	MaxDegree      int      `koanf:"max_degree" yaml:"max_degree"`
	Ring           string   `koanf:"ring" yaml:"ring"`
	Modulus        uint64   `koanf:"modulus" yaml:"modulus,omitempty"`
	MulSymbol      string   `koanf:"mul_symbol" yaml:"mul_symbol"`
	LatexMulSymbol string   `koanf:"latex_mul_symbol" yaml:"latex_mul_symbol"`
	Output         string   `koanf:"output" yaml:"output"`
	Verbose        bool     `koanf:"verbose" yaml:"verbose"`
	Workers        int      `koanf:"workers" yaml:"workers"`
}

// Validate checks the fields the algebra constructor does not.
func (c *Config) Validate() error {
	if len(c.Names) == 0 && len(c.Degrees) == 0 {
		return fmt.Errorf("%w: names or degrees required", ErrInvalidConfig)
	}
	if c.MaxDegree < 0 {
		return fmt.Errorf("%w: max_degree required", ErrInvalidConfig)
	}
	switch c.Ring {
	case RingInt, RingRat:
	case RingGF:
		if c.Modulus == 0 {
			return fmt.Errorf("%w: ring gf needs modulus", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown ring %q", ErrInvalidConfig, c.Ring)
	}
	if !slices.Contains([]string{OutputTable, OutputPlain, OutputLatex, OutputYAML}, c.Output) {
		return fmt.Errorf("%w: unknown output %q", ErrInvalidConfig, c.Output)
	}
	if c.MulSymbol == "" {
		return fmt.Errorf("%w: mul_symbol must be non-empty", ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0", ErrInvalidConfig)
	}

	return nil
}

// Sample is the configuration written by "gcalg init": the exterior
// algebra on three degree-1 generators.
func Sample() Config {
	return Config{
		Names:          []string{"x", "y", "z"},
		Degrees:        []int{1, 1, 1},
		MaxDegree:      3,
		Ring:           DefaultRing,
		MulSymbol:      DefaultMulSymbol,
		LatexMulSymbol: `\smile`,
		Output:         DefaultOutput,
	}
}
