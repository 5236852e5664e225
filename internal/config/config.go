// Package config loads the settings of the motr driver from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/crillab/motr/calculus"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Symbol sets.
const (
	SymbolsSymbolic = "symbolic"
	SymbolsWritten  = "written"
)

// Config holds the driver settings. Command-line flags take precedence.
type Config struct {
	Symbols  string `env:"MOTR_SYMBOLS" envDefault:"symbolic"`
	Format   string `env:"MOTR_FORMAT" envDefault:"text"`
	Simplify bool   `env:"MOTR_SIMPLIFY" envDefault:"true"`
	Verbose  bool   `env:"MOTR_VERBOSE" envDefault:"false"`
}

// Load reads the configuration from environment variables and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the symbol set and the output format are known.
func (c Config) Validate() error {
	if _, err := c.SymbolSet(); err != nil {
		return err
	}
	switch c.Format {
	case FormatText, FormatYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q", c.Format)
	}
}

// SymbolSet returns the symbols used to print formulas.
func (c Config) SymbolSet() (calculus.Symbols, error) {
	switch c.Symbols {
	case SymbolsSymbolic:
		return calculus.Symbolic, nil
	case SymbolsWritten:
		return calculus.WrittenForm, nil
	default:
		return calculus.Symbols{}, fmt.Errorf("unknown symbol set %q", c.Symbols)
	}
}
