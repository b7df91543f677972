package app

import (
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime wiring options. Environment variables provide the
// defaults; command-line flags override them.
type Config struct {
	// GridWidth and GridHeight are the default icon grid; icons matching it
	// carry no explicit dimensions in the export.
	GridWidth  float64 `env:"ICONPACK_GRID_WIDTH" envDefault:"16"`
	GridHeight float64 `env:"ICONPACK_GRID_HEIGHT" envDefault:"16"`

	// Quiet suppresses per-icon diagnostics.
	Quiet bool `env:"ICONPACK_QUIET"`

	// DiagOut overrides the diagnostics destination; defaults to stderr.
	// Not env-configurable.
	DiagOut io.Writer
}

// ParseConfig loads configuration from environment variables.
func ParseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
