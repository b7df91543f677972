package app

import (
	"io"
	"os"

	"iconpack/internal/diag"
	"iconpack/internal/domain"
	"iconpack/internal/services/importer"
	"iconpack/internal/store"
)

// App bundles the services the CLI commands run against.
type App struct {
	Config   Config
	Importer domain.Importer
	Store    domain.CollectionStore
	Reporter domain.Reporter
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) *App {
	out := cfg.DiagOut
	if out == nil {
		out = os.Stderr
	}
	var rep domain.Reporter = diag.NewLogger(out)
	if cfg.Quiet {
		rep = diag.NewLogger(io.Discard)
	}

	return &App{
		Config:   cfg,
		Importer: importer.New(rep),
		Store:    store.NewFileStore(),
		Reporter: rep,
	}
}
