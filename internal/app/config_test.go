package app_test

import (
	"testing"

	"iconpack/internal/app"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := app.ParseConfig()
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.GridWidth != 16 || cfg.GridHeight != 16 {
		t.Fatalf("grid = %vx%v, want 16x16", cfg.GridWidth, cfg.GridHeight)
	}
	if cfg.Quiet {
		t.Fatal("quiet must default to false")
	}
}

func TestParseConfig_EnvOverride(t *testing.T) {
	t.Setenv("ICONPACK_GRID_WIDTH", "24")
	t.Setenv("ICONPACK_QUIET", "true")

	cfg, err := app.ParseConfig()
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.GridWidth != 24 {
		t.Fatalf("grid width = %v, want 24", cfg.GridWidth)
	}
	if !cfg.Quiet {
		t.Fatal("quiet should be set from env")
	}
}

func TestParseConfig_BadValue_Fails(t *testing.T) {
	t.Setenv("ICONPACK_GRID_WIDTH", "not-a-number")
	if _, err := app.ParseConfig(); err == nil {
		t.Fatal("expected error for invalid env value")
	}
}

func TestNewWire_BuildsGraph(t *testing.T) {
	cfg, err := app.ParseConfig()
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	a := app.NewWire(cfg)
	if a.Importer == nil || a.Store == nil || a.Reporter == nil {
		t.Fatal("wire must populate every service")
	}
}
