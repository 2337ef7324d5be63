package config

import (
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join("testdata", "config.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.App.Name != "ofibt-test" {
		t.Fatalf("unexpected App.Name: %s", cfg.App.Name)
	}
	if cfg.Data.Root != "testdata/data" {
		t.Fatalf("unexpected Data.Root: %s", cfg.Data.Root)
	}
	if !cfg.Session.Enabled || cfg.Session.StartSec != 48600 || cfg.Session.EndSec != 72000 {
		t.Fatalf("unexpected session window: %+v", cfg.Session)
	}
	if cfg.Strategy.ThetaOFI != 5.0 {
		t.Fatalf("unexpected theta_ofi: %.2f", cfg.Strategy.ThetaOFI)
	}
	if cfg.Strategy.PersistUpdates != 3 {
		t.Fatalf("unexpected persist_updates: %d", cfg.Strategy.PersistUpdates)
	}
	if len(cfg.Grid.ThetaOFI) != 2 || cfg.Grid.ThetaOFI[1] != 5.0 {
		t.Fatalf("unexpected grid theta_ofi: %+v", cfg.Grid.ThetaOFI)
	}
	if len(cfg.Grid.MaxHoldMs) != 2 || cfg.Grid.MaxHoldMs[0] != 1000 {
		t.Fatalf("unexpected grid max_hold_ms: %+v", cfg.Grid.MaxHoldMs)
	}
	if cfg.Dates.TrainStart != "20231001" || cfg.Dates.ValidEnd != "20231030" {
		t.Fatalf("unexpected dates: %+v", cfg.Dates)
	}
	if cfg.Stats.TradesPerYear != 15120 {
		t.Fatalf("unexpected trades_per_year: %.0f", cfg.Stats.TradesPerYear)
	}
	if cfg.Optimize.Workers != 4 {
		t.Fatalf("unexpected workers: %d", cfg.Optimize.Workers)
	}
}

func TestStrategyParamsConversion(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "config.yaml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	p := cfg.Strategy.Params()
	if p.MaxHoldNs != 2_000_000_000 {
		t.Fatalf("expected 2s hold, got %d ns", p.MaxHoldNs)
	}
	if p.FlipCooldownNs != 120_000_000 {
		t.Fatalf("expected 120ms cooldown, got %d ns", p.FlipCooldownNs)
	}
	if p.ConfirmWindowNs != 100_000_000 {
		t.Fatalf("expected 100ms confirm window, got %d ns", p.ConfirmWindowNs)
	}
	if !p.TouchFill {
		t.Fatalf("expected touch fills enabled")
	}
}

func TestParamsDefaults(t *testing.T) {
	p := Strategy{}.Params()
	if p.ThetaOFI != 5.0 || p.TickSize != 0.25 || p.TickValue != 12.5 {
		t.Fatalf("unexpected defaults: %+v", p)
	}
	if p.ConfirmWindowNs != 0 {
		t.Fatalf("confirm window should default off, got %d", p.ConfirmWindowNs)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}
