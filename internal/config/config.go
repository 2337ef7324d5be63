// Package config exposes strongly typed application configuration structs loaded from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/risk"
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/stats"
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/strategy"
)

// App captures process-wide runtime settings such as name, environment, metrics, and logging levels.
type App struct {
	Name        string `yaml:"name"`
	Env         string `yaml:"env"`
	MetricsAddr string `yaml:"metrics_addr"`
	LogLevel    string `yaml:"log_level"`
}

// Data locates the per-day CSV files and the optional trade dump.
type Data struct {
	Root      string `yaml:"root"`
	FillsPath string `yaml:"fills_path"`
}

// Session is the trading window applied to every replay, in seconds since
// midnight UTC.
type Session struct {
	Enabled  bool  `yaml:"enabled"`
	StartSec int64 `yaml:"start_sec"`
	EndSec   int64 `yaml:"end_sec"`
}

// Window converts to the risk-layer session gate.
func (s Session) Window() risk.Session {
	return risk.Session{Enabled: s.Enabled, StartSec: s.StartSec, EndSec: s.EndSec}
}

// Strategy groups every tunable knob of the signal and fill pipeline.
// Durations are milliseconds here and nanoseconds internally.
type Strategy struct {
	ThetaOFI        float64 `yaml:"theta_ofi"`
	ThetaImb        float64 `yaml:"theta_imb"`
	TickSize        float64 `yaml:"tick_size"`
	TickValue       float64 `yaml:"tick_value"`
	SlipTicks       int     `yaml:"slip_ticks"`
	MaxHoldMs       int64   `yaml:"max_hold_ms"`
	MinSpreadTicks  int     `yaml:"min_spread_ticks"`
	MinBidSz        int     `yaml:"min_bid_sz"`
	MinAskSz        int     `yaml:"min_ask_sz"`
	PersistUpdates  int     `yaml:"persist_updates"`
	FlipCooldownMs  int64   `yaml:"flip_cooldown_ms"`
	TouchFill       bool    `yaml:"touch_fill"`
	ConfirmWindowMs int64   `yaml:"confirm_window_ms"`
}

// Params converts the YAML representation into run parameters, falling back
// to the product defaults for anything left unset.
func (s Strategy) Params() strategy.Params {
	p := strategy.Defaults()
	if s.ThetaOFI > 0 {
		p.ThetaOFI = s.ThetaOFI
	}
	if s.ThetaImb > 0 {
		p.ThetaImb = s.ThetaImb
	}
	if s.TickSize > 0 {
		p.TickSize = s.TickSize
	}
	if s.TickValue > 0 {
		p.TickValue = s.TickValue
	}
	if s.SlipTicks > 0 {
		p.SlipTicks = s.SlipTicks
	}
	if s.MaxHoldMs > 0 {
		p.MaxHoldNs = s.MaxHoldMs * 1_000_000
	}
	if s.MinSpreadTicks > 0 {
		p.MinSpreadTicks = s.MinSpreadTicks
	}
	if s.MinBidSz > 0 {
		p.MinBidSz = s.MinBidSz
	}
	if s.MinAskSz > 0 {
		p.MinAskSz = s.MinAskSz
	}
	if s.PersistUpdates > 0 {
		p.PersistUpdates = s.PersistUpdates
	}
	if s.FlipCooldownMs > 0 {
		p.FlipCooldownNs = s.FlipCooldownMs * 1_000_000
	}
	p.TouchFill = s.TouchFill
	p.ConfirmWindowNs = s.ConfirmWindowMs * 1_000_000
	return p
}

// Grid enumerates the candidate values swept by the optimizer.
type Grid struct {
	ThetaOFI  []float64 `yaml:"theta_ofi"`
	ThetaImb  []float64 `yaml:"theta_imb"`
	SlipTicks []int     `yaml:"slip_ticks"`
	MaxHoldMs []int64   `yaml:"max_hold_ms"`
}

// Dates bounds the training and validation ranges, inclusive YYYYMMDD.
type Dates struct {
	TrainStart string `yaml:"train_start"`
	TrainEnd   string `yaml:"train_end"`
	ValidStart string `yaml:"valid_start"`
	ValidEnd   string `yaml:"valid_end"`
}

// Stats tunes the statistics engine.
type Stats struct {
	TradesPerYear float64 `yaml:"trades_per_year"`
}

// TradesPerYearOrDefault returns the configured cadence or the ES heuristic.
func (s Stats) TradesPerYearOrDefault() float64 {
	if s.TradesPerYear > 0 {
		return s.TradesPerYear
	}
	return stats.DefaultTradesPerYear
}

// Optimize tunes the sweep itself.
type Optimize struct {
	Workers int `yaml:"workers"`
}

// Config collects every configuration leaf for easy marshaling from YAML.
type Config struct {
	App      App      `yaml:"app"`
	Data     Data     `yaml:"data"`
	Session  Session  `yaml:"session"`
	Strategy Strategy `yaml:"strategy"`
	Grid     Grid     `yaml:"grid"`
	Dates    Dates    `yaml:"dates"`
	Stats    Stats    `yaml:"stats"`
	Optimize Optimize `yaml:"optimize"`
}

// Load reads a YAML file from disk and hydrates a Config struct.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var config Config
	if err := yaml.NewDecoder(file).Decode(&config); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return &config, nil
}

// Save persists a Config struct to disk as YAML.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
