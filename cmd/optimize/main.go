package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/backtest"
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/config"
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/feed"
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/metrics"
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/optimize"
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/strategy"
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/util"
)

// Sweeps the parameter grid over the training range, reports the best
// combination, then re-evaluates it on the held-out validation range.
func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("OFIBT_CONFIG")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		boot := util.NewLogger("info")
		boot.Fatal().Err(err).Str("path", cfgPath).Msg("load config")
	}
	log := util.NewLogger(cfg.App.LogLevel)

	if cfg.App.MetricsAddr != "" {
		_ = metrics.Serve(cfg.App.MetricsAddr)
		log.Info().Str("addr", cfg.App.MetricsAddr).Msg("metrics up")
	}

	trainDays, err := feed.DateRange(cfg.Dates.TrainStart, cfg.Dates.TrainEnd)
	if err != nil {
		log.Fatal().Err(err).Msg("training range")
	}
	validDays, err := feed.DateRange(cfg.Dates.ValidStart, cfg.Dates.ValidEnd)
	if err != nil {
		log.Fatal().Err(err).Msg("validation range")
	}

	grid := optimize.Grid{
		ThetaOFI:  cfg.Grid.ThetaOFI,
		ThetaImb:  cfg.Grid.ThetaImb,
		SlipTicks: cfg.Grid.SlipTicks,
	}
	for _, ms := range cfg.Grid.MaxHoldMs {
		grid.MaxHoldNs = append(grid.MaxHoldNs, ms*1_000_000)
	}

	session := cfg.Session.Window()
	runDay := func(ymd string, p strategy.Params) ([]float64, bool) {
		if !feed.HasDay(cfg.Data.Root, ymd) {
			return nil, false
		}
		day, err := feed.LoadDay(cfg.Data.Root, ymd)
		if err != nil {
			log.Warn().Err(err).Str("day", ymd).Msg("skipping unreadable day")
			return nil, false
		}
		res := backtest.NewRunner(p, session, log).RunDay(ymd, day.Quotes, day.Trades)
		return res.PnLs, true
	}

	opt := optimize.New(
		cfg.Strategy.Params(),
		grid,
		runDay,
		cfg.Optimize.Workers,
		cfg.Stats.TradesPerYearOrDefault(),
		log,
	)

	best, err := opt.Sweep(trainDays)
	if err != nil {
		log.Fatal().Err(err).Msg("train sweep")
	}

	fmt.Printf("\n=== BEST ON TRAIN ===\n%s | trades=%d pnl=$%.2f sharpe=%.2f\n\n",
		best.Combo, best.Trades(), best.Total, best.Sharpe)

	val := opt.Evaluate(validDays, best.Combo)
	fmt.Printf("=== VALIDATION (%s-%s) ===\ndays=%d trades=%d pnl=$%.2f sharpe=%.2f win%%=%.2f\n",
		cfg.Dates.ValidStart, cfg.Dates.ValidEnd,
		val.DaysUsed, val.Trades(), val.Total, val.Sharpe, val.WinRate)
}
