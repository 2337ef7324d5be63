// Package optimize sweeps the parameter grid over a training date range,
// picks the best-scoring combination, and re-evaluates it out of sample.
package optimize

import (
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/metrics"
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/stats"
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/strategy"
)

// ErrNoTrainingData is returned when no training day produced any data for
// any combination. It is the one condition that aborts a whole optimization.
var ErrNoTrainingData = errors.New("no training day produced any data")

// DayRunner executes one (day, parameter set) backtest. It reports ok=false
// when the day's data is absent; such days are skipped, not failed.
type DayRunner func(ymd string, p strategy.Params) (pnls []float64, ok bool)

// ComboResult aggregates one combination's ledger across every day it ran.
type ComboResult struct {
	Combo    Combo
	PnLs     []float64
	Total    float64
	DaysUsed int
	Sharpe   float64
	WinRate  float64
}

// Trades returns the aggregate round-trip count.
func (cr ComboResult) Trades() int { return len(cr.PnLs) }

// Optimizer drives the grid sweep. Each worker owns its own estimator and
// simulator instances (constructed inside the DayRunner), so combinations can
// be evaluated concurrently; results are collected by enumeration index and
// scored after the sweep, keeping selection deterministic.
type Optimizer struct {
	base          strategy.Params
	grid          Grid
	run           DayRunner
	workers       int
	tradesPerYear float64
	log           zerolog.Logger
}

// New builds an optimizer. workers <= 0 runs the sweep on one goroutine.
func New(base strategy.Params, grid Grid, run DayRunner, workers int, tradesPerYear float64, log zerolog.Logger) *Optimizer {
	if workers <= 0 {
		workers = 1
	}
	return &Optimizer{
		base:          base,
		grid:          grid,
		run:           run,
		workers:       workers,
		tradesPerYear: tradesPerYear,
		log:           log,
	}
}

// Sweep evaluates every combination over the training days and returns the
// strictly best-scoring one; ties keep the first in enumeration order.
func (o *Optimizer) Sweep(days []string) (ComboResult, error) {
	combos := o.grid.Combos()
	if len(combos) == 0 {
		return ComboResult{}, errors.New("empty parameter grid")
	}
	results := make([]ComboResult, len(combos))

	var g errgroup.Group
	g.SetLimit(o.workers)
	for idx, combo := range combos {
		idx, combo := idx, combo
		g.Go(func() error {
			results[idx] = o.evaluate(days, combo)
			metrics.CombosTotal.Inc()
			o.log.Info().
				Str("combo", combo.String()).
				Int("trades", results[idx].Trades()).
				Int("days", results[idx].DaysUsed).
				Float64("pnl", results[idx].Total).
				Float64("sharpe", results[idx].Sharpe).
				Msg("train sweep")
			return nil
		})
	}
	// Workers never fail; absent days are skipped inside evaluate.
	_ = g.Wait()

	best := -1
	for i := range results {
		if results[i].DaysUsed == 0 {
			continue
		}
		if best < 0 || results[i].Sharpe > results[best].Sharpe {
			best = i
		}
	}
	if best < 0 {
		return ComboResult{}, ErrNoTrainingData
	}
	return results[best], nil
}

// Evaluate re-runs one combination over a held-out date range, sequentially.
func (o *Optimizer) Evaluate(days []string, combo Combo) ComboResult {
	return o.evaluate(days, combo)
}

func (o *Optimizer) evaluate(days []string, combo Combo) ComboResult {
	p := combo.Apply(o.base)
	res := ComboResult{Combo: combo}
	for _, ymd := range days {
		pnls, ok := o.run(ymd, p)
		if !ok {
			continue
		}
		res.DaysUsed++
		res.PnLs = append(res.PnLs, pnls...)
		for _, x := range pnls {
			res.Total += x
		}
	}
	res.Sharpe = stats.Sharpe(res.PnLs, o.tradesPerYear)
	res.WinRate = stats.WinRate(res.PnLs)
	return res
}
