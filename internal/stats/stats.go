// Package stats reduces a trade-PnL ledger to summary performance numbers.
package stats

import "math"

// DefaultTradesPerYear is the assumed trading cadence used for the Sharpe
// annualization when the caller does not configure one: roughly sixty round
// trips a day over 252 sessions.
const DefaultTradesPerYear = 60.0 * 252.0

const varFloor = 1e-12

// WinRate returns the percentage of strictly positive PnLs, 0 for an empty
// ledger.
func WinRate(pnls []float64) float64 {
	if len(pnls) == 0 {
		return 0
	}
	wins := 0
	for _, x := range pnls {
		if x > 0 {
			wins++
		}
	}
	return 100.0 * float64(wins) / float64(len(pnls))
}

// Sharpe returns an annualized Sharpe-like ratio over per-trade PnLs. Each
// realized PnL is treated as a trade-return proxy and the ratio is scaled by
// sqrt(tradesPerYear); this is a coarse cadence-based annualization, not a
// time-weighted Sharpe ratio. Fewer than two trades yields exactly 0.
func Sharpe(pnls []float64, tradesPerYear float64) float64 {
	if len(pnls) < 2 {
		return 0
	}
	if tradesPerYear <= 0 {
		tradesPerYear = DefaultTradesPerYear
	}
	// Welford running mean/variance, single pass.
	var mean, m2 float64
	for i, x := range pnls {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)
	}
	variance := m2 / float64(len(pnls)-1)
	sd := math.Sqrt(math.Max(varFloor, variance))
	return mean / sd * math.Sqrt(tradesPerYear)
}
