package integration

import (
	"math"
	"testing"

	"github.com/rs/zerolog"

	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/backtest"
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/market"
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/optimize"
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/risk"
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/stats"
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/strategy"
)

func flowParams() strategy.Params {
	return strategy.Params{
		ThetaOFI:       0.5,
		ThetaImb:       0.25,
		TickSize:       0.25,
		TickValue:      12.5,
		SlipTicks:      1,
		MaxHoldNs:      3_600_000_000_000,
		MinSpreadTicks: 1,
		MinBidSz:       2,
		MinAskSz:       2,
		PersistUpdates: 3,
	}
}

// syntheticDay builds a tight one-tick market where the bid queue builds for
// long enough to clear the persistence gate, the market rallies a tick, and
// the book then rebalances.
func syntheticDay() ([]market.QuoteL1, []market.Trade) {
	quotes := []market.QuoteL1{
		{Ts: 1_000_000_000, BidPx: 100.00, AskPx: 100.25, BidSz: 5, AskSz: 5},
		{Ts: 2_000_000_000, BidPx: 100.00, AskPx: 100.25, BidSz: 9, AskSz: 2},
		{Ts: 3_000_000_000, BidPx: 100.00, AskPx: 100.25, BidSz: 9, AskSz: 2},
		{Ts: 4_000_000_000, BidPx: 100.00, AskPx: 100.25, BidSz: 9, AskSz: 2},
		{Ts: 5_000_000_000, BidPx: 100.50, AskPx: 100.75, BidSz: 5, AskSz: 5},
	}
	trades := []market.Trade{
		{Ts: 1_500_000_000, Px: 100.25, Sz: 2, Side: market.AggressorBuy},
		{Ts: 3_500_000_000, Px: 100.25, Sz: 1, Side: market.AggressorBuy},
	}
	return quotes, trades
}

func TestBacktestFlowEndToEnd(t *testing.T) {
	quotes, trades := syntheticDay()
	runner := backtest.NewRunner(flowParams(), risk.Session{}, zerolog.Nop())

	res := runner.RunDay("20231002", quotes, trades)

	// The streak reaches three on the fourth quote, entry at the 100.125 mid
	// plus half-tick slippage; the end-of-day flatten exits at 100.625-0.125,
	// one tick in the position's favor.
	if res.Counters.Signals != 1 {
		t.Fatalf("expected one actionable signal, got %d", res.Counters.Signals)
	}
	if res.Trades() != 1 {
		t.Fatalf("expected one realized round trip, got %d", res.Trades())
	}
	if math.Abs(res.PnLs[0]-12.5) > 1e-9 {
		t.Fatalf("expected a one-tick winner, got %.4f", res.PnLs[0])
	}

	if wr := stats.WinRate(res.PnLs); wr != 100 {
		t.Fatalf("expected a 100%% win rate, got %.2f", wr)
	}
	if sh := stats.Sharpe(res.PnLs, stats.DefaultTradesPerYear); sh != 0 {
		t.Fatalf("single trade must score 0, got %.4f", sh)
	}
}

func TestOptimizerFlowOverSyntheticDays(t *testing.T) {
	quotes, trades := syntheticDay()
	session := risk.Session{}
	log := zerolog.Nop()

	runDay := func(ymd string, p strategy.Params) ([]float64, bool) {
		if ymd == "20231007" {
			return nil, false
		}
		res := backtest.NewRunner(p, session, log).RunDay(ymd, quotes, trades)
		return res.PnLs, true
	}

	grid := optimize.Grid{
		ThetaOFI:  []float64{0.5, 50.0}, // 50 never fires on this tape
		ThetaImb:  []float64{0.25},
		SlipTicks: []int{1},
		MaxHoldNs: []int64{3_600_000_000_000},
	}
	opt := optimize.New(flowParams(), grid, runDay, 4, 100, log)

	best, err := opt.Sweep([]string{"20231002", "20231007", "20231009"})
	if err != nil {
		t.Fatalf("Sweep returned error: %v", err)
	}
	if best.DaysUsed != 2 {
		t.Fatalf("expected missing day skipped, got %d", best.DaysUsed)
	}
	// Only the low threshold ever trades on this tape.
	if best.Combo.ThetaOFI != 0.5 {
		t.Fatalf("expected the trading combo to win, got %+v", best.Combo)
	}
	if best.Trades() != 2 {
		t.Fatalf("expected one trade per usable day, got %d", best.Trades())
	}

	val := opt.Evaluate([]string{"20231016"}, best.Combo)
	if val.DaysUsed != 1 || val.Trades() != 1 {
		t.Fatalf("unexpected validation outcome: %+v", val)
	}
}
