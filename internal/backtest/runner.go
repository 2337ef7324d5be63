// Package backtest replays one day's merged event stream through a fresh
// estimator/simulator pair and accumulates the realized-PnL ledger.
package backtest

import (
	"github.com/rs/zerolog"

	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/market"
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/metrics"
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/risk"
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/signal"
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/sim"
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/strategy"
)

// Counters is the gate funnel for one day: how many quotes survived each
// filter stage, how many signals fired, how many round trips realized PnL.
type Counters struct {
	Quotes    int
	InSession int
	SpreadOK  int
	SizeOK    int
	Signals   int
	Fills     int
}

// Result is the outcome of one (parameter set, day) run.
type Result struct {
	Day      string
	PnLs     []float64
	Total    float64
	Counters Counters
}

// Trades returns the number of realized round trips.
func (r Result) Trades() int { return len(r.PnLs) }

// Runner replays days under one immutable parameter set. Estimator and
// simulator state is constructed inside RunDay and discarded with it, so a
// single Runner may be reused across days and goroutines.
type Runner struct {
	p       strategy.Params
	session risk.Session
	gates   risk.Gates
	rec     Recorder
	log     zerolog.Logger
}

// NewRunner builds a runner for the given parameters and session window.
func NewRunner(p strategy.Params, session risk.Session, log zerolog.Logger) *Runner {
	return &Runner{p: p, session: session, gates: p.Gates(), log: log}
}

// WithRecorder attaches a per-trade recorder and returns the runner.
func (r *Runner) WithRecorder(rec Recorder) *Runner {
	r.rec = rec
	return r
}

// RunDay merges the day's quote and trade streams and replays them in order.
// Trades only feed the confirmation tracker; quotes pass the session filter
// and the same structural gates the estimator applies before any signal is
// taken. Any position still open at the end of the day is flattened at the
// last session-eligible midprice.
func (r *Runner) RunDay(day string, quotes []market.QuoteL1, trades []market.Trade) Result {
	events := market.Merge(quotes, trades)
	est := strategy.NewEstimator(r.p)
	fills := sim.New(r.p)
	ledger := NewLedger(256)
	var c Counters

	for _, e := range events {
		if e.Kind == market.EventTrade {
			est.OnTrade(e.Trade)
			continue
		}
		q := e.Quote
		c.Quotes++
		if !r.session.Contains(e.Ts) {
			continue
		}
		c.InSession++
		// Mirror the estimator's structural gates here so the runner and
		// the estimator can never disagree about which quotes trade.
		if !r.gates.SpreadOK(q) {
			continue
		}
		c.SpreadOK++
		if !r.gates.SizeOK(q) {
			continue
		}
		c.SizeOK++

		sig := est.OnQuote(q)
		if sig != nil {
			c.Signals++
		}
		if realized := fills.ActAndFill(e.Ts, q, sig); realized != 0 {
			ledger.Record(realized)
			c.Fills++
			r.record(day, e.Ts, realized)
		}
	}

	// A day never carries an open position into the next one.
	if fills.Position().Side != 0 && len(quotes) > 0 {
		last := quotes[len(quotes)-1]
		if r.session.Contains(last.Ts) {
			flat := &signal.Signal{Side: 0, Ts: last.Ts}
			if realized := fills.ActAndFill(last.Ts, last, flat); realized != 0 {
				ledger.Record(realized)
				c.Fills++
				r.record(day, last.Ts, realized)
			}
		}
	}

	metrics.QuotesTotal.WithLabelValues(day).Add(float64(c.Quotes))
	metrics.QuotesGatedTotal.WithLabelValues(day).Add(float64(c.SizeOK))
	metrics.SignalsTotal.WithLabelValues(day).Add(float64(c.Signals))
	metrics.FillsTotal.WithLabelValues(day).Add(float64(c.Fills))

	pnls := ledger.Snapshot()
	res := Result{Day: day, PnLs: pnls, Total: ledger.Total(), Counters: c}
	r.log.Debug().
		Str("day", day).
		Int("quotes", c.Quotes).
		Int("gated", c.SizeOK).
		Int("signals", c.Signals).
		Int("trades", res.Trades()).
		Float64("pnl", res.Total).
		Msg("day replayed")
	return res
}

func (r *Runner) record(day string, ts int64, pnl float64) {
	if r.rec != nil {
		r.rec.Record(TradeRow{Day: day, Ts: ts, PnL: pnl})
	}
}
