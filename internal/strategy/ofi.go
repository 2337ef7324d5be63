// Package strategy contains the order-flow-imbalance signal estimator that
// turns a stream of level-1 quotes into gated directional recommendations.
package strategy

import (
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/market"
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/risk"
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/signal"
)

const (
	// ofiAlpha is the EWMA weight given to the newest OFI observation. It
	// damps single-tick noise while staying responsive within a handful of
	// updates.
	ofiAlpha = 0.2
	// skewBand is the microprice confirmation band in ticks; the skew must
	// clear it in the vote direction.
	skewBand = 0.05
)

// Estimator derives a smoothed OFI value and microprice skew from consecutive
// quotes and emits a debounced directional vote. All state lives on the
// instance: one Estimator per backtest run, never shared.
type Estimator struct {
	p     Params
	gates risk.Gates

	lastBidPx, lastAskPx float64
	lastBidSz, lastAskSz int
	havePrev             bool

	ofi float64

	streakDir int
	streak    int

	lastTradeTs  int64
	lastTradeDir int
}

// NewEstimator builds an estimator with neutral state.
func NewEstimator(p Params) *Estimator {
	if p.PersistUpdates <= 0 {
		p.PersistUpdates = 1
	}
	return &Estimator{p: p, gates: p.Gates()}
}

// OnQuote ingests one level-1 snapshot and returns the actionable signal for
// it, or nil when there is no opinion. Votes only become actionable once they
// have repeated for the configured persistence count and pass the liquidity
// and trade-confirmation gates.
func (e *Estimator) OnQuote(q market.QuoteL1) *signal.Signal {
	e.updateOFI(q)

	// L1 state moves forward only after OFI was computed against the
	// previous snapshot.
	e.lastBidPx, e.lastAskPx = q.BidPx, q.AskPx
	e.lastBidSz, e.lastAskSz = q.BidSz, q.AskSz
	e.havePrev = true

	raw := e.rawVote(q)
	if raw == 0 {
		e.streak, e.streakDir = 0, 0
		return nil
	}
	if raw == e.streakDir {
		e.streak++
	} else {
		e.streakDir, e.streak = raw, 1
	}
	if e.streak < e.p.PersistUpdates {
		return nil
	}
	if !e.confirmed(raw, q.Ts) {
		return nil
	}
	return &signal.Signal{Side: raw, OFI: e.ofi, Skew: e.SkewTicks(), Ts: q.Ts}
}

// OnTrade records the most recent aggressive trade for the confirmation gate.
func (e *Estimator) OnTrade(t market.Trade) {
	if d := t.Side.Dir(); d != 0 {
		e.lastTradeTs = t.Ts
		e.lastTradeDir = d
	}
}

// OFI returns the current smoothed order-flow imbalance.
func (e *Estimator) OFI() float64 { return e.ofi }

// Mid returns the midpoint of the last observed quote.
func (e *Estimator) Mid() float64 { return 0.5 * (e.lastBidPx + e.lastAskPx) }

// Micro returns the size-weighted microprice of the last observed quote.
// Sizes are clamped to one contract so a degenerate book never divides by
// zero.
func (e *Estimator) Micro() float64 {
	bsz := float64(max(1, e.lastBidSz))
	asz := float64(max(1, e.lastAskSz))
	return (e.lastAskPx*bsz + e.lastBidPx*asz) / (bsz + asz)
}

// SkewTicks returns the microprice skew of the last observed quote in ticks.
func (e *Estimator) SkewTicks() float64 {
	return (e.Micro() - e.Mid()) / e.p.TickSize
}

func (e *Estimator) updateOFI(q market.QuoteL1) {
	if !e.havePrev {
		e.ofi = 0
		return
	}
	// Level-shift classification: an improved price counts the whole new
	// queue as flow, a worsened price counts the whole old queue as the
	// opposite flow, an unchanged price contributes the size delta.
	var bidFlow float64
	switch {
	case q.BidPx > e.lastBidPx:
		bidFlow = float64(q.BidSz)
	case q.BidPx < e.lastBidPx:
		bidFlow = -float64(e.lastBidSz)
	default:
		bidFlow = float64(q.BidSz - e.lastBidSz)
	}
	var askFlow float64
	switch {
	case q.AskPx < e.lastAskPx:
		askFlow = float64(q.AskSz)
	case q.AskPx > e.lastAskPx:
		askFlow = -float64(e.lastAskSz)
	default:
		askFlow = float64(q.AskSz - e.lastAskSz)
	}
	e.ofi = (1-ofiAlpha)*e.ofi + ofiAlpha*(bidFlow-askFlow)
}

func (e *Estimator) rawVote(q market.QuoteL1) int {
	if !e.gates.Allow(q) {
		return 0
	}
	imb := normImbalance(q)
	skew := e.SkewTicks()
	switch {
	case e.ofi > e.p.ThetaOFI && imb > e.p.ThetaImb && skew > skewBand:
		return 1
	case e.ofi < -e.p.ThetaOFI && imb < -e.p.ThetaImb && skew < -skewBand:
		return -1
	}
	return 0
}

// confirmed applies the optional trade-confirmation gate: the last aggressive
// trade must agree with the vote and be recent enough.
func (e *Estimator) confirmed(dir int, ts int64) bool {
	if e.p.ConfirmWindowNs <= 0 {
		return true
	}
	if e.lastTradeDir != dir {
		return false
	}
	return ts-e.lastTradeTs <= e.p.ConfirmWindowNs
}

func normImbalance(q market.QuoteL1) float64 {
	denom := float64(q.BidSz + q.AskSz)
	if denom < 1 {
		denom = 1
	}
	return float64(q.BidSz-q.AskSz) / denom
}
