// Package sim implements the one-position fill state machine that turns
// estimator signals into simulated entries, exits, and realized PnL.
package sim

import (
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/market"
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/risk"
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/signal"
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/strategy"
)

// Position is the single open position a simulator may hold.
type Position struct {
	Side    int // +1 long, -1 short, 0 flat
	EntryPx float64
	EntryTs int64
}

// Simulator opens, holds, flips, and force-closes at most one position at a
// time. One instance per backtest run; it is not safe for concurrent use and
// never needs to be.
type Simulator struct {
	p     strategy.Params
	gates risk.Gates

	pos        Position
	lastFlipTs int64
}

// New builds a flat simulator for the given parameter set.
func New(p strategy.Params) *Simulator {
	return &Simulator{p: p, gates: p.Gates()}
}

// Position returns the current position state.
func (s *Simulator) Position() Position { return s.pos }

// ActAndFill advances the state machine for one quote event. A nil sig means
// no opinion; a non-nil sig with Side 0 requests a flatten. The return value
// is the PnL realized by any exit on this event, zero otherwise.
//
// The time exit takes priority: once a position has been held past the
// maximum horizon it is closed at the current reference price regardless of
// what the signal says, and a later event may re-open.
func (s *Simulator) ActAndFill(ts int64, q market.QuoteL1, sig *signal.Signal) float64 {
	ref := q.Mid()

	if s.pos.Side != 0 && ts-s.pos.EntryTs > s.p.MaxHoldNs {
		realized := s.close(ref, s.slip(q))
		s.lastFlipTs = ts
		return realized
	}

	if sig == nil || sig.Side == s.pos.Side {
		return 0
	}

	// Reversing an open position is rate-limited: a flip attempted inside
	// the cooldown is rejected outright, leaving the position untouched.
	if s.pos.Side != 0 && sig.Side != 0 {
		if ts-s.lastFlipTs < s.p.FlipCooldownNs {
			return 0
		}
	}

	adj := s.slip(q)
	var realized float64
	if s.pos.Side != 0 {
		realized = s.close(ref, adj)
	}
	if sig.Side != 0 {
		s.pos = Position{Side: sig.Side, EntryPx: ref + float64(sig.Side)*adj, EntryTs: ts}
	}
	s.lastFlipTs = ts
	return realized
}

// slip returns the price adjustment applied against the position. A tight,
// adequately sized book fills at the touch when touch fills are enabled;
// everything else pays half the configured slippage budget.
func (s *Simulator) slip(q market.QuoteL1) float64 {
	if s.p.TouchFill && s.gates.Allow(q) {
		return 0
	}
	return 0.5 * float64(s.p.SlipTicks) * s.p.TickSize
}

// close realizes the open position against the reference price and returns
// the PnL in currency.
func (s *Simulator) close(ref, adj float64) float64 {
	exit := ref - float64(s.pos.Side)*adj
	ticks := (exit - s.pos.EntryPx) / s.p.TickSize * float64(s.pos.Side)
	s.pos = Position{}
	return ticks * s.p.TickValue
}
