// Package risk holds the structural trade gates: liquidity checks on the
// quoted book and the trading-session window. The estimator and the day
// runner share one Gates value so the two can never disagree about which
// quotes are tradeable.
package risk

import (
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/market"
)

const spreadEps = 1e-9

// Gates encodes the liquidity requirements a quote must satisfy before any
// signal may act on it.
type Gates struct {
	TickSize       float64
	MinSpreadTicks int
	MinBidSz       int
	MinAskSz       int
}

// SpreadOK reports whether the quoted spread equals exactly the required
// number of ticks. Wide or crossed books never trade.
func (g Gates) SpreadOK(q market.QuoteL1) bool {
	want := float64(g.MinSpreadTicks) * g.TickSize
	diff := q.Spread() - want
	return diff < spreadEps && diff > -spreadEps
}

// SizeOK reports whether both sides of the book meet the configured minimums.
func (g Gates) SizeOK(q market.QuoteL1) bool {
	return q.BidSz >= g.MinBidSz && q.AskSz >= g.MinAskSz
}

// Allow reports whether a quote passes every structural gate.
func (g Gates) Allow(q market.QuoteL1) bool {
	return g.SpreadOK(q) && g.SizeOK(q)
}

// Session is a daily trading window expressed as seconds since midnight UTC.
// Disabled sessions contain every timestamp.
type Session struct {
	Enabled  bool
	StartSec int64
	EndSec   int64
}

// Contains reports whether the nanosecond timestamp falls inside the window.
func (s Session) Contains(ts int64) bool {
	if !s.Enabled {
		return true
	}
	sec := ts / 1_000_000_000
	secInDay := ((sec % 86400) + 86400) % 86400
	return secInDay >= s.StartSec && secInDay < s.EndSec
}
