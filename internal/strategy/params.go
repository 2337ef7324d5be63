package strategy

import (
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/risk"
)

// Params expresses every tunable knob of the signal and fill pipeline.
// Values are immutable once a run starts; the optimizer copies and rewrites
// the swept fields rather than mutating a shared instance.
type Params struct {
	ThetaOFI  float64 // smoothed OFI threshold, in contracts
	ThetaImb  float64 // normalized book-imbalance threshold
	TickSize  float64 // minimum price increment (ES=0.25)
	TickValue float64 // currency per tick per contract (ES=12.5)

	SlipTicks int   // slippage budget per fill, in ticks
	MaxHoldNs int64 // force-close horizon for an open position

	MinSpreadTicks int // required quoted spread, in ticks
	MinBidSz       int // minimum bid size for a tradeable quote
	MinAskSz       int // minimum ask size for a tradeable quote

	PersistUpdates int   // consecutive identical votes before acting
	FlipCooldownNs int64 // minimum gap between closing and reversing

	TouchFill       bool  // zero slippage when filling a tight, sized book
	ConfirmWindowNs int64 // trade-confirmation recency window, 0 disables
}

// Defaults returns the permissive baseline used before any tuning, matching
// the ES contract.
func Defaults() Params {
	return Params{
		ThetaOFI:       5.0,
		ThetaImb:       0.25,
		TickSize:       0.25,
		TickValue:      12.5,
		SlipTicks:      1,
		MaxHoldNs:      2_000_000_000,
		MinSpreadTicks: 1,
		MinBidSz:       2,
		MinAskSz:       2,
		PersistUpdates: 3,
		FlipCooldownNs: 120_000_000,
		TouchFill:      true,
	}
}

// Gates derives the structural liquidity gates shared by the estimator, the
// fill simulator, and the day runner.
func (p Params) Gates() risk.Gates {
	return risk.Gates{
		TickSize:       p.TickSize,
		MinSpreadTicks: p.MinSpreadTicks,
		MinBidSz:       p.MinBidSz,
		MinAskSz:       p.MinAskSz,
	}
}
