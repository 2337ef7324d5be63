// Package market defines the level-1 market data records the backtester
// replays: top-of-book quotes, trades, and the merged event stream.
package market

// Aggressor identifies which side initiated a trade.
type Aggressor int8

const (
	// AggressorUnknown means the venue did not flag the taker side.
	AggressorUnknown Aggressor = 0
	// AggressorBuy means the buyer lifted the offer.
	AggressorBuy Aggressor = 1
	// AggressorSell means the seller hit the bid.
	AggressorSell Aggressor = 2
)

// Dir maps the aggressor side onto a signed direction (+1 buy, -1 sell, 0 unknown).
func (a Aggressor) Dir() int {
	switch a {
	case AggressorBuy:
		return 1
	case AggressorSell:
		return -1
	default:
		return 0
	}
}

// QuoteL1 is a top-of-book snapshot. Prices are in instrument units,
// timestamps in nanoseconds since the epoch.
type QuoteL1 struct {
	Ts    int64
	BidPx float64
	AskPx float64
	BidSz int
	AskSz int
}

// Mid returns the simple midpoint of the quote.
func (q QuoteL1) Mid() float64 { return 0.5 * (q.BidPx + q.AskPx) }

// Spread returns the quoted spread in price units.
func (q QuoteL1) Spread() float64 { return q.AskPx - q.BidPx }

// Trade is a single print with its (possibly unknown) aggressor side.
type Trade struct {
	Ts   int64
	Px   float64
	Sz   int
	Side Aggressor
}

// EventKind discriminates the Event union.
type EventKind int8

const (
	// EventQuote tags a quote event.
	EventQuote EventKind = 0
	// EventTrade tags a trade event.
	EventTrade EventKind = 1
)

// Event is one element of the merged day stream. Exactly one of Quote or
// Trade is meaningful, selected by Kind; Ts duplicates the record timestamp
// so consumers never branch just to read the clock.
type Event struct {
	Kind  EventKind
	Ts    int64
	Quote QuoteL1
	Trade Trade
}
