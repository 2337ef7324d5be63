// Package signal standardizes the payload passed from the estimator to the
// fill simulator. A nil *Signal means "no opinion"; Side 0 on a non-nil
// Signal means "go flat", which is a different thing.
package signal

// Signal expresses a directional recommendation produced per quote.
type Signal struct {
	Side int     // +1 long, -1 short, 0 flat
	OFI  float64 // smoothed order-flow imbalance at emission time
	Skew float64 // microprice skew in ticks at emission time
	Ts   int64   // timestamp of the quote that produced the signal
}
