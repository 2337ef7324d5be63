package backtest

import "sync"

// Ledger is the append-only sequence of realized per-trade PnLs produced by
// one run. The mutex only matters to the optimizer, which merges day ledgers
// from worker goroutines.
type Ledger struct {
	mu   sync.Mutex
	pnls []float64
}

// NewLedger creates an empty ledger optionally pre-sizing storage.
func NewLedger(capacity int) *Ledger {
	if capacity < 0 {
		capacity = 0
	}
	return &Ledger{pnls: make([]float64, 0, capacity)}
}

// Record appends one realized PnL.
func (l *Ledger) Record(pnl float64) {
	l.mu.Lock()
	l.pnls = append(l.pnls, pnl)
	l.mu.Unlock()
}

// Merge appends another run's PnLs in order.
func (l *Ledger) Merge(pnls []float64) {
	l.mu.Lock()
	l.pnls = append(l.pnls, pnls...)
	l.mu.Unlock()
}

// Snapshot returns a copy of the recorded PnLs.
func (l *Ledger) Snapshot() []float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]float64, len(l.pnls))
	copy(out, l.pnls)
	return out
}

// Total returns the sum of recorded PnLs.
func (l *Ledger) Total() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	var sum float64
	for _, x := range l.pnls {
		sum += x
	}
	return sum
}

// Len returns the number of recorded trades.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pnls)
}

// Reset clears the ledger.
func (l *Ledger) Reset() {
	l.mu.Lock()
	l.pnls = l.pnls[:0]
	l.mu.Unlock()
}
