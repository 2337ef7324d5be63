package market

// Merge combines a quote sequence and a trade sequence, each individually
// non-decreasing by timestamp, into one stream ordered by timestamp. When a
// quote and a trade carry the same timestamp the quote is emitted first so
// replays are reproducible.
func Merge(quotes []QuoteL1, trades []Trade) []Event {
	events := make([]Event, 0, len(quotes)+len(trades))
	i, j := 0, 0
	for i < len(quotes) || j < len(trades) {
		takeQuote := j == len(trades) || (i < len(quotes) && quotes[i].Ts <= trades[j].Ts)
		if takeQuote {
			events = append(events, Event{Kind: EventQuote, Ts: quotes[i].Ts, Quote: quotes[i]})
			i++
		} else {
			events = append(events, Event{Kind: EventTrade, Ts: trades[j].Ts, Trade: trades[j]})
			j++
		}
	}
	return events
}
