package risk

import (
	"testing"

	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/market"
)

func TestAllow(t *testing.T) {
	gates := Gates{TickSize: 0.25, MinSpreadTicks: 1, MinBidSz: 2, MinAskSz: 2}

	tight := market.QuoteL1{BidPx: 100.00, AskPx: 100.25, BidSz: 5, AskSz: 5}
	if !gates.Allow(tight) {
		t.Fatalf("expected one-tick liquid quote to pass")
	}

	wide := market.QuoteL1{BidPx: 100.00, AskPx: 100.50, BidSz: 5, AskSz: 5}
	if gates.Allow(wide) {
		t.Fatalf("expected two-tick spread to fail")
	}

	thin := market.QuoteL1{BidPx: 100.00, AskPx: 100.25, BidSz: 5, AskSz: 1}
	if gates.Allow(thin) {
		t.Fatalf("expected undersized ask to fail")
	}
}

func TestSessionContains(t *testing.T) {
	rth := Session{Enabled: true, StartSec: 48600, EndSec: 72000} // 13:30-20:00 UTC

	inside := int64(50000) * 1_000_000_000
	if !rth.Contains(inside) {
		t.Fatalf("expected in-session timestamp to pass")
	}
	before := int64(48599) * 1_000_000_000
	if rth.Contains(before) {
		t.Fatalf("expected pre-open timestamp to fail")
	}
	atClose := int64(72000) * 1_000_000_000
	if rth.Contains(atClose) {
		t.Fatalf("expected close boundary to be exclusive")
	}

	off := Session{}
	if !off.Contains(before) {
		t.Fatalf("disabled session should contain everything")
	}
}
