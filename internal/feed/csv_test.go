package feed

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/market"
)

const root = "testdata/data"

func TestLoadDayParsesQuotesAndTrades(t *testing.T) {
	day, err := LoadDay(root, "20231002")
	if err != nil {
		t.Fatalf("LoadDay returned error: %v", err)
	}

	if len(day.Quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(day.Quotes))
	}
	q := day.Quotes[0]
	if q.Ts != 1696257000000000000 {
		t.Fatalf("unexpected quote ts: %d", q.Ts)
	}
	if math.Abs(q.BidPx-100.00) > 1e-9 || math.Abs(q.AskPx-100.25) > 1e-9 {
		t.Fatalf("fixed-point price conversion broken: %+v", q)
	}
	if q.BidSz != 5 || q.AskSz != 5 {
		t.Fatalf("unexpected sizes: %+v", q)
	}

	if len(day.Trades) != 2 {
		t.Fatalf("expected 2 trades, got %d", len(day.Trades))
	}
	if day.Trades[0].Side != market.AggressorBuy || day.Trades[1].Side != market.AggressorSell {
		t.Fatalf("aggressor mapping broken: %+v", day.Trades)
	}
	if day.Trades[0].Sz != 3 {
		t.Fatalf("unexpected trade size: %d", day.Trades[0].Sz)
	}
}

func TestLoadDayQuotesOnly(t *testing.T) {
	day, err := LoadDay(root, "20231003")
	if err != nil {
		t.Fatalf("a missing trades file is not an error: %v", err)
	}
	if len(day.Quotes) != 1 || len(day.Trades) != 0 {
		t.Fatalf("expected quotes-only day, got %d/%d", len(day.Quotes), len(day.Trades))
	}
}

func TestLoadDayMissingQuotes(t *testing.T) {
	_, err := LoadDay(root, "20231099")
	if err == nil {
		t.Fatalf("expected error for absent day")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("error should preserve not-exist, got %v", err)
	}
}

func TestLoadDayMalformedRow(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "csv", "mbp-1")
	if err := os.MkdirAll(bad, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(bad, "mbp1_20231002.csv"), []byte("1,notaprice,5,2,5\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadDay(dir, "20231002"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestHasDay(t *testing.T) {
	if !HasDay(root, "20231002") {
		t.Fatalf("expected 20231002 present")
	}
	if HasDay(root, "20231099") {
		t.Fatalf("expected 20231099 absent")
	}
}
