// Package feed loads per-day quote and trade CSVs produced by the DBN
// conversion tooling. Files live under <root>/csv/{mbp-1,trades}/ with
// fixed-point 1e-9 prices; a missing quotes file means the day is absent,
// a missing trades file just means a quotes-only day.
package feed

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/market"
)

const pxScale = 1e-9

// Day bundles one session's parsed streams, each ordered by timestamp.
type Day struct {
	Quotes []market.QuoteL1
	Trades []market.Trade
}

// QuotesPath returns the expected MBP-1 CSV path for a YYYYMMDD day.
func QuotesPath(root, ymd string) string {
	return filepath.Join(root, "csv", "mbp-1", "mbp1_"+ymd+".csv")
}

// TradesPath returns the expected trades CSV path for a YYYYMMDD day.
func TradesPath(root, ymd string) string {
	return filepath.Join(root, "csv", "trades", "trades_"+ymd+".csv")
}

// HasDay reports whether the day's quotes file exists on disk.
func HasDay(root, ymd string) bool {
	_, err := os.Stat(QuotesPath(root, ymd))
	return err == nil
}

// LoadDay reads the quote and trade CSVs for one day. The quotes file is
// required; the error wraps fs.ErrNotExist when it is missing so callers can
// skip absent days.
func LoadDay(root, ymd string) (Day, error) {
	var day Day

	quotes, err := loadQuotes(QuotesPath(root, ymd))
	if err != nil {
		return day, fmt.Errorf("quotes %s: %w", ymd, err)
	}
	day.Quotes = quotes

	trades, err := loadTrades(TradesPath(root, ymd))
	if err != nil {
		if os.IsNotExist(err) {
			return day, nil
		}
		return day, fmt.Errorf("trades %s: %w", ymd, err)
	}
	day.Trades = trades
	return day, nil
}

// loadQuotes parses rows of ts_recv_ns,bid_px_int,bid_sz,ask_px_int,ask_sz.
func loadQuotes(path string) ([]market.QuoteL1, error) {
	rows, err := readRows(path, 5)
	if err != nil {
		return nil, err
	}
	quotes := make([]market.QuoteL1, 0, len(rows))
	for _, rec := range rows {
		ts, err1 := strconv.ParseInt(rec[0], 10, 64)
		bidPx, err2 := strconv.ParseInt(rec[1], 10, 64)
		bidSz, err3 := strconv.Atoi(rec[2])
		askPx, err4 := strconv.ParseInt(rec[3], 10, 64)
		askSz, err5 := strconv.Atoi(rec[4])
		if err := firstErr(err1, err2, err3, err4, err5); err != nil {
			return nil, fmt.Errorf("parse quote row: %w", err)
		}
		quotes = append(quotes, market.QuoteL1{
			Ts:    ts,
			BidPx: float64(bidPx) * pxScale,
			AskPx: float64(askPx) * pxScale,
			BidSz: bidSz,
			AskSz: askSz,
		})
	}
	return quotes, nil
}

// loadTrades parses rows of ts_recv_ns,px_int,sz,side (1=buy, 2=sell, 0=unknown).
func loadTrades(path string) ([]market.Trade, error) {
	rows, err := readRows(path, 4)
	if err != nil {
		return nil, err
	}
	trades := make([]market.Trade, 0, len(rows))
	for _, rec := range rows {
		ts, err1 := strconv.ParseInt(rec[0], 10, 64)
		px, err2 := strconv.ParseInt(rec[1], 10, 64)
		sz, err3 := strconv.Atoi(rec[2])
		side, err4 := strconv.Atoi(rec[3])
		if err := firstErr(err1, err2, err3, err4); err != nil {
			return nil, fmt.Errorf("parse trade row: %w", err)
		}
		trades = append(trades, market.Trade{
			Ts:   ts,
			Px:   float64(px) * pxScale,
			Sz:   sz,
			Side: market.Aggressor(side),
		})
	}
	return trades, nil
}

func readRows(path string, fields int) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = fields
	reader.ReuseRecord = false

	var rows [][]string
	first := true
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		// The converter may emit a header row; detect it by the
		// non-numeric timestamp column.
		if first {
			first = false
			if _, convErr := strconv.ParseInt(rec[0], 10, 64); convErr != nil {
				continue
			}
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
