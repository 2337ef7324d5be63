package feed

import (
	"fmt"
	"time"
)

const ymdLayout = "20060102"

// DateRange expands an inclusive YYYYMMDD range into the list of calendar
// days it covers. Weekends and holidays are not filtered here; days without
// data files are skipped at load time instead.
func DateRange(start, end string) ([]string, error) {
	from, err := time.Parse(ymdLayout, start)
	if err != nil {
		return nil, fmt.Errorf("start day %q: %w", start, err)
	}
	to, err := time.Parse(ymdLayout, end)
	if err != nil {
		return nil, fmt.Errorf("end day %q: %w", end, err)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("end day %s before start day %s", end, start)
	}
	var days []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(ymdLayout))
	}
	return days, nil
}
