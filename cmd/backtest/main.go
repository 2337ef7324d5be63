package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/backtest"
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/config"
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/feed"
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/stats"
	"github.com/vivek-varma/ofi-microprice-queue-HFT/internal/util"
)

// Replays one day under the configured parameters and prints the trade
// report plus the gate funnel. Day defaults to the start of the training
// range; override with the first argument: backtest 20231002
func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("OFIBT_CONFIG")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		boot := util.NewLogger("info")
		boot.Fatal().Err(err).Str("path", cfgPath).Msg("load config")
	}
	log := util.NewLogger(cfg.App.LogLevel)

	ymd := cfg.Dates.TrainStart
	if len(os.Args) > 1 {
		ymd = os.Args[1]
	}

	day, err := feed.LoadDay(cfg.Data.Root, ymd)
	if err != nil {
		log.Fatal().Err(err).Str("day", ymd).Msg("load day")
	}
	log.Info().Str("day", ymd).Int("quotes", len(day.Quotes)).Int("trades", len(day.Trades)).Msg("day loaded")

	runner := backtest.NewRunner(cfg.Strategy.Params(), cfg.Session.Window(), log)
	if cfg.Data.FillsPath != "" {
		rec, err := backtest.NewJSONLRecorder(cfg.Data.FillsPath)
		if err != nil {
			log.Fatal().Err(err).Msg("open fills recorder")
		}
		defer rec.Close()
		runner.WithRecorder(rec)
	}

	res := runner.RunDay(ymd, day.Quotes, day.Trades)

	fmt.Printf("Trades: %d  Win%%: %.2f  PnL: $%.2f  Sharpe~ %.2f\n",
		res.Trades(),
		stats.WinRate(res.PnLs),
		res.Total,
		stats.Sharpe(res.PnLs, cfg.Stats.TradesPerYearOrDefault()))

	c := res.Counters
	fmt.Printf("[diag] quotes_total=%d in_session=%d spread1=%d size_ok=%d sig_nonempty=%d fills=%d\n",
		c.Quotes, c.InSession, c.SpreadOK, c.SizeOK, c.Signals, c.Fills)
}
