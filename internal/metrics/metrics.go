package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	QuotesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "quotes_total", Help: "Quotes replayed per day"},
		[]string{"day"},
	)
	QuotesGatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "quotes_gated_total", Help: "Quotes passing session, spread, and size gates per day"},
		[]string{"day"},
	)
	SignalsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "signals_total", Help: "Actionable signals emitted per day"},
		[]string{"day"},
	)
	FillsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "fills_total", Help: "Realized round trips per day"},
		[]string{"day"},
	)
	CombosTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "combos_total", Help: "Parameter combinations evaluated by the optimizer"},
	)
)

func init() {
	prometheus.MustRegister(QuotesTotal, QuotesGatedTotal, SignalsTotal, FillsTotal, CombosTotal)
}

func Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() { _ = srv.ListenAndServe() }()
	return srv
}
