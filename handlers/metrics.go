package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var pageCallCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "zeonix_page_call_count",
	Help: "Number of page calls by page name",
}, []string{"page"})

var pageCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "zeonix_page_call_duration_seconds",
	Help:    "Duration of page calls by page name",
	Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
}, []string{"page"})

func countPageCall(page string) *prometheus.Timer {
	pageCallCounter.WithLabelValues(page).Inc()
	return prometheus.NewTimer(pageCallDuration.WithLabelValues(page))
}
