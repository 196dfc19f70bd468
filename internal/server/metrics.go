package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	solves   *prometheus.CounterVec
	duration *prometheus.HistogramVec
	expanded *prometheus.HistogramVec
	requests *prometheus.CounterVec
}

func newMetrics(registerer prometheus.Registerer) *metrics {
	factory := promauto.With(registerer)
	return &metrics{
		// solves counts searches by strategy and result: found, unreachable or error
		solves: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pathfinder_solves_total",
			Help: "Total searches by strategy and result",
		}, []string{"strategy", "result"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pathfinder_solve_duration_seconds",
			Help:    "Search duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
		}, []string{"strategy"}),

		expanded: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pathfinder_expanded_states",
			Help:    "States expanded per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"strategy"}),

		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pathfinder_http_requests_total",
			Help: "HTTP requests by route and status code",
		}, []string{"route", "code"}),
	}
}
