package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fincalc_calculations_total",
			Help: "Total number of calculations served, by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "fincalc_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"path"},
	)

	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fincalc_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
)
