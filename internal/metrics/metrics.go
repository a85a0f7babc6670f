// Package metrics: Prometheus-метрики HTTP API.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts handled requests by route template, method and status.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "crossblog",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// RequestDuration measures request latency.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "crossblog",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	// PanicsTotal counts panics caught by the recoverer.
	PanicsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "crossblog",
			Name:      "http_panics_total",
			Help:      "Total number of recovered panics",
		},
	)
)

func RecordRequest(route, method string, status int, seconds float64) {
	RequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	RequestDuration.WithLabelValues(route, method).Observe(seconds)
}
