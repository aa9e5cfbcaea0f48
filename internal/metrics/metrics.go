// Package metrics holds the Prometheus collectors of the wallet service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Operations counts wallet mutations by operation and result.
	Operations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_operations_total",
			Help: "Total number of wallet operations",
		},
		[]string{"operation", "result"},
	)

	// OperationDuration observes how long wallet mutations take.
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wallet_operation_duration_seconds",
			Help:    "Duration of wallet operations",
			Buckets: []float64{.001, .005, .01, .05, .1, .25, .5, 1},
		},
		[]string{"operation"},
	)

	// Recomputes counts snapshot rebuilds by cause.
	Recomputes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_snapshot_rebuilds_total",
			Help: "Total number of wallet snapshot rebuilds",
		},
		[]string{"cause"},
	)

	// PublishErrors counts notifications that failed to go out.
	PublishErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wallet_publish_errors_total",
			Help: "Total number of failed wallet notifications",
		},
	)

	// HTTPRequests counts HTTP requests by route, method and status.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// HTTPDuration observes HTTP request latency by route.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
)
