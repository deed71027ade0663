package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled requests by route pattern, method and status code
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentor_api_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"route", "method", "status"},
	)

	// HTTPRequestDuration tracks request latency
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mentor_api_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	// OperationsTotal counts service operations by outcome
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentor_api_operations_total",
			Help: "Total number of service operations",
		},
		[]string{"operation", "status"},
	)

	// OperationDuration tracks service operation latency, database time included
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mentor_api_operation_duration_seconds",
			Help:    "Service operation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"operation"},
	)

	// AssignmentToggles counts mentor assignment toggles by resulting action
	AssignmentToggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentor_api_assignment_toggles_total",
			Help: "Total number of mentor assignment toggles",
		},
		[]string{"action"},
	)

	// CheckinsTotal counts logged daily check-ins by type
	CheckinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentor_api_checkins_total",
			Help: "Total number of daily check-ins logged",
		},
		[]string{"type"},
	)

	// RateLimitedTotal counts requests rejected by the rate limiter
	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mentor_api_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
)
