package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ResponseTimeHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_time_seconds",
			Help:    "Histogram of response times",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// EnrollmentsTotal counts submission attempts by outcome:
	// accepted, rejected (backend non-2xx), invalid (failed local or
	// gateway validation), error (transport).
	EnrollmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enrollment_submissions_total",
			Help: "Enrollment submission attempts by outcome",
		},
		[]string{"outcome"},
	)
)
