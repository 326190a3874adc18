// Package metrics exposes Prometheus instrumentation for the HTTP API and
// the CSV seeder. Collectors register on the default registry and are
// served at /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "route"},
	)

	SeedRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seed_runs_total",
			Help: "Seeding runs by result",
		},
		[]string{"result"},
	)

	SeedRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seed_rows_total",
			Help: "CSV rows handled by the seeder by outcome",
		},
		[]string{"outcome"},
	)
)

// RecordHTTPRequest observes one finished request.
func RecordHTTPRequest(method, route string, status int, d time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// RecordSeed observes one seeding run. Row counters are only touched on
// success since a failed run commits nothing.
func RecordSeed(inserted, duplicates, invalidDates int, err error) {
	if err != nil {
		SeedRuns.WithLabelValues("failure").Inc()
		return
	}
	SeedRuns.WithLabelValues("success").Inc()
	SeedRows.WithLabelValues("inserted").Add(float64(inserted))
	SeedRows.WithLabelValues("duplicate").Add(float64(duplicates))
	SeedRows.WithLabelValues("invalid_date").Add(float64(invalidDates))
}
