package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coin_tracker_http_requests_total",
			Help: "Total number of proxy requests per route and status code",
		},
		[]string{"route", "code"},
	)

	HTTPRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "coin_tracker_http_request_duration_seconds",
			Help:    "Proxy request duration in seconds per route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	ChartCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coin_tracker_chart_cache_total",
			Help: "Chart cache lookups by result (hit|miss)",
		},
		[]string{"result"},
	)

	LoaderPagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coin_tracker_loader_pages_total",
			Help: "Coin list pages by final state",
		},
		[]string{"currency", "state"},
	)

	LoaderRateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coin_tracker_loader_rate_limited_total",
			Help: "Upstream 429 responses seen by the coin list loader",
		},
		[]string{"currency"},
	)

	LoaderCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coin_tracker_loader_cache_total",
			Help: "Persistent coin list cache lookups by result (hit|miss)",
		},
		[]string{"currency", "result"},
	)

	LoaderRunDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "coin_tracker_loader_run_duration_seconds",
			Help:    "Duration of a full coin list fetch",
			Buckets: []float64{1, 5, 10, 20, 30, 60, 120},
		},
		[]string{"currency", "outcome"},
	)
)

var (
	ScheduledJobLastRun = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "coin_tracker_job_last_run_timestamp",
			Help: "Unix timestamp of the last completed warm-up run per currency",
		},
		[]string{"currency"},
	)

	ScheduledJobFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coin_tracker_job_failures_total",
			Help: "Failed warm-up runs per currency",
		},
		[]string{"currency"},
	)
)

// ObserveLoaderRun - длительность полного прохода загрузчика.
func ObserveLoaderRun(currency, outcome string, started time.Time) {
	LoaderRunDurationSeconds.WithLabelValues(currency, outcome).Observe(time.Since(started).Seconds())
}
