package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leetsync_runs_total",
			Help: "Total number of sync runs",
		},
		[]string{"status"}, // completed, empty, aborted
	)

	UsersProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leetsync_users_processed_total",
			Help: "Total number of users processed by outcome",
		},
		[]string{"outcome"}, // synced, skipped, failed
	)

	APICalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leetsync_api_calls_total",
			Help: "Total GraphQL calls by operation and status",
		},
		[]string{"operation", "status"},
	)

	WriteFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leetsync_write_failures_total",
			Help: "Total destination write failures by table",
		},
		[]string{"table"},
	)

	RunDurationSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "leetsync_run_duration_seconds",
			Help:    "Duration of a full sync run",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12), // 1s à ~68min
		},
	)

	UserSyncDurationSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "leetsync_user_sync_duration_seconds",
			Help:    "Duration of one user's fetch-extract-write pipeline",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms à ~25s
		},
	)
)
