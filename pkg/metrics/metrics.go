package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	StoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_query_duration_seconds",
			Help:    "Persistence query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"operation", "table"},
	)

	TasksCreatedCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tasks_created_count",
			Help: "Total number of tasks created",
		},
	)

	TasksDeletedCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tasks_deleted_count",
			Help: "Total number of tasks soft-deleted",
		},
		[]string{"mode"}, // mode: single, batch
	)

	TasksRestoredCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tasks_restored_count",
			Help: "Total number of tasks restored from the undo slot",
		},
	)
)

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveStoreQuery is meant to be deferred at the top of a store method:
// defer metrics.ObserveStoreQuery("get", "tasks", time.Now())
func ObserveStoreQuery(operation, table string, start time.Time) {
	StoreQueryDuration.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}

func IncrementTasksDeleted(mode string, n int64) {
	TasksDeletedCount.WithLabelValues(mode).Add(float64(n))
}
