// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cache metrics track the cache-aside read path.
var (
	// CacheRequestsTotal counts cache lookups by result: hit, miss or error.
	// An error means the cache itself failed and the read degraded to the
	// database.
	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_requests_total",
			Help: "Total number of cache lookups by result",
		},
		[]string{"result"},
	)

	// CacheFillsTotal counts write-backs after a cache miss by status.
	CacheFillsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_fills_total",
			Help: "Total number of cache write-backs after a miss",
		},
		[]string{"status"},
	)
)

// Business metrics track entity operations.
var (
	// ArticlesCreatedTotal counts successfully created articles.
	ArticlesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "articles_created_total",
			Help: "Total number of articles created",
		},
	)

	// CommentsCreatedTotal counts successfully created comments.
	CommentsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "comments_created_total",
			Help: "Total number of comments created",
		},
	)
)

// Database metrics track query performance.
var (
	// DBQueryDuration measures database query duration by operation.
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation"},
	)
)
