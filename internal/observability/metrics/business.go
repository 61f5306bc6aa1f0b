package metrics

import "time"

// Cache lookup results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// RecordCacheLookup records the outcome of a cache read: CacheHit, CacheMiss
// or CacheError.
func RecordCacheLookup(result string) {
	CacheRequestsTotal.WithLabelValues(result).Inc()
}

// RecordCacheFill records the result of a write-back after a cache miss.
func RecordCacheFill(success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	CacheFillsTotal.WithLabelValues(status).Inc()
}

// RecordArticleCreated counts a successfully created article.
func RecordArticleCreated() {
	ArticlesCreatedTotal.Inc()
}

// RecordCommentCreated counts a successfully created comment.
func RecordCommentCreated() {
	CommentsCreatedTotal.Inc()
}

// RecordDBQuery records the duration of a database operation, labeled
// "table_operation" (e.g. "article_select").
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
