package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordCacheLookup(t *testing.T) {
	before := testutil.ToFloat64(CacheRequestsTotal.WithLabelValues(CacheHit))
	RecordCacheLookup(CacheHit)
	RecordCacheLookup(CacheHit)

	got := testutil.ToFloat64(CacheRequestsTotal.WithLabelValues(CacheHit))
	if got != before+2 {
		t.Errorf("hit counter = %v, want %v", got, before+2)
	}

	missBefore := testutil.ToFloat64(CacheRequestsTotal.WithLabelValues(CacheMiss))
	RecordCacheLookup(CacheMiss)
	if got := testutil.ToFloat64(CacheRequestsTotal.WithLabelValues(CacheMiss)); got != missBefore+1 {
		t.Errorf("miss counter = %v, want %v", got, missBefore+1)
	}
}

func TestRecordCacheFill(t *testing.T) {
	okBefore := testutil.ToFloat64(CacheFillsTotal.WithLabelValues("success"))
	failBefore := testutil.ToFloat64(CacheFillsTotal.WithLabelValues("failure"))

	RecordCacheFill(true)
	RecordCacheFill(false)

	if got := testutil.ToFloat64(CacheFillsTotal.WithLabelValues("success")); got != okBefore+1 {
		t.Errorf("success counter = %v, want %v", got, okBefore+1)
	}
	if got := testutil.ToFloat64(CacheFillsTotal.WithLabelValues("failure")); got != failBefore+1 {
		t.Errorf("failure counter = %v, want %v", got, failBefore+1)
	}
}

func TestRecordCreations(t *testing.T) {
	aBefore := testutil.ToFloat64(ArticlesCreatedTotal)
	cBefore := testutil.ToFloat64(CommentsCreatedTotal)

	RecordArticleCreated()
	RecordCommentCreated()

	if got := testutil.ToFloat64(ArticlesCreatedTotal); got != aBefore+1 {
		t.Errorf("articles counter = %v, want %v", got, aBefore+1)
	}
	if got := testutil.ToFloat64(CommentsCreatedTotal); got != cBefore+1 {
		t.Errorf("comments counter = %v, want %v", got, cBefore+1)
	}
}

func TestRecordDBQuery(t *testing.T) {
	before := testutil.CollectAndCount(DBQueryDuration)
	RecordDBQuery("article_select", 5*time.Millisecond)

	if got := testutil.CollectAndCount(DBQueryDuration); got < before {
		t.Errorf("histogram series count = %d, want at least %d", got, before)
	}
}
