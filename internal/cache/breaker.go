package cache

import (
	"context"
	"errors"
	"time"

	"github.com/ech0p1ng/articles-rest/internal/resilience/circuitbreaker"
)

// BreakerStore decorates a Store with a circuit breaker so a persistently
// unhealthy cache fails fast instead of stalling every read. A cache miss is
// a normal outcome and never counts as a failure.
type BreakerStore struct {
	next Store
	cb   *circuitbreaker.CircuitBreaker
}

// NewBreakerStore wraps next with the given circuit breaker.
func NewBreakerStore(next Store, cb *circuitbreaker.CircuitBreaker) *BreakerStore {
	return &BreakerStore{next: next, cb: cb}
}

func (s *BreakerStore) Get(ctx context.Context, key string) (string, error) {
	var missed bool
	val, err := s.cb.Execute(func() (interface{}, error) {
		v, err := s.next.Get(ctx, key)
		if errors.Is(err, ErrCacheMiss) {
			missed = true
			return "", nil
		}
		return v, err
	})
	if err != nil {
		return "", err
	}
	if missed {
		return "", ErrCacheMiss
	}
	return val.(string), nil
}

func (s *BreakerStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	_, err := s.cb.Execute(func() (interface{}, error) {
		return nil, s.next.Set(ctx, key, value, ttl)
	})
	return err
}

func (s *BreakerStore) Delete(ctx context.Context, key string) error {
	_, err := s.cb.Execute(func() (interface{}, error) {
		return nil, s.next.Delete(ctx, key)
	})
	return err
}

func (s *BreakerStore) Close() error {
	return s.next.Close()
}
