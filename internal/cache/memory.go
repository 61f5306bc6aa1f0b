package cache

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultMemoryCapacity bounds the in-memory store when no capacity is given.
const DefaultMemoryCapacity = 10000

// memoryEntry is a stored value with its optional deadline.
// A zero deadline means the entry never expires.
type memoryEntry struct {
	value    string
	deadline time.Time
}

// MemoryStore implements Store in process memory. Capacity and eviction come
// from an LRU; per-entry TTLs are enforced lazily on read, since different
// writes carry different lifetimes.
type MemoryStore struct {
	entries *lru.LRU[string, memoryEntry]
	now     func() time.Time
}

// NewMemoryStore returns an in-memory store bounded to capacity entries.
// A capacity <= 0 uses DefaultMemoryCapacity.
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	return &MemoryStore{
		// ttl 0: the LRU only handles capacity, deadlines are per entry.
		entries: lru.NewLRU[string, memoryEntry](capacity, nil, 0),
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	entry, ok := s.entries.Get(key)
	if !ok {
		return "", ErrCacheMiss
	}
	if !entry.deadline.IsZero() && s.now().After(entry.deadline) {
		s.entries.Remove(key)
		return "", ErrCacheMiss
	}
	return entry.value, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.deadline = s.now().Add(ttl)
	}
	s.entries.Add(key, entry)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.entries.Remove(key)
	return nil
}

func (s *MemoryStore) Close() error { return nil }
