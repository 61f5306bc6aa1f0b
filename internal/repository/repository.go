// Package repository defines the persistence contracts the use cases depend on.
// The concrete implementation lives under internal/infra/adapter/persistence.
package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ech0p1ng/articles-rest/internal/domain/entity"
)

// Gateway-level sentinel errors. Use cases translate these into domain errors
// carrying the entity label.
var (
	// ErrNoRows indicates that an operation requiring a matching row found none.
	ErrNoRows = errors.New("no matching rows")

	// ErrNotExactlyOne indicates that an exactly-one lookup matched zero or
	// several rows. Callers use at-most-one lookups for user-facing reads, so
	// surfacing this means an internal invariant broke.
	ErrNotExactlyOne = errors.New("expected exactly one matching row")

	// ErrDuplicate indicates a storage-level unique constraint violation.
	ErrDuplicate = errors.New("duplicate key")
)

// Filter selects entities by exact field match. Keys are column names.
// A filter must contain at least one entry; empty filters are rejected before
// any storage access.
type Filter map[string]any

// Validate reports whether the filter satisfies the non-empty contract.
func (f Filter) Validate() error {
	if len(f) == 0 {
		return entity.ErrInvalidFilter
	}
	return nil
}

// SortedKeys returns the filter keys in deterministic order, so generated SQL
// and rendered error messages are stable.
func (f Filter) SortedKeys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String renders the filter as "k1=v1, k2=v2" with keys sorted.
func (f Filter) String() string {
	var b strings.Builder
	for i, k := range f.SortedKeys() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", k, f[k])
	}
	return b.String()
}

// LoadOptions carries per-query options for read operations.
type LoadOptions struct {
	// Relations names related collections to load in the same call
	// (e.g. "comments" on articles). Unknown names are an error.
	Relations []string
}

// LoadOption customizes a read operation.
type LoadOption func(*LoadOptions)

// WithRelations requests eager loading of the named related collections.
// Omitting it still produces correct results; related fields just stay empty.
func WithRelations(names ...string) LoadOption {
	return func(o *LoadOptions) {
		o.Relations = append(o.Relations, names...)
	}
}

// ApplyLoadOptions folds opts into a LoadOptions value.
func ApplyLoadOptions(opts []LoadOption) LoadOptions {
	var o LoadOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// EntityRepository is the persistence gateway for a single entity type.
// A nil filter selects all rows; a non-nil filter must be non-empty (validated
// by the service layer before the gateway is reached).
type EntityRepository[T any] interface {
	// FindAll returns every row matching filter, in natural retrieval order.
	FindAll(ctx context.Context, filter Filter, opts ...LoadOption) ([]T, error)

	// One returns the single row matching filter. It fails with
	// ErrNotExactlyOne when the match count is not 1.
	One(ctx context.Context, filter Filter, opts ...LoadOption) (T, error)

	// MaybeOne returns the row matching filter, or ok=false when there is
	// none. More than one match is an ErrNotExactlyOne failure.
	MaybeOne(ctx context.Context, filter Filter, opts ...LoadOption) (T, bool, error)

	// Count returns the number of rows matching filter.
	Count(ctx context.Context, filter Filter) (int64, error)

	// Insert stages the record, flushes it to storage and returns the record
	// refreshed with storage-assigned fields (notably the id). A unique
	// constraint violation surfaces as ErrDuplicate.
	Insert(ctx context.Context, record T) (T, error)

	// Update merges the record's fields into the persisted row with the same
	// id and returns the refreshed row. Updating a non-existent id fails with
	// ErrNoRows.
	Update(ctx context.Context, record T) (T, error)

	// DeleteWhere removes every row matching filter.
	DeleteWhere(ctx context.Context, filter Filter) error
}
