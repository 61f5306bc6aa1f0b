// Package postgres implements the persistence gateway on top of database/sql
// with the pgx stdlib driver. A single generic EntityRepo serves every entity;
// per-entity behavior is described by a ModelHandlers value.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ech0p1ng/articles-rest/internal/observability/metrics"
	"github.com/ech0p1ng/articles-rest/internal/repository"
)

// pgUniqueViolation is the Postgres error code for unique constraint violations.
const pgUniqueViolation = "23505"

// RelationLoader populates a named related collection on already-fetched
// records, selectin style: one additional query per relation, not per record.
type RelationLoader[T any] func(ctx context.Context, db *sql.DB, records []T) error

// ModelHandlers describes how one entity type maps onto its table.
// Columns must start with the id column; ScanDest must align with Columns.
type ModelHandlers[T any] struct {
	Table         string
	Columns       []string
	InsertColumns []string
	NewRecord     func() T
	ScanDest      func(T) []any
	InsertValues  func(T) []any
	ID            func(T) int64
	Relations     map[string]RelationLoader[T]
}

// EntityRepo is the generic SQL gateway bound to one entity type.
type EntityRepo[T any] struct {
	db *sql.DB
	h  ModelHandlers[T]
}

// NewEntityRepo builds a gateway from a model descriptor.
func NewEntityRepo[T any](db *sql.DB, h ModelHandlers[T]) *EntityRepo[T] {
	return &EntityRepo[T]{db: db, h: h}
}

var _ repository.EntityRepository[any] = (*EntityRepo[any])(nil)

func (r *EntityRepo[T]) FindAll(ctx context.Context, filter repository.Filter, opts ...repository.LoadOption) ([]T, error) {
	defer r.observe("select", time.Now())

	where, args := r.whereClause(filter, 1)
	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY id",
		strings.Join(r.h.Columns, ", "), r.h.Table, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("FindAll %s: %w", r.h.Table, err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]T, 0, 16)
	for rows.Next() {
		rec := r.h.NewRecord()
		if err := rows.Scan(r.h.ScanDest(rec)...); err != nil {
			return nil, fmt.Errorf("FindAll %s: Scan: %w", r.h.Table, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("FindAll %s: %w", r.h.Table, err)
	}

	if err := r.loadRelations(ctx, records, opts); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *EntityRepo[T]) One(ctx context.Context, filter repository.Filter, opts ...repository.LoadOption) (T, error) {
	var zero T
	rec, ok, err := r.MaybeOne(ctx, filter, opts...)
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, fmt.Errorf("One %s (%s): %w", r.h.Table, filter, repository.ErrNotExactlyOne)
	}
	return rec, nil
}

func (r *EntityRepo[T]) MaybeOne(ctx context.Context, filter repository.Filter, opts ...repository.LoadOption) (T, bool, error) {
	defer r.observe("select", time.Now())

	var zero T
	where, args := r.whereClause(filter, 1)
	// LIMIT 2 so a multi-match is detectable without draining the table.
	query := fmt.Sprintf("SELECT %s FROM %s%s LIMIT 2",
		strings.Join(r.h.Columns, ", "), r.h.Table, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return zero, false, fmt.Errorf("MaybeOne %s: %w", r.h.Table, err)
	}
	defer func() { _ = rows.Close() }()

	var matches []T
	for rows.Next() {
		rec := r.h.NewRecord()
		if err := rows.Scan(r.h.ScanDest(rec)...); err != nil {
			return zero, false, fmt.Errorf("MaybeOne %s: Scan: %w", r.h.Table, err)
		}
		matches = append(matches, rec)
	}
	if err := rows.Err(); err != nil {
		return zero, false, fmt.Errorf("MaybeOne %s: %w", r.h.Table, err)
	}

	switch len(matches) {
	case 0:
		return zero, false, nil
	case 1:
		if err := r.loadRelations(ctx, matches, opts); err != nil {
			return zero, false, err
		}
		return matches[0], true, nil
	default:
		return zero, false, fmt.Errorf("MaybeOne %s (%s): %w", r.h.Table, filter, repository.ErrNotExactlyOne)
	}
}

func (r *EntityRepo[T]) Count(ctx context.Context, filter repository.Filter) (int64, error) {
	defer r.observe("count", time.Now())

	where, args := r.whereClause(filter, 1)
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", r.h.Table, where)

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count %s: %w", r.h.Table, err)
	}
	return count, nil
}

func (r *EntityRepo[T]) Insert(ctx context.Context, record T) (T, error) {
	defer r.observe("insert", time.Now())

	var zero T
	cols := r.h.InsertColumns
	vals := r.h.InsertValues(record)
	// A zero id means storage assigns one; a caller-chosen id is inserted
	// as-is and the unique constraint arbitrates collisions.
	if id := r.h.ID(record); id != 0 {
		cols = append([]string{"id"}, cols...)
		vals = append([]any{id}, vals...)
	}

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		r.h.Table,
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(r.h.Columns, ", "))

	refreshed := r.h.NewRecord()
	err := r.db.QueryRowContext(ctx, query, vals...).
		Scan(r.h.ScanDest(refreshed)...)
	if err != nil {
		if isUniqueViolation(err) {
			return zero, fmt.Errorf("Insert %s: %w", r.h.Table, repository.ErrDuplicate)
		}
		return zero, fmt.Errorf("Insert %s: %w", r.h.Table, err)
	}
	return refreshed, nil
}

func (r *EntityRepo[T]) Update(ctx context.Context, record T) (T, error) {
	defer r.observe("update", time.Now())

	var zero T
	assignments := make([]string, len(r.h.InsertColumns))
	for i, col := range r.h.InsertColumns {
		assignments[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		r.h.Table,
		strings.Join(assignments, ", "),
		len(r.h.InsertColumns)+1,
		strings.Join(r.h.Columns, ", "))

	args := append(r.h.InsertValues(record), r.h.ID(record))
	refreshed := r.h.NewRecord()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(r.h.ScanDest(refreshed)...)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, fmt.Errorf("Update %s id=%d: %w", r.h.Table, r.h.ID(record), repository.ErrNoRows)
	}
	if err != nil {
		return zero, fmt.Errorf("Update %s: %w", r.h.Table, err)
	}
	return refreshed, nil
}

func (r *EntityRepo[T]) DeleteWhere(ctx context.Context, filter repository.Filter) error {
	defer r.observe("delete", time.Now())

	where, args := r.whereClause(filter, 1)
	query := fmt.Sprintf("DELETE FROM %s%s", r.h.Table, where)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("DeleteWhere %s: %w", r.h.Table, err)
	}
	return nil
}

// whereClause renders the filter into " WHERE a = $n AND b = $n+1" with keys
// sorted, so generated SQL is deterministic. A nil or empty filter yields no
// clause (select-all).
func (r *EntityRepo[T]) whereClause(filter repository.Filter, firstParam int) (string, []any) {
	if len(filter) == 0 {
		return "", nil
	}
	keys := filter.SortedKeys()
	conds := make([]string, len(keys))
	args := make([]any, len(keys))
	for i, k := range keys {
		conds[i] = fmt.Sprintf("%s = $%d", k, firstParam+i)
		args[i] = filter[k]
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *EntityRepo[T]) loadRelations(ctx context.Context, records []T, opts []repository.LoadOption) error {
	o := repository.ApplyLoadOptions(opts)
	if len(o.Relations) == 0 || len(records) == 0 {
		return nil
	}
	for _, name := range o.Relations {
		loader, ok := r.h.Relations[name]
		if !ok {
			return fmt.Errorf("%s: unknown relation %q", r.h.Table, name)
		}
		if err := loader(ctx, r.db, records); err != nil {
			return fmt.Errorf("%s: load relation %q: %w", r.h.Table, name, err)
		}
	}
	return nil
}

func (r *EntityRepo[T]) observe(operation string, start time.Time) {
	metrics.RecordDBQuery(r.h.Table+"_"+operation, time.Since(start))
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// inPlaceholders renders "$first, $first+1, ..." for n values. Used by relation
// loaders that batch by parent id.
func inPlaceholders(first, n int) string {
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("$%d", first+i)
	}
	return strings.Join(parts, ", ")
}
