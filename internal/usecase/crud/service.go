// Package crud provides the generic persistence-backed entity service.
// Entity-specific services embed it and add their own business rules on top.
package crud

import (
	"context"
	"errors"
	"fmt"

	"github.com/ech0p1ng/articles-rest/internal/domain/entity"
	"github.com/ech0p1ng/articles-rest/internal/repository"
)

// Service implements filtered CRUD with existence checks for one entity type.
// Label is the human-readable entity name used in error messages ("article").
// The concrete entity type is bound at construction; no runtime inspection.
type Service[T any] struct {
	Repo  repository.EntityRepository[T]
	Label string
}

// Get returns the single entity matching filter. An empty filter fails with
// entity.ErrInvalidFilter before any storage access; no match fails with a
// NotFoundError naming the entity and filter.
func (s *Service[T]) Get(ctx context.Context, filter repository.Filter, opts ...repository.LoadOption) (T, error) {
	var zero T
	if err := filter.Validate(); err != nil {
		return zero, err
	}

	record, ok, err := s.Repo.MaybeOne(ctx, filter, opts...)
	if err != nil {
		return zero, fmt.Errorf("get %s: %w", s.Label, err)
	}
	if !ok {
		return zero, &entity.NotFoundError{Entity: s.Label, Filter: filter.String()}
	}
	return record, nil
}

// GetMultiple returns every entity matching filter, possibly none.
func (s *Service[T]) GetMultiple(ctx context.Context, filter repository.Filter, opts ...repository.LoadOption) ([]T, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.Repo.FindAll(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("get multiple %s: %w", s.Label, err)
	}
	return records, nil
}

// GetAll returns every entity of this type.
func (s *Service[T]) GetAll(ctx context.Context, opts ...repository.LoadOption) ([]T, error) {
	records, err := s.Repo.FindAll(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("get all %s: %w", s.Label, err)
	}
	return records, nil
}

// Exists reports whether an entity matching filter exists.
func (s *Service[T]) Exists(ctx context.Context, filter repository.Filter) (bool, error) {
	if err := filter.Validate(); err != nil {
		return false, err
	}

	_, ok, err := s.Repo.MaybeOne(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("exists %s: %w", s.Label, err)
	}
	return ok, nil
}

// Create inserts the entity and returns it refreshed with storage-assigned
// fields. Uniqueness is not checked here; entity services layer that on.
// A storage-level duplicate still surfaces as AlreadyExistsError, which is
// the backstop against concurrent creates racing past a pre-check.
func (s *Service[T]) Create(ctx context.Context, record T) (T, error) {
	var zero T
	created, err := s.Repo.Insert(ctx, record)
	if errors.Is(err, repository.ErrDuplicate) {
		return zero, &entity.AlreadyExistsError{Entity: s.Label}
	}
	if err != nil {
		return zero, fmt.Errorf("create %s: %w", s.Label, err)
	}
	return created, nil
}

// Update merges the entity's fields into the persisted row with the same id.
// Updating a non-existent id fails with NotFoundError.
func (s *Service[T]) Update(ctx context.Context, record T) (T, error) {
	var zero T
	updated, err := s.Repo.Update(ctx, record)
	if errors.Is(err, repository.ErrNoRows) {
		return zero, &entity.NotFoundError{Entity: s.Label}
	}
	if err != nil {
		return zero, fmt.Errorf("update %s: %w", s.Label, err)
	}
	return updated, nil
}

// Delete removes every entity matching filter. Deleting with a filter that
// matches nothing fails with NotFoundError.
func (s *Service[T]) Delete(ctx context.Context, filter repository.Filter) error {
	exists, err := s.Exists(ctx, filter)
	if err != nil {
		return err
	}
	if !exists {
		return &entity.NotFoundError{Entity: s.Label, Filter: filter.String()}
	}

	if err := s.Repo.DeleteWhere(ctx, filter); err != nil {
		return fmt.Errorf("delete %s: %w", s.Label, err)
	}
	return nil
}
