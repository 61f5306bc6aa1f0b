package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations. Typed errors below match these
// via errors.Is so handlers can branch without knowing the concrete type.
var (
	// ErrNotFound indicates that a requested entity was not found.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists indicates a uniqueness violation on create.
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidFilter indicates that a lookup filter was empty or absent.
	// A filter must carry at least one field=value pair.
	ErrInvalidFilter = errors.New("filter must contain at least one field=value pair")
)

// NotFoundError reports that no entity matched a lookup or delete target.
// Entity is the human-readable label ("article", "comment"); Filter is the
// rendered filter, empty when the lookup had none (e.g. trending on an empty
// collection).
type NotFoundError struct {
	Entity string
	Filter string
}

func (e *NotFoundError) Error() string {
	if e.Filter == "" {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s not found for filter {%s}", e.Entity, e.Filter)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// AlreadyExistsError reports a uniqueness violation on create.
type AlreadyExistsError struct {
	Entity string
	Filter string
}

func (e *AlreadyExistsError) Error() string {
	if e.Filter == "" {
		return fmt.Sprintf("%s already exists", e.Entity)
	}
	return fmt.Sprintf("%s already exists for {%s}", e.Entity, e.Filter)
}

func (e *AlreadyExistsError) Is(target error) bool { return target == ErrAlreadyExists }
