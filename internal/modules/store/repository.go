package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no store matches the given id.
var ErrNotFound = errors.New("store not found")

// Repository defines store data storage.
type Repository interface {
	ListActive(ctx context.Context) ([]*Store, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Store, error)
	// CodeTaken reports whether any store other than exclude uses code.
	// Pass uuid.Nil to check against every store.
	CodeTaken(ctx context.Context, code string, exclude uuid.UUID) (bool, error)
	Create(ctx context.Context, s *Store) error
	// Update sets the name and, when code is non-empty, the code.
	Update(ctx context.Context, id uuid.UUID, name, code string) (*Store, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}
