package sale

import (
	"context"
	"errors"

	"github.com/georgemunganga/lojas-backend/internal/pagination"
	"github.com/google/uuid"
)

// ErrNotFound is returned when no sale matches the given id.
var ErrNotFound = errors.New("sale not found")

// Repository defines data access for sales.
type Repository interface {
	Create(ctx context.Context, s *Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*Sale, error)
	ListByStore(ctx context.Context, storeID uuid.UUID, page pagination.Params) ([]*Sale, int, error)
	// UpdateStatus moves a sale from one status to another. It returns
	// false when the sale was not in the from status.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status) (bool, error)
}
