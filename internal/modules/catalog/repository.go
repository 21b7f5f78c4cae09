package catalog

import (
	"context"
	"errors"

	"github.com/georgemunganga/lojas-backend/internal/pagination"
	"github.com/google/uuid"
)

// ErrNotFound is returned when no product matches the given id.
var ErrNotFound = errors.New("product not found")

// Repository defines product data storage.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)
	List(ctx context.Context, f ProductFilter, page pagination.Params) ([]*Product, int, error)
	Update(ctx context.Context, p *Product) error
}
