package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Product is an item sold across the stores.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductFilter narrows a product listing.
type ProductFilter struct {
	// Search matches name or code, case-insensitively.
	Search string
	// Active filters on the active flag when non-nil.
	Active *bool
}
