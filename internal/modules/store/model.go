package store

import (
	"time"

	"github.com/google/uuid"
)

// Store is a physical or logical sales location (loja).
type Store struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateStoreRequest holds the data for creating a store.
type CreateStoreRequest struct {
	Name    string `json:"name"`
	Code    string `json:"code,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// UpdateStoreRequest renames a store and optionally changes its code.
// An empty Code leaves the current code untouched.
type UpdateStoreRequest struct {
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}
