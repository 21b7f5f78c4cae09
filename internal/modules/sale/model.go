package sale

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the state of a sale.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// Sale records a point-of-sale transaction at a store.
type Sale struct {
	ID            uuid.UUID `json:"id"`
	StoreID       uuid.UUID `json:"store_id"`
	PaymentMethod string    `json:"payment_method"`
	Total         float64   `json:"total"`
	Discount      float64   `json:"discount"`
	Status        Status    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateSaleRequest is the payload for recording a sale.
type CreateSaleRequest struct {
	StoreID       string  `json:"store_id"`
	PaymentMethod string  `json:"payment_method"`
	Total         float64 `json:"total"`
	Discount      float64 `json:"discount,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}
