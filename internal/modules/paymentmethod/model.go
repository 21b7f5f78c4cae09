package paymentmethod

import "github.com/google/uuid"

// PaymentMethod is a way a customer can pay at the counter.
type PaymentMethod struct {
	ID     uuid.UUID `json:"id"`
	Code   string    `json:"code"`
	Label  string    `json:"label"`
	Active bool      `json:"active"`
}
