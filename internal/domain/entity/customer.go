package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is one person's identity within a single merchant's program.
// The unique key is (Phone, MerchantID) — the same phone number owns one
// independent Customer per merchant, and lookups must never cross tenants.
type Customer struct {
	ID         uuid.UUID `json:"id"`
	MerchantID uuid.UUID `json:"merchant_id"` // Immutable once created.
	Phone      string    `json:"phone"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
