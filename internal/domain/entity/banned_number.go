package entity

import (
	"time"

	"github.com/google/uuid"
)

// BannedNumber short-circuits all scan processing for a (phone, merchant)
// pair with a hard rejection. Checked before any customer lookup.
type BannedNumber struct {
	ID         uuid.UUID `json:"id"`
	MerchantID uuid.UUID `json:"merchant_id"`
	Phone      string    `json:"phone"`
	CreatedAt  time.Time `json:"created_at"`
}
