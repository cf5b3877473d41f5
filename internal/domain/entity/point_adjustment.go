package entity

import (
	"time"

	"github.com/google/uuid"
)

// PointAdjustment is the audit record for a manual balance correction made by
// merchant staff, outside the scan/fraud pipeline.
type PointAdjustment struct {
	ID            uuid.UUID `json:"id"`
	LoyaltyCardID uuid.UUID `json:"loyalty_card_id"`
	MerchantID    uuid.UUID `json:"merchant_id"`
	Delta         int       `json:"delta"`
	Reason        string    `json:"reason,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
