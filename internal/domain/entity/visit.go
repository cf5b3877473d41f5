package entity

import (
	"time"

	"github.com/google/uuid"
)

// VisitStatus is the lifecycle state of an accrual event.
type VisitStatus string

const (
	// VisitStatusConfirmed means the points have been applied to the card.
	VisitStatusConfirmed VisitStatus = "confirmed"
	// VisitStatusPending means the scan was quarantined by the fraud shield
	// and awaits a merchant decision; its points are NOT yet applied.
	VisitStatusPending VisitStatus = "pending"
	// VisitStatusRejected is terminal; the points are never applied.
	VisitStatusRejected VisitStatus = "rejected"
)

// Visit is an immutable, append-only record of one accrual event.
// MerchantID and CustomerID are denormalized from the card so the moderation
// queue can be listed per tenant without joins.
type Visit struct {
	ID            uuid.UUID   `json:"id"`
	LoyaltyCardID uuid.UUID   `json:"loyalty_card_id"`
	CustomerID    uuid.UUID   `json:"customer_id"`
	MerchantID    uuid.UUID   `json:"merchant_id"`
	PointsEarned  int         `json:"points_earned"` // Always >= 1.
	Status        VisitStatus `json:"status"`
	FlaggedReason string      `json:"flagged_reason,omitempty"`
	VisitedAt     time.Time   `json:"visited_at"`
	DecidedAt     *time.Time  `json:"decided_at,omitempty"`
}

// Decided reports whether the visit has reached a terminal moderation state.
func (v *Visit) Decided() bool {
	return v.Status != VisitStatusPending
}
