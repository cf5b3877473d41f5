package entity

import (
	"time"

	"github.com/google/uuid"
)

// LoyaltyCard is the stamp balance for one (customer, merchant) pair and the
// unit of mutation for every scan, adjustment and redemption.
type LoyaltyCard struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	MerchantID uuid.UUID `json:"merchant_id"`

	// CurrentStamps is always >= 0; the ledger clamps at zero instead of
	// rejecting over-large negative deltas.
	CurrentStamps int `json:"current_stamps"`

	// StampsTarget is an informational snapshot of the tier-1 threshold at
	// card creation.
	StampsTarget int `json:"stamps_target"`

	// Cycle counts balance resets. A redemption recorded with the card's
	// current cycle is "active" and blocks a second claim of the same tier;
	// a reset increments the cycle and thereby retires prior redemptions.
	Cycle int `json:"cycle"`

	LastVisitDate *time.Time `json:"last_visit_date"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
