package usecase

import (
	"context"

	"github.com/google/uuid"
)

// RedeemResult is the outcome of a successful reward redemption.
type RedeemResult struct {
	Success       bool `json:"success"`
	Tier          int  `json:"tier"`
	StampsReset   bool `json:"stamps_reset"`
	CurrentStamps int  `json:"current_stamps"`
}

// RedemptionUsecase governs the eligible -> redeemed -> (eligible after
// reset) state machine of a reward tier.
type RedemptionUsecase interface {
	// Redeem claims a reward tier on behalf of the authenticated merchant.
	// Ownership is checked before anything else; idempotency within a cycle
	// is enforced at the storage layer.
	Redeem(ctx context.Context, merchantID, cardID uuid.UUID, tier int) (*RedeemResult, error)
}
