package usecase

import (
	"context"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
)

// CardSummary is the merchant back-office view of one loyalty card.
type CardSummary struct {
	Card          *entity.LoyaltyCard `json:"card"`
	Customer      *entity.Customer    `json:"customer"`
	RecentVisits  []*entity.Visit     `json:"recent_visits"`
	Tier1Redeemed bool                `json:"tier1_redeemed"`
	Tier2Redeemed bool                `json:"tier2_redeemed"`
}

// CardUsecase exposes merchant-side card operations outside the scan pipeline.
type CardUsecase interface {
	// Adjust applies a manual correction to a card's balance and writes a
	// PointAdjustment audit row in the same transaction. The balance clamps
	// at zero rather than erroring on over-large negative deltas.
	Adjust(ctx context.Context, merchantID, cardID uuid.UUID, delta int, reason string) (*entity.LoyaltyCard, error)

	// Summary returns the card, its owner and recent activity.
	Summary(ctx context.Context, merchantID, cardID uuid.UUID) (*CardSummary, error)
}
