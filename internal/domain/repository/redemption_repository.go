package repository

import (
	"context"
	"errors"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDuplicateRedemption is returned when a redemption for the same
// (card, tier, cycle) already exists. It maps the storage layer's unique
// constraint, which is the authoritative idempotency guard against
// near-simultaneous redemption requests.
var ErrDuplicateRedemption = errors.New("reward already redeemed this cycle")

// RedemptionRepository records consumed rewards per cycle.
type RedemptionRepository interface {
	// Create persists a redemption. A unique-constraint violation on
	// (loyalty_card_id, tier, cycle) surfaces as ErrDuplicateRedemption.
	Create(ctx context.Context, redemption *entity.Redemption) error

	// HasActive reports whether a redemption exists for the card's tier in
	// the given cycle.
	HasActive(ctx context.Context, cardID uuid.UUID, tier, cycle int) (bool, error)
}
