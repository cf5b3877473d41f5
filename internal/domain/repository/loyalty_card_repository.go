package repository

import (
	"context"
	"errors"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCardNotFound is returned when a loyalty card is not found.
var ErrCardNotFound = errors.New("loyalty card not found")

// LoyaltyCardRepository is the mutation surface of the loyalty ledger.
// ApplyDelta and Reset are single conditional UPDATEs so concurrent scans on
// the same card serialize at the row and can never lose an update.
type LoyaltyCardRepository interface {
	// FindByID retrieves a card by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.LoyaltyCard, error)

	// FindByCustomer retrieves the single card of a customer.
	FindByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.LoyaltyCard, error)

	// Create persists a new card.
	Create(ctx context.Context, card *entity.LoyaltyCard) error

	// ApplyDelta atomically applies current_stamps = max(0, current_stamps + delta)
	// and, for positive deltas, touches last_visit_date. Returns the updated card.
	ApplyDelta(ctx context.Context, cardID uuid.UUID, delta int) (*entity.LoyaltyCard, error)

	// Reset atomically zeroes the balance and increments the redemption
	// cycle, retiring all redemptions recorded in the previous cycle.
	Reset(ctx context.Context, cardID uuid.UUID) (*entity.LoyaltyCard, error)
}
