package repository

import (
	"context"
	"errors"
	"time"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVisitNotFound is returned when a visit is not found.
var ErrVisitNotFound = errors.New("visit not found")

// VisitRepository persists accrual events and serves the moderation queue.
type VisitRepository interface {
	// Create persists a new visit record.
	Create(ctx context.Context, visit *entity.Visit) error

	// FindByID retrieves a visit by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Visit, error)

	// FindPendingByMerchant lists the merchant's quarantined visits, oldest first.
	FindPendingByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Visit, error)

	// FindRecentByCard lists the most recent visits of a card, newest first.
	FindRecentByCard(ctx context.Context, cardID uuid.UUID, limit int) ([]*entity.Visit, error)

	// CountAccrualsSince counts a card's non-rejected visits recorded at or
	// after the given instant. The fraud shield calls this with the start of
	// the merchant's local day.
	CountAccrualsSince(ctx context.Context, cardID uuid.UUID, since time.Time) (int64, error)

	// MarkDecided conditionally transitions a visit from pending to the given
	// terminal status. Returns false without error when the visit was already
	// decided, which makes moderation decisions idempotent.
	MarkDecided(ctx context.Context, id uuid.UUID, status entity.VisitStatus) (bool, error)
}
