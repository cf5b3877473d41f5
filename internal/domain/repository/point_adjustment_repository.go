package repository

import (
	"context"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
)

// PointAdjustmentRepository persists the audit trail of manual corrections.
type PointAdjustmentRepository interface {
	// Create persists an adjustment audit record.
	Create(ctx context.Context, adjustment *entity.PointAdjustment) error

	// FindByCard lists the most recent adjustments of a card, newest first.
	FindByCard(ctx context.Context, cardID uuid.UUID, limit int) ([]*entity.PointAdjustment, error)
}
