package postgres

import (
	"context"

	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pointAdjustmentRepository implements the repository.PointAdjustmentRepository interface.
type pointAdjustmentRepository struct {
	db *gorm.DB
}

// NewPointAdjustmentRepository is the constructor for pointAdjustmentRepository.
func NewPointAdjustmentRepository(db *gorm.DB) repository.PointAdjustmentRepository {
	return &pointAdjustmentRepository{
		db: db,
	}
}

// Create persists an adjustment audit record.
func (repo *pointAdjustmentRepository) Create(ctx context.Context, adjustment *entity.PointAdjustment) error {
	adjustmentM := fromPointAdjustmentDomain(adjustment)

	if err := repo.db.WithContext(ctx).Create(adjustmentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid card reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create point adjustment")
	}

	adjustment.ID = adjustmentM.ID
	adjustment.CreatedAt = adjustmentM.CreatedAt

	return nil
}

// FindByCard lists the most recent adjustments of a card, newest first.
func (repo *pointAdjustmentRepository) FindByCard(ctx context.Context, cardID uuid.UUID, limit int) ([]*entity.PointAdjustment, error) {
	var adjustmentModels []*model.PointAdjustmentModel

	if err := repo.db.WithContext(ctx).
		Where("loyalty_card_id = ?", cardID).
		Order("created_at DESC").
		Limit(limit).
		Find(&adjustmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find point adjustments")
	}

	adjustments := make([]*entity.PointAdjustment, 0, len(adjustmentModels))
	for _, adjustmentM := range adjustmentModels {
		adjustments = append(adjustments, toPointAdjustmentDomain(adjustmentM))
	}

	return adjustments, nil
}

// toPointAdjustmentDomain converts a GORM PointAdjustmentModel to a domain entity.
func toPointAdjustmentDomain(data *model.PointAdjustmentModel) *entity.PointAdjustment {
	if data == nil {
		return nil
	}

	return &entity.PointAdjustment{
		ID:            data.ID,
		LoyaltyCardID: data.LoyaltyCardID,
		MerchantID:    data.MerchantID,
		Delta:         data.Delta,
		Reason:        data.Reason,
		CreatedAt:     data.CreatedAt,
	}
}

// fromPointAdjustmentDomain converts a domain entity to a GORM PointAdjustmentModel.
func fromPointAdjustmentDomain(data *entity.PointAdjustment) *model.PointAdjustmentModel {
	if data == nil {
		return nil
	}

	return &model.PointAdjustmentModel{
		ID:            data.ID,
		LoyaltyCardID: data.LoyaltyCardID,
		MerchantID:    data.MerchantID,
		Delta:         data.Delta,
		Reason:        data.Reason,
	}
}
