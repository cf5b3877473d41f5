package postgres

import (
	"context"
	"time"

	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// redemptionRepository implements the repository.RedemptionRepository interface.
type redemptionRepository struct {
	db *gorm.DB
}

// NewRedemptionRepository is the constructor for redemptionRepository.
func NewRedemptionRepository(db *gorm.DB) repository.RedemptionRepository {
	return &redemptionRepository{
		db: db,
	}
}

// Create persists a redemption. The unique index on (loyalty_card_id, tier,
// cycle) is the idempotency guard: a concurrent claim of the same tier in the
// same cycle surfaces as ErrDuplicateRedemption.
func (repo *redemptionRepository) Create(ctx context.Context, redemption *entity.Redemption) error {
	redemptionM := fromRedemptionDomain(redemption)
	if redemptionM.RedeemedAt.IsZero() {
		redemptionM.RedeemedAt = time.Now()
	}

	if err := repo.db.WithContext(ctx).Create(redemptionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRedemption
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid card reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create redemption")
	}

	redemption.ID = redemptionM.ID
	redemption.RedeemedAt = redemptionM.RedeemedAt

	return nil
}

// HasActive reports whether a redemption exists for the card's tier in the
// given cycle.
func (repo *redemptionRepository) HasActive(ctx context.Context, cardID uuid.UUID, tier, cycle int) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RedemptionModel{}).
		Where("loyalty_card_id = ? AND tier = ? AND cycle = ?", cardID, tier, cycle).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check redemption state")
	}

	return count > 0, nil
}

// fromRedemptionDomain converts a domain Redemption entity to a GORM RedemptionModel.
func fromRedemptionDomain(data *entity.Redemption) *model.RedemptionModel {
	if data == nil {
		return nil
	}

	return &model.RedemptionModel{
		ID:            data.ID,
		LoyaltyCardID: data.LoyaltyCardID,
		Tier:          data.Tier,
		Cycle:         data.Cycle,
		RedeemedAt:    data.RedeemedAt,
	}
}
