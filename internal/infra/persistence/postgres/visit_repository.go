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

// visitRepository implements the repository.VisitRepository interface.
type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository is the constructor for visitRepository.
func NewVisitRepository(db *gorm.DB) repository.VisitRepository {
	return &visitRepository{
		db: db,
	}
}

// Create persists a new visit record.
func (repo *visitRepository) Create(ctx context.Context, visit *entity.Visit) error {
	visitM := fromVisitDomain(visit)

	if err := repo.db.WithContext(ctx).Create(visitM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid card reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required visit information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create visit")
	}

	visit.ID = visitM.ID

	return nil
}

// FindByID retrieves a visit by its unique ID.
func (repo *visitRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Visit, error) {
	var visitM model.VisitModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&visitM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVisitNotFound
		}

		return nil, errors.Wrap(err, "failed to find visit by ID")
	}

	return toVisitDomain(&visitM), nil
}

// FindPendingByMerchant lists the merchant's quarantined visits, oldest first
// so the longest-waiting scans surface at the top of the queue.
func (repo *visitRepository) FindPendingByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Visit, error) {
	var visitModels []*model.VisitModel

	if err := repo.db.WithContext(ctx).
		Where("merchant_id = ? AND status = ?", merchantID, string(entity.VisitStatusPending)).
		Order("visited_at ASC").
		Find(&visitModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pending visits")
	}

	visits := make([]*entity.Visit, 0, len(visitModels))
	for _, visitM := range visitModels {
		visits = append(visits, toVisitDomain(visitM))
	}

	return visits, nil
}

// FindRecentByCard lists the most recent visits of a card, newest first.
func (repo *visitRepository) FindRecentByCard(ctx context.Context, cardID uuid.UUID, limit int) ([]*entity.Visit, error) {
	var visitModels []*model.VisitModel

	if err := repo.db.WithContext(ctx).
		Where("loyalty_card_id = ?", cardID).
		Order("visited_at DESC").
		Limit(limit).
		Find(&visitModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent visits")
	}

	visits := make([]*entity.Visit, 0, len(visitModels))
	for _, visitM := range visitModels {
		visits = append(visits, toVisitDomain(visitM))
	}

	return visits, nil
}

// CountAccrualsSince counts a card's non-rejected visits recorded at or after
// the given instant. Pending visits count: a quarantined scan still consumed
// the day's allowance.
func (repo *visitRepository) CountAccrualsSince(ctx context.Context, cardID uuid.UUID, since time.Time) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.VisitModel{}).
		Where("loyalty_card_id = ? AND visited_at >= ? AND status <> ?",
			cardID, since, string(entity.VisitStatusRejected)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count accruals")
	}

	return count, nil
}

// MarkDecided transitions a visit out of pending with a conditional UPDATE.
// The status guard in the WHERE clause makes concurrent decisions race-free:
// only one caller observes RowsAffected == 1.
func (repo *visitRepository) MarkDecided(ctx context.Context, id uuid.UUID, status entity.VisitStatus) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.VisitModel{}).
		Where("id = ? AND status = ?", id, string(entity.VisitStatusPending)).
		Updates(map[string]any{
			"status":     string(status),
			"decided_at": gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to mark visit decided")
	}

	return result.RowsAffected > 0, nil
}

// toVisitDomain converts a GORM VisitModel to a domain Visit entity.
func toVisitDomain(data *model.VisitModel) *entity.Visit {
	if data == nil {
		return nil
	}

	return &entity.Visit{
		ID:            data.ID,
		LoyaltyCardID: data.LoyaltyCardID,
		CustomerID:    data.CustomerID,
		MerchantID:    data.MerchantID,
		PointsEarned:  data.PointsEarned,
		Status:        entity.VisitStatus(data.Status),
		FlaggedReason: data.FlaggedReason,
		VisitedAt:     data.VisitedAt,
		DecidedAt:     data.DecidedAt,
	}
}

// fromVisitDomain converts a domain Visit entity to a GORM VisitModel.
func fromVisitDomain(data *entity.Visit) *model.VisitModel {
	if data == nil {
		return nil
	}

	return &model.VisitModel{
		ID:            data.ID,
		LoyaltyCardID: data.LoyaltyCardID,
		CustomerID:    data.CustomerID,
		MerchantID:    data.MerchantID,
		PointsEarned:  data.PointsEarned,
		Status:        string(data.Status),
		FlaggedReason: data.FlaggedReason,
		VisitedAt:     data.VisitedAt,
		DecidedAt:     data.DecidedAt,
	}
}
