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

// loyaltyCardRepository implements the repository.LoyaltyCardRepository interface.
type loyaltyCardRepository struct {
	db *gorm.DB
}

// NewLoyaltyCardRepository is the constructor for loyaltyCardRepository.
func NewLoyaltyCardRepository(db *gorm.DB) repository.LoyaltyCardRepository {
	return &loyaltyCardRepository{
		db: db,
	}
}

// FindByID retrieves a card by its unique ID.
func (repo *loyaltyCardRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.LoyaltyCard, error) {
	var cardM model.LoyaltyCardModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&cardM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCardNotFound
		}

		return nil, errors.Wrap(err, "failed to find loyalty card by ID")
	}

	return toLoyaltyCardDomain(&cardM), nil
}

// FindByCustomer retrieves the single card of a customer.
func (repo *loyaltyCardRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.LoyaltyCard, error) {
	var cardM model.LoyaltyCardModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		First(&cardM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCardNotFound
		}

		return nil, errors.Wrap(err, "failed to find loyalty card by customer")
	}

	return toLoyaltyCardDomain(&cardM), nil
}

// Create persists a new card.
func (repo *loyaltyCardRepository) Create(ctx context.Context, card *entity.LoyaltyCard) error {
	cardM := fromLoyaltyCardDomain(card)

	if err := repo.db.WithContext(ctx).Create(cardM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid customer reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create loyalty card")
	}

	card.ID = cardM.ID
	card.CreatedAt = cardM.CreatedAt
	card.UpdatedAt = cardM.UpdatedAt

	return nil
}

// ApplyDelta mutates the balance with a single conditional UPDATE so that
// concurrent scans on the same card serialize at the row. The balance clamps
// at zero rather than rejecting over-large negative deltas.
func (repo *loyaltyCardRepository) ApplyDelta(ctx context.Context, cardID uuid.UUID, delta int) (*entity.LoyaltyCard, error) {
	updates := map[string]any{
		"current_stamps": gorm.Expr("GREATEST(0, current_stamps + ?)", delta),
	}
	if delta > 0 {
		updates["last_visit_date"] = gorm.Expr("NOW()")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.LoyaltyCardModel{}).
		Where("id = ?", cardID).
		Updates(updates)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to apply stamp delta")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrCardNotFound
	}

	return repo.FindByID(ctx, cardID)
}

// Reset zeroes the balance and bumps the cycle in one statement, retiring all
// redemptions recorded in the previous cycle.
func (repo *loyaltyCardRepository) Reset(ctx context.Context, cardID uuid.UUID) (*entity.LoyaltyCard, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.LoyaltyCardModel{}).
		Where("id = ?", cardID).
		Updates(map[string]any{
			"current_stamps": 0,
			"cycle":          gorm.Expr("cycle + 1"),
		})
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to reset loyalty card")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrCardNotFound
	}

	return repo.FindByID(ctx, cardID)
}

// toLoyaltyCardDomain converts a GORM LoyaltyCardModel to a domain entity.
func toLoyaltyCardDomain(data *model.LoyaltyCardModel) *entity.LoyaltyCard {
	if data == nil {
		return nil
	}

	return &entity.LoyaltyCard{
		ID:            data.ID,
		CustomerID:    data.CustomerID,
		MerchantID:    data.MerchantID,
		CurrentStamps: data.CurrentStamps,
		StampsTarget:  data.StampsTarget,
		Cycle:         data.Cycle,
		LastVisitDate: data.LastVisitDate,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromLoyaltyCardDomain converts a domain entity to a GORM LoyaltyCardModel.
func fromLoyaltyCardDomain(data *entity.LoyaltyCard) *model.LoyaltyCardModel {
	if data == nil {
		return nil
	}

	return &model.LoyaltyCardModel{
		ID:            data.ID,
		CustomerID:    data.CustomerID,
		MerchantID:    data.MerchantID,
		CurrentStamps: data.CurrentStamps,
		StampsTarget:  data.StampsTarget,
		Cycle:         data.Cycle,
		LastVisitDate: data.LastVisitDate,
	}
}
