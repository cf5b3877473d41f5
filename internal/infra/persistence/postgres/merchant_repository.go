// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"stampcard/internal/domain/entity"
	"stampcard/internal/domain/repository"
	"stampcard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// merchantRepository implements the repository.MerchantRepository interface.
type merchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository is the constructor for merchantRepository.
func NewMerchantRepository(db *gorm.DB) repository.MerchantRepository {
	return &merchantRepository{
		db: db,
	}
}

// FindByID retrieves a single merchant by its unique ID.
func (repo *merchantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Merchant, error) {
	var merchantM model.MerchantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&merchantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant by ID")
	}

	return toMerchantDomain(&merchantM), nil
}

// FindByScanCode resolves an opaque scan code to the owning merchant.
func (repo *merchantRepository) FindByScanCode(ctx context.Context, scanCode string) (*entity.Merchant, error) {
	var merchantM model.MerchantModel

	if err := repo.db.WithContext(ctx).
		Where("scan_code = ?", scanCode).
		First(&merchantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant by scan code")
	}

	return toMerchantDomain(&merchantM), nil
}

// FindByEmail retrieves a merchant by login email.
func (repo *merchantRepository) FindByEmail(ctx context.Context, email string) (*entity.Merchant, error) {
	var merchantM model.MerchantModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&merchantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant by email")
	}

	return toMerchantDomain(&merchantM), nil
}

// toMerchantDomain converts a GORM MerchantModel to a domain Merchant entity.
func toMerchantDomain(data *model.MerchantModel) *entity.Merchant {
	if data == nil {
		return nil
	}

	return &entity.Merchant{
		ID:                 data.ID,
		Name:               data.Name,
		Email:              data.Email,
		PasswordHash:       data.PasswordHash,
		ScanCode:           data.ScanCode,
		Mode:               entity.LoyaltyMode(data.Mode),
		Tier1Threshold:     data.Tier1Threshold,
		Tier1Reward:        data.Tier1Reward,
		Tier2Enabled:       data.Tier2Enabled,
		Tier2Threshold:     data.Tier2Threshold,
		Tier2Reward:        data.Tier2Reward,
		FraudShieldEnabled: data.FraudShieldEnabled,
		Timezone:           data.Timezone,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
