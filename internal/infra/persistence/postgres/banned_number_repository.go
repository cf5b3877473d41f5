package postgres

import (
	"context"

	"stampcard/internal/domain/repository"
	"stampcard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bannedNumberRepository implements the repository.BannedNumberRepository interface.
type bannedNumberRepository struct {
	db *gorm.DB
}

// NewBannedNumberRepository is the constructor for bannedNumberRepository.
func NewBannedNumberRepository(db *gorm.DB) repository.BannedNumberRepository {
	return &bannedNumberRepository{
		db: db,
	}
}

// Exists reports whether the phone number is banned for the merchant.
func (repo *bannedNumberRepository) Exists(ctx context.Context, merchantID uuid.UUID, phone string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.BannedNumberModel{}).
		Where("merchant_id = ? AND phone = ?", merchantID, phone).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check banned numbers")
	}

	return count > 0, nil
}
