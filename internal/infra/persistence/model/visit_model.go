package model

import (
	"time"

	"github.com/google/uuid"
)

// VisitModel mirrors the 'visits' table. merchant_id and customer_id are
// denormalized from the card so the moderation queue needs no joins.
type VisitModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	LoyaltyCardID uuid.UUID `gorm:"type:uuid;not null;index:idx_visits_card_visited"`
	CustomerID    uuid.UUID `gorm:"type:uuid;not null"`
	MerchantID    uuid.UUID `gorm:"type:uuid;not null;index:idx_visits_merchant_status"`
	PointsEarned  int       `gorm:"not null"`
	Status        string    `gorm:"type:varchar(20);not null;index:idx_visits_merchant_status"`
	FlaggedReason string    `gorm:"type:varchar(100)"`
	VisitedAt     time.Time `gorm:"not null;index:idx_visits_card_visited"`
	DecidedAt     *time.Time
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (VisitModel) TableName() string {
	return "visits"
}

// PointAdjustmentModel mirrors the 'point_adjustments' table, the audit trail
// for manual balance corrections.
type PointAdjustmentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	LoyaltyCardID uuid.UUID `gorm:"type:uuid;not null;index"`
	MerchantID    uuid.UUID `gorm:"type:uuid;not null"`
	Delta         int       `gorm:"not null"`
	Reason        string    `gorm:"type:varchar(255)"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PointAdjustmentModel) TableName() string {
	return "point_adjustments"
}
