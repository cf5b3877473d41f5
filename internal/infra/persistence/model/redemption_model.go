package model

import (
	"time"

	"github.com/google/uuid"
)

// RedemptionModel mirrors the 'redemptions' table. The composite unique index
// on (loyalty_card_id, tier, cycle) is the storage-level idempotency guard:
// concurrent claims of the same tier in the same cycle collide here.
type RedemptionModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	LoyaltyCardID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_redemptions_card_tier_cycle"`
	Tier          int       `gorm:"not null;uniqueIndex:idx_redemptions_card_tier_cycle"`
	Cycle         int       `gorm:"not null;uniqueIndex:idx_redemptions_card_tier_cycle"`
	RedeemedAt    time.Time `gorm:"not null"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (RedemptionModel) TableName() string {
	return "redemptions"
}
