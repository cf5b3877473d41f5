// Package model contains the GORM persistence structs mirroring the
// PostgreSQL schema. They are exported so the GORM Gen tool can consume them.
package model

import (
	"time"

	"github.com/google/uuid"
)

// MerchantModel mirrors the 'merchants' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type MerchantModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	ScanCode     string    `gorm:"type:varchar(64);unique;not null"`
	Mode         string    `gorm:"type:varchar(20);not null;default:'visit'"`

	Tier1Threshold int    `gorm:"not null"`
	Tier1Reward    string `gorm:"type:varchar(255)"`
	Tier2Enabled   bool   `gorm:"not null;default:false"`
	Tier2Threshold int
	Tier2Reward    string `gorm:"type:varchar(255)"`

	FraudShieldEnabled bool   `gorm:"not null;default:true"`
	Timezone           string `gorm:"type:varchar(64)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MerchantModel) TableName() string {
	return "merchants"
}

// BannedNumberModel mirrors the 'banned_numbers' table. A row hard-blocks one
// phone number within one merchant's program.
type BannedNumberModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MerchantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_banned_merchant_phone"`
	Phone      string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_banned_merchant_phone"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (BannedNumberModel) TableName() string {
	return "banned_numbers"
}
