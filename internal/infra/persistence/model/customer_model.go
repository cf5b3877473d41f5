package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerModel mirrors the 'customers' table. The composite unique index on
// (phone, merchant_id) enforces one identity per phone per tenant.
type CustomerModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MerchantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_customers_phone_merchant"`
	Phone      string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_customers_phone_merchant"`
	FirstName  string    `gorm:"type:varchar(100)"`
	LastName   string    `gorm:"type:varchar(100)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	LoyaltyCard *LoyaltyCardModel `gorm:"foreignKey:CustomerID"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

// LoyaltyCardModel mirrors the 'loyalty_cards' table.
type LoyaltyCardModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	MerchantID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CurrentStamps int       `gorm:"not null;default:0"`
	StampsTarget  int       `gorm:"not null"`
	Cycle         int       `gorm:"not null;default:0"`
	LastVisitDate *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (LoyaltyCardModel) TableName() string {
	return "loyalty_cards"
}
