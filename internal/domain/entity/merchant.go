// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// LoyaltyMode determines how a merchant's program accrues credit.
type LoyaltyMode string

const (
	// LoyaltyModeVisit credits exactly one stamp per check-in.
	LoyaltyModeVisit LoyaltyMode = "visit"
	// LoyaltyModeArticle credits a caller-supplied number of units per check-in.
	LoyaltyModeArticle LoyaltyMode = "article"
)

// Merchant is the tenant root. Every core operation is scoped by a merchant;
// its configuration drives the fraud shield and the reward tiers.
type Merchant struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`

	// ScanCode is the opaque code customers present to check in. Unique
	// across all tenants.
	ScanCode string      `json:"scan_code"`
	Mode     LoyaltyMode `json:"mode"`

	Tier1Threshold int    `json:"tier1_threshold"`
	Tier1Reward    string `json:"tier1_reward"`
	Tier2Enabled   bool   `json:"tier2_enabled"`
	Tier2Threshold int    `json:"tier2_threshold"`
	Tier2Reward    string `json:"tier2_reward"`

	FraudShieldEnabled bool `json:"fraud_shield_enabled"`

	// Timezone is the IANA zone defining the merchant's reporting-day
	// boundary for the fraud shield. Empty means the configured default.
	Timezone string `json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Threshold returns the stamp threshold for the given tier, or 0 for an
// unknown tier.
func (m *Merchant) Threshold(tier int) int {
	switch tier {
	case 1:
		return m.Tier1Threshold
	case 2:
		return m.Tier2Threshold
	default:
		return 0
	}
}

// Reward returns the reward description for the given tier.
func (m *Merchant) Reward(tier int) string {
	switch tier {
	case 1:
		return m.Tier1Reward
	case 2:
		return m.Tier2Reward
	default:
		return ""
	}
}

// Location resolves the merchant's reporting timezone, falling back to the
// supplied default and finally to UTC when neither parses.
func (m *Merchant) Location(defaultTZ string) *time.Location {
	if m.Timezone != "" {
		if loc, err := time.LoadLocation(m.Timezone); err == nil {
			return loc
		}
	}
	if defaultTZ != "" {
		if loc, err := time.LoadLocation(defaultTZ); err == nil {
			return loc
		}
	}

	return time.UTC
}
