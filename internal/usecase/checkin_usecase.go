// Package usecase defines the application-level interfaces consumed by the
// delivery layer. Implementations live in usecase/impl.
package usecase

import (
	"context"
)

// CustomerProfile carries the registration data of a first-time customer.
type CustomerProfile struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
}

// CheckinInput is the validated input of one scan event.
type CheckinInput struct {
	ScanCode string `json:"scan_code" validate:"required"`
	Phone    string `json:"phone" validate:"required,e164"`

	// Profile is only consulted when no customer exists yet for
	// (phone, merchant); it is never used to overwrite an existing profile.
	Profile *CustomerProfile `json:"profile,omitempty"`

	// PointsToAdd applies only in article mode; defaults to 1.
	PointsToAdd int `json:"points_to_add,omitempty" validate:"omitempty,min=1"`
}

// CheckinResult is the outcome of one scan event. NeedsRegistration, Banned
// and PendingReview are expected outcomes, not errors: the scanning client
// renders a specific message for each.
type CheckinResult struct {
	Success           bool   `json:"success"`
	NeedsRegistration bool   `json:"needs_registration"`
	Banned            bool   `json:"banned"`
	PendingReview     bool   `json:"pending_review"`
	FlaggedReason     string `json:"flagged_reason,omitempty"`

	PointsEarned  int `json:"points_earned"`
	CurrentStamps int `json:"current_stamps"`
	StampsTarget  int `json:"stamps_target"`

	RewardUnlocked bool   `json:"reward_unlocked"`
	RewardTier     int    `json:"reward_tier,omitempty"`
	Reward         string `json:"reward,omitempty"`
	Tier1Redeemed  bool   `json:"tier1_redeemed"`
}

// CheckinUsecase turns a scan event into a durable, fraud-checked,
// tenant-isolated point change.
type CheckinUsecase interface {
	Checkin(ctx context.Context, input *CheckinInput) (*CheckinResult, error)
}
