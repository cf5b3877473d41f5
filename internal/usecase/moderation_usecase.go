package usecase

import (
	"context"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
)

// ModerationDecision is a merchant's verdict on a quarantined visit.
type ModerationDecision string

const (
	// DecisionConfirm applies the deferred points and re-runs reward evaluation.
	DecisionConfirm ModerationDecision = "confirm"
	// DecisionReject discards the deferred points; terminal, no ledger effect.
	DecisionReject ModerationDecision = "reject"
)

// Valid reports whether the decision is one of the supported verdicts.
func (d ModerationDecision) Valid() bool {
	return d == DecisionConfirm || d == DecisionReject
}

// DecisionResult describes the effect of one moderation decision.
// Applied is false when the visit was already decided (idempotent no-op).
type DecisionResult struct {
	VisitID        uuid.UUID          `json:"visit_id"`
	Applied        bool               `json:"applied"`
	Status         entity.VisitStatus `json:"status"`
	CurrentStamps  int                `json:"current_stamps,omitempty"`
	RewardUnlocked bool               `json:"reward_unlocked,omitempty"`
	RewardTier     int                `json:"reward_tier,omitempty"`
}

// BulkDecisionSummary aggregates a bulk moderation call.
type BulkDecisionSummary struct {
	Decided int               `json:"decided"`
	Skipped int               `json:"skipped"`
	Results []*DecisionResult `json:"results"`
}

// ModerationUsecase manages the queue of quarantined visits.
type ModerationUsecase interface {
	// ListPending returns the merchant's quarantined visits, oldest first.
	ListPending(ctx context.Context, merchantID uuid.UUID) ([]*entity.Visit, error)

	// Decide applies one verdict to one visit. Repeating a decision on an
	// already-decided visit is a no-op, not an error.
	Decide(ctx context.Context, merchantID, visitID uuid.UUID, decision ModerationDecision) (*DecisionResult, error)

	// DecideBulk applies the same verdict to a set of visits.
	DecideBulk(ctx context.Context, merchantID uuid.UUID, visitIDs []uuid.UUID, decision ModerationDecision) (*BulkDecisionSummary, error)
}
