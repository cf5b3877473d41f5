package impl

import (
	"context"
	"log/slog"

	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/domain/service"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type moderationService struct {
	merchantRepo repository.MerchantRepository
	visitRepo    repository.VisitRepository
	txManager    repository.TransactionManager
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// NewModerationService creates a new moderation service instance.
func NewModerationService(
	merchantRepo repository.MerchantRepository,
	visitRepo repository.VisitRepository,
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ModerationUsecase {
	return &moderationService{
		merchantRepo: merchantRepo,
		visitRepo:    visitRepo,
		txManager:    txManager,
		publisher:    publisher,
		logger:       logger,
	}
}

// ListPending returns the merchant's quarantined visits, oldest first.
func (s *moderationService) ListPending(ctx context.Context, merchantID uuid.UUID) ([]*entity.Visit, error) {
	visits, err := s.visitRepo.FindPendingByMerchant(ctx, merchantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending visits")
	}

	return visits, nil
}

// Decide applies one verdict to one quarantined visit. Confirming applies
// the deferred points and re-runs reward evaluation; rejecting is terminal
// with no ledger effect. Deciding an already-decided visit is a no-op.
func (s *moderationService) Decide(ctx context.Context, merchantID, visitID uuid.UUID, decision usecase.ModerationDecision) (*usecase.DecisionResult, error) {
	if !decision.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("decision must be confirm or reject")
	}

	visit, err := s.visitRepo.FindByID(ctx, visitID)
	if err != nil {
		if errors.Is(err, repository.ErrVisitNotFound) {
			return nil, domainerrors.ErrVisitNotFound
		}

		return nil, errors.Wrap(err, "failed to find visit")
	}

	if visit.MerchantID != merchantID {
		return nil, domainerrors.ErrForbidden
	}

	// Tolerate double-submission from the moderation UI.
	if visit.Decided() {
		return &usecase.DecisionResult{
			VisitID: visit.ID,
			Applied: false,
			Status:  visit.Status,
		}, nil
	}

	target := entity.VisitStatusRejected
	var merchant *entity.Merchant
	if decision == usecase.DecisionConfirm {
		target = entity.VisitStatusConfirmed
		merchant, err = s.merchantRepo.FindByID(ctx, visit.MerchantID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load merchant configuration")
		}
	}

	applied := false
	var card *entity.LoyaltyCard
	var reward *rewardStatus
	err = s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		transitioned, err := txRepos.NewVisitRepository().MarkDecided(ctx, visit.ID, target)
		if err != nil {
			return errors.Wrap(err, "failed to mark visit decided")
		}
		// Someone else decided first; the conditional update keeps the
		// points from ever being applied twice.
		if !transitioned {
			return nil
		}
		applied = true

		if target != entity.VisitStatusConfirmed {
			return nil
		}

		card, err = txRepos.NewLoyaltyCardRepository().ApplyDelta(ctx, visit.LoyaltyCardID, visit.PointsEarned)
		if err != nil {
			return errors.Wrap(err, "failed to apply deferred points")
		}

		reward, err = evaluateRewards(ctx, txRepos.NewRedemptionRepository(), merchant, card)

		return err
	})
	if err != nil {
		return nil, err
	}

	result := &usecase.DecisionResult{
		VisitID: visit.ID,
		Applied: applied,
		Status:  visit.Status,
	}
	if applied {
		result.Status = target
	}
	if card != nil {
		result.CurrentStamps = card.CurrentStamps
	}
	if reward != nil {
		result.RewardUnlocked = reward.Unlocked
		result.RewardTier = reward.Tier
		publishRewardAsync(ctx, s.logger, s.publisher, merchant, card, visit.CustomerID, reward)
	}

	return result, nil
}

// DecideBulk applies the same verdict to a set of visits. Per-item failures
// (unknown or foreign visits) are counted as skipped rather than aborting
// the batch.
func (s *moderationService) DecideBulk(ctx context.Context, merchantID uuid.UUID, visitIDs []uuid.UUID, decision usecase.ModerationDecision) (*usecase.BulkDecisionSummary, error) {
	if !decision.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("decision must be confirm or reject")
	}

	summary := &usecase.BulkDecisionSummary{}
	for _, visitID := range visitIDs {
		result, err := s.Decide(ctx, merchantID, visitID, decision)
		if err != nil {
			s.logger.Warn("Bulk moderation item failed",
				slog.String("visit_id", visitID.String()),
				slog.Any("error", err),
			)
			summary.Skipped++

			continue
		}
		if result.Applied {
			summary.Decided++
		} else {
			summary.Skipped++
		}
		summary.Results = append(summary.Results, result)
	}

	return summary, nil
}
