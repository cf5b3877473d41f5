// Package impl contains the concrete use case implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"stampcard/config"
	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/domain/service"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type checkinService struct {
	merchantRepo repository.MerchantRepository
	customerRepo repository.CustomerRepository
	cardRepo     repository.LoyaltyCardRepository
	visitRepo    repository.VisitRepository
	bannedRepo   repository.BannedNumberRepository
	txManager    repository.TransactionManager
	publisher    service.EventPublisher
	shield       *fraudShield
	logger       *slog.Logger
}

// NewCheckinService creates a new check-in service instance.
func NewCheckinService(
	merchantRepo repository.MerchantRepository,
	customerRepo repository.CustomerRepository,
	cardRepo repository.LoyaltyCardRepository,
	visitRepo repository.VisitRepository,
	bannedRepo repository.BannedNumberRepository,
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CheckinUsecase {
	return &checkinService{
		merchantRepo: merchantRepo,
		customerRepo: customerRepo,
		cardRepo:     cardRepo,
		visitRepo:    visitRepo,
		bannedRepo:   bannedRepo,
		txManager:    txManager,
		publisher:    publisher,
		shield:       newFraudShield(cfg.ShieldTimezone()),
		logger:       logger,
	}
}

// Checkin processes one scan event end to end: tenant resolution, ban check,
// customer resolution, fraud shield, ledger mutation and reward evaluation.
func (s *checkinService) Checkin(ctx context.Context, input *usecase.CheckinInput) (*usecase.CheckinResult, error) {
	merchant, err := s.merchantRepo.FindByScanCode(ctx, input.ScanCode)
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return nil, domainerrors.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve merchant by scan code")
	}

	phone := strings.TrimSpace(input.Phone)

	// Banned numbers short-circuit before any customer lookup.
	banned, err := s.bannedRepo.Exists(ctx, merchant.ID, phone)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check banned numbers")
	}
	if banned {
		return &usecase.CheckinResult{Banned: true}, nil
	}

	customer, err := s.customerRepo.FindByPhoneAndMerchant(ctx, phone, merchant.ID)
	isNew := false
	if err != nil {
		if !errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, errors.Wrap(err, "failed to find customer")
		}
		// Unknown customer with no registration data: let the caller prompt
		// for it instead of creating a partial record.
		if input.Profile == nil {
			return &usecase.CheckinResult{NeedsRegistration: true}, nil
		}
		isNew = true
	}

	points := 1
	if merchant.Mode == entity.LoyaltyModeArticle && input.PointsToAdd > 0 {
		points = input.PointsToAdd
	}

	var card *entity.LoyaltyCard
	if !isNew {
		card, err = s.cardRepo.FindByCustomer(ctx, customer.ID)
		if err != nil && !errors.Is(err, repository.ErrCardNotFound) {
			return nil, errors.Wrap(err, "failed to find loyalty card")
		}
	}

	flaggedReason := ""
	if merchant.FraudShieldEnabled {
		if card != nil {
			flaggedReason, err = s.shield.Evaluate(ctx, s.visitRepo, merchant, card.ID, points, time.Now())
			if err != nil {
				return nil, err
			}
		} else {
			// First scan ever for this customer: only the per-scan unit cap
			// can apply, there is no history to count.
			flaggedReason = s.shield.UnitCapReason(merchant, points)
		}
	}
	quarantined := flaggedReason != ""

	var reward *rewardStatus
	err = s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		if isNew {
			customer = &entity.Customer{
				ID:         uuid.New(),
				MerchantID: merchant.ID,
				Phone:      phone,
				FirstName:  input.Profile.FirstName,
				LastName:   input.Profile.LastName,
			}
			if err := txRepos.NewCustomerRepository().Create(ctx, customer); err != nil {
				return errors.Wrap(err, "failed to create customer")
			}
		}

		cards := txRepos.NewLoyaltyCardRepository()
		if card == nil {
			card = &entity.LoyaltyCard{
				ID:           uuid.New(),
				CustomerID:   customer.ID,
				MerchantID:   merchant.ID,
				StampsTarget: merchant.Tier1Threshold,
			}
			if err := cards.Create(ctx, card); err != nil {
				return errors.Wrap(err, "failed to create loyalty card")
			}
		}

		status := entity.VisitStatusConfirmed
		if quarantined {
			status = entity.VisitStatusPending
		}
		visit := &entity.Visit{
			ID:            uuid.New(),
			LoyaltyCardID: card.ID,
			CustomerID:    customer.ID,
			MerchantID:    merchant.ID,
			PointsEarned:  points,
			Status:        status,
			FlaggedReason: flaggedReason,
			VisitedAt:     time.Now(),
		}
		if err := txRepos.NewVisitRepository().Create(ctx, visit); err != nil {
			return errors.Wrap(err, "failed to record visit")
		}

		// A quarantined scan leaves the balance untouched; its points apply
		// only at moderation confirmation.
		if quarantined {
			return nil
		}

		card, err = cards.ApplyDelta(ctx, card.ID, points)
		if err != nil {
			return errors.Wrap(err, "failed to apply points")
		}

		reward, err = evaluateRewards(ctx, txRepos.NewRedemptionRepository(), merchant, card)

		return err
	})
	if err != nil {
		return nil, err
	}

	result := &usecase.CheckinResult{
		Success:       true,
		PendingReview: quarantined,
		FlaggedReason: flaggedReason,
		PointsEarned:  points,
		CurrentStamps: card.CurrentStamps,
		StampsTarget:  card.StampsTarget,
	}
	if reward != nil {
		result.RewardUnlocked = reward.Unlocked
		result.RewardTier = reward.Tier
		result.Reward = reward.Reward
		result.Tier1Redeemed = reward.Tier1Redeemed
	}

	publishRewardAsync(ctx, s.logger, s.publisher, merchant, card, customer.ID, reward)

	return result, nil
}
