package impl

import (
	"context"
	"log/slog"

	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type redemptionService struct {
	merchantRepo   repository.MerchantRepository
	cardRepo       repository.LoyaltyCardRepository
	redemptionRepo repository.RedemptionRepository
	txManager      repository.TransactionManager
	logger         *slog.Logger
}

// NewRedemptionService creates a new redemption service instance.
func NewRedemptionService(
	merchantRepo repository.MerchantRepository,
	cardRepo repository.LoyaltyCardRepository,
	redemptionRepo repository.RedemptionRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.RedemptionUsecase {
	return &redemptionService{
		merchantRepo:   merchantRepo,
		cardRepo:       cardRepo,
		redemptionRepo: redemptionRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// Redeem claims a reward tier for a card owned by the calling merchant.
func (s *redemptionService) Redeem(ctx context.Context, merchantID, cardID uuid.UUID, tier int) (*usecase.RedeemResult, error) {
	if tier != 1 && tier != 2 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("tier must be 1 or 2")
	}

	card, err := s.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return nil, domainerrors.ErrCardNotFound
		}

		return nil, errors.Wrap(err, "failed to find loyalty card")
	}

	// Ownership precedes everything else.
	if card.MerchantID != merchantID {
		return nil, domainerrors.ErrForbidden
	}

	merchant, err := s.merchantRepo.FindByID(ctx, card.MerchantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load merchant configuration")
	}

	if tier == 2 && !merchant.Tier2Enabled {
		return nil, domainerrors.ErrTierNotEnabled
	}
	if card.CurrentStamps < merchant.Threshold(tier) {
		return nil, domainerrors.ErrInsufficientStamps
	}

	// Friendly pre-check; the storage-layer unique index on
	// (card, tier, cycle) remains the authoritative guard below.
	active, err := s.redemptionRepo.HasActive(ctx, card.ID, tier, card.Cycle)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check redemption state")
	}
	if active {
		return nil, domainerrors.ErrAlreadyRedeemed
	}

	// Tier 2 always resets. Tier 1 resets only when tier 2 is disabled:
	// with tier 2 enabled, tier 1 is a checkpoint reward and the balance
	// keeps accruing toward tier 2.
	reset := tier == 2 || !merchant.Tier2Enabled

	err = s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		redemption := &entity.Redemption{
			ID:            uuid.New(),
			LoyaltyCardID: card.ID,
			Tier:          tier,
			Cycle:         card.Cycle,
		}
		if err := txRepos.NewRedemptionRepository().Create(ctx, redemption); err != nil {
			return err
		}

		if !reset {
			return nil
		}

		updated, err := txRepos.NewLoyaltyCardRepository().Reset(ctx, card.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reset loyalty card")
		}
		card = updated

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateRedemption) {
			// Lost a race against a concurrent redemption of the same tier.
			return nil, domainerrors.ErrAlreadyRedeemed
		}

		return nil, err
	}

	return &usecase.RedeemResult{
		Success:       true,
		Tier:          tier,
		StampsReset:   reset,
		CurrentStamps: card.CurrentStamps,
	}, nil
}
