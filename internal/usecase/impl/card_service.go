package impl

import (
	"context"

	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const recentVisitLimit = 20

type cardService struct {
	cardRepo       repository.LoyaltyCardRepository
	customerRepo   repository.CustomerRepository
	visitRepo      repository.VisitRepository
	redemptionRepo repository.RedemptionRepository
	txManager      repository.TransactionManager
}

// NewCardService creates a new card service instance.
func NewCardService(
	cardRepo repository.LoyaltyCardRepository,
	customerRepo repository.CustomerRepository,
	visitRepo repository.VisitRepository,
	redemptionRepo repository.RedemptionRepository,
	txManager repository.TransactionManager,
) usecase.CardUsecase {
	return &cardService{
		cardRepo:       cardRepo,
		customerRepo:   customerRepo,
		visitRepo:      visitRepo,
		redemptionRepo: redemptionRepo,
		txManager:      txManager,
	}
}

// Adjust applies a manual correction outside the scan/fraud pipeline. The
// audit row and the ledger mutation commit together or not at all.
func (s *cardService) Adjust(ctx context.Context, merchantID, cardID uuid.UUID, delta int, reason string) (*entity.LoyaltyCard, error) {
	if delta == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("delta must be non-zero")
	}

	card, err := s.findOwnedCard(ctx, merchantID, cardID)
	if err != nil {
		return nil, err
	}

	err = s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		adjustment := &entity.PointAdjustment{
			ID:            uuid.New(),
			LoyaltyCardID: card.ID,
			MerchantID:    merchantID,
			Delta:         delta,
			Reason:        reason,
		}
		if err := txRepos.NewPointAdjustmentRepository().Create(ctx, adjustment); err != nil {
			return errors.Wrap(err, "failed to record point adjustment")
		}

		updated, err := txRepos.NewLoyaltyCardRepository().ApplyDelta(ctx, card.ID, delta)
		if err != nil {
			return errors.Wrap(err, "failed to apply adjustment")
		}
		card = updated

		return nil
	})
	if err != nil {
		return nil, err
	}

	return card, nil
}

// Summary returns the card, its owner and recent activity for the merchant
// back-office.
func (s *cardService) Summary(ctx context.Context, merchantID, cardID uuid.UUID) (*usecase.CardSummary, error) {
	card, err := s.findOwnedCard(ctx, merchantID, cardID)
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.FindByID(ctx, card.CustomerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load card owner")
	}

	visits, err := s.visitRepo.FindRecentByCard(ctx, card.ID, recentVisitLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recent visits")
	}

	tier1Redeemed, err := s.redemptionRepo.HasActive(ctx, card.ID, 1, card.Cycle)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check tier 1 redemption state")
	}
	tier2Redeemed, err := s.redemptionRepo.HasActive(ctx, card.ID, 2, card.Cycle)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check tier 2 redemption state")
	}

	return &usecase.CardSummary{
		Card:          card,
		Customer:      customer,
		RecentVisits:  visits,
		Tier1Redeemed: tier1Redeemed,
		Tier2Redeemed: tier2Redeemed,
	}, nil
}

func (s *cardService) findOwnedCard(ctx context.Context, merchantID, cardID uuid.UUID) (*entity.LoyaltyCard, error) {
	card, err := s.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return nil, domainerrors.ErrCardNotFound
		}

		return nil, errors.Wrap(err, "failed to find loyalty card")
	}
	if card.MerchantID != merchantID {
		return nil, domainerrors.ErrForbidden
	}

	return card, nil
}
