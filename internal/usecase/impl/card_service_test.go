package impl

import (
	"context"
	"testing"

	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	mockRepo "stampcard/internal/mocks/repository"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cardServiceFixtures holds all test dependencies for card service tests.
type cardServiceFixtures struct {
	service        usecase.CardUsecase
	cardRepo       *mockRepo.MockLoyaltyCardRepository
	customerRepo   *mockRepo.MockCustomerRepository
	visitRepo      *mockRepo.MockVisitRepository
	redemptionRepo *mockRepo.MockRedemptionRepository
	adjustmentRepo *mockRepo.MockPointAdjustmentRepository
}

func createTestCardService(t *testing.T) cardServiceFixtures {
	cardRepo := mockRepo.NewMockLoyaltyCardRepository(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	visitRepo := mockRepo.NewMockVisitRepository(t)
	redemptionRepo := mockRepo.NewMockRedemptionRepository(t)
	adjustmentRepo := mockRepo.NewMockPointAdjustmentRepository(t)

	txManager := &stubTransactionManager{factory: &stubRepositoryFactory{
		cardRepo:       cardRepo,
		adjustmentRepo: adjustmentRepo,
	}}

	service := NewCardService(cardRepo, customerRepo, visitRepo, redemptionRepo, txManager)

	return cardServiceFixtures{
		service:        service,
		cardRepo:       cardRepo,
		customerRepo:   customerRepo,
		visitRepo:      visitRepo,
		redemptionRepo: redemptionRepo,
		adjustmentRepo: adjustmentRepo,
	}
}

func TestCardService_Adjust_Success(t *testing.T) {
	fx := createTestCardService(t)

	ctx := context.Background()
	merchantID := uuid.New()
	card := &entity.LoyaltyCard{ID: uuid.New(), MerchantID: merchantID, CurrentStamps: 5}
	updated := &entity.LoyaltyCard{ID: card.ID, MerchantID: merchantID, CurrentStamps: 3}

	fx.cardRepo.EXPECT().FindByID(ctx, card.ID).Return(card, nil)
	fx.adjustmentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PointAdjustment")).
		Run(func(ctx context.Context, adjustment *entity.PointAdjustment) {
			assert.Equal(t, card.ID, adjustment.LoyaltyCardID)
			assert.Equal(t, merchantID, adjustment.MerchantID)
			assert.Equal(t, -2, adjustment.Delta)
			assert.Equal(t, "refund correction", adjustment.Reason)
		}).
		Return(nil)
	fx.cardRepo.EXPECT().ApplyDelta(ctx, card.ID, -2).Return(updated, nil)

	got, err := fx.service.Adjust(ctx, merchantID, card.ID, -2, "refund correction")
	require.NoError(t, err)
	assert.Equal(t, 3, got.CurrentStamps)
}

func TestCardService_Adjust_ZeroDelta(t *testing.T) {
	fx := createTestCardService(t)

	ctx := context.Background()

	_, err := fx.service.Adjust(ctx, uuid.New(), uuid.New(), 0, "noop")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	fx.cardRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCardService_Adjust_ForeignCard(t *testing.T) {
	fx := createTestCardService(t)

	ctx := context.Background()
	card := &entity.LoyaltyCard{ID: uuid.New(), MerchantID: uuid.New()}

	fx.cardRepo.EXPECT().FindByID(ctx, card.ID).Return(card, nil)

	_, err := fx.service.Adjust(ctx, uuid.New(), card.ID, 1, "bonus")
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCardService_Summary_Success(t *testing.T) {
	fx := createTestCardService(t)

	ctx := context.Background()
	merchantID := uuid.New()
	customer := &entity.Customer{ID: uuid.New(), MerchantID: merchantID, FirstName: "Ada"}
	card := &entity.LoyaltyCard{ID: uuid.New(), CustomerID: customer.ID, MerchantID: merchantID, CurrentStamps: 7, Cycle: 1}
	visits := []*entity.Visit{
		{ID: uuid.New(), LoyaltyCardID: card.ID, Status: entity.VisitStatusConfirmed},
	}

	fx.cardRepo.EXPECT().FindByID(ctx, card.ID).Return(card, nil)
	fx.customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	fx.visitRepo.EXPECT().FindRecentByCard(ctx, card.ID, 20).Return(visits, nil)
	fx.redemptionRepo.EXPECT().HasActive(ctx, card.ID, 1, 1).Return(true, nil)
	fx.redemptionRepo.EXPECT().HasActive(ctx, card.ID, 2, 1).Return(false, nil)

	summary, err := fx.service.Summary(ctx, merchantID, card.ID)
	require.NoError(t, err)
	assert.Equal(t, card, summary.Card)
	assert.Equal(t, customer, summary.Customer)
	assert.Len(t, summary.RecentVisits, 1)
	assert.True(t, summary.Tier1Redeemed)
	assert.False(t, summary.Tier2Redeemed)
}

func TestCardService_Summary_CardNotFound(t *testing.T) {
	fx := createTestCardService(t)

	ctx := context.Background()
	cardID := uuid.New()

	fx.cardRepo.EXPECT().FindByID(ctx, cardID).Return(nil, repository.ErrCardNotFound)

	_, err := fx.service.Summary(ctx, uuid.New(), cardID)
	require.ErrorIs(t, err, domainerrors.ErrCardNotFound)
}
