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

// moderationServiceFixtures holds all test dependencies for moderation tests.
type moderationServiceFixtures struct {
	service        usecase.ModerationUsecase
	merchantRepo   *mockRepo.MockMerchantRepository
	visitRepo      *mockRepo.MockVisitRepository
	cardRepo       *mockRepo.MockLoyaltyCardRepository
	redemptionRepo *mockRepo.MockRedemptionRepository
}

func createTestModerationService(t *testing.T) moderationServiceFixtures {
	merchantRepo := mockRepo.NewMockMerchantRepository(t)
	visitRepo := mockRepo.NewMockVisitRepository(t)
	cardRepo := mockRepo.NewMockLoyaltyCardRepository(t)
	redemptionRepo := mockRepo.NewMockRedemptionRepository(t)

	txManager := &stubTransactionManager{factory: &stubRepositoryFactory{
		visitRepo:      visitRepo,
		cardRepo:       cardRepo,
		redemptionRepo: redemptionRepo,
	}}

	service := NewModerationService(merchantRepo, visitRepo, txManager, nil, testLogger())

	return moderationServiceFixtures{
		service:        service,
		merchantRepo:   merchantRepo,
		visitRepo:      visitRepo,
		cardRepo:       cardRepo,
		redemptionRepo: redemptionRepo,
	}
}

func pendingVisit(merchantID uuid.UUID) *entity.Visit {
	return &entity.Visit{
		ID:            uuid.New(),
		LoyaltyCardID: uuid.New(),
		CustomerID:    uuid.New(),
		MerchantID:    merchantID,
		PointsEarned:  2,
		Status:        entity.VisitStatusPending,
		FlaggedReason: "daily visit limit exceeded",
	}
}

func TestModerationService_ListPending(t *testing.T) {
	fx := createTestModerationService(t)

	ctx := context.Background()
	merchantID := uuid.New()
	visits := []*entity.Visit{pendingVisit(merchantID), pendingVisit(merchantID)}

	fx.visitRepo.EXPECT().FindPendingByMerchant(ctx, merchantID).Return(visits, nil)

	got, err := fx.service.ListPending(ctx, merchantID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestModerationService_Decide_ConfirmAppliesPoints(t *testing.T) {
	fx := createTestModerationService(t)

	ctx := context.Background()
	merchant := &entity.Merchant{ID: uuid.New(), Tier1Threshold: 10, Tier1Reward: "Free coffee"}
	visit := pendingVisit(merchant.ID)
	card := &entity.LoyaltyCard{ID: visit.LoyaltyCardID, MerchantID: merchant.ID, CurrentStamps: 6, Cycle: 0}

	fx.visitRepo.EXPECT().FindByID(ctx, visit.ID).Return(visit, nil)
	fx.merchantRepo.EXPECT().FindByID(ctx, merchant.ID).Return(merchant, nil)
	fx.visitRepo.EXPECT().MarkDecided(ctx, visit.ID, entity.VisitStatusConfirmed).Return(true, nil)
	fx.cardRepo.EXPECT().ApplyDelta(ctx, visit.LoyaltyCardID, visit.PointsEarned).Return(card, nil)
	fx.redemptionRepo.EXPECT().HasActive(ctx, card.ID, 1, 0).Return(false, nil)

	result, err := fx.service.Decide(ctx, merchant.ID, visit.ID, usecase.DecisionConfirm)
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Equal(t, entity.VisitStatusConfirmed, result.Status)
	assert.Equal(t, 6, result.CurrentStamps)
	assert.False(t, result.RewardUnlocked)
}

func TestModerationService_Decide_ConfirmUnlocksReward(t *testing.T) {
	fx := createTestModerationService(t)

	ctx := context.Background()
	merchant := &entity.Merchant{ID: uuid.New(), Tier1Threshold: 10, Tier1Reward: "Free coffee"}
	visit := pendingVisit(merchant.ID)
	card := &entity.LoyaltyCard{ID: visit.LoyaltyCardID, MerchantID: merchant.ID, CurrentStamps: 10, Cycle: 0}

	fx.visitRepo.EXPECT().FindByID(ctx, visit.ID).Return(visit, nil)
	fx.merchantRepo.EXPECT().FindByID(ctx, merchant.ID).Return(merchant, nil)
	fx.visitRepo.EXPECT().MarkDecided(ctx, visit.ID, entity.VisitStatusConfirmed).Return(true, nil)
	fx.cardRepo.EXPECT().ApplyDelta(ctx, visit.LoyaltyCardID, visit.PointsEarned).Return(card, nil)
	fx.redemptionRepo.EXPECT().HasActive(ctx, card.ID, 1, 0).Return(false, nil)

	result, err := fx.service.Decide(ctx, merchant.ID, visit.ID, usecase.DecisionConfirm)
	require.NoError(t, err)
	assert.True(t, result.RewardUnlocked)
	assert.Equal(t, 1, result.RewardTier)
}

func TestModerationService_Decide_Reject(t *testing.T) {
	fx := createTestModerationService(t)

	ctx := context.Background()
	merchantID := uuid.New()
	visit := pendingVisit(merchantID)

	fx.visitRepo.EXPECT().FindByID(ctx, visit.ID).Return(visit, nil)
	fx.visitRepo.EXPECT().MarkDecided(ctx, visit.ID, entity.VisitStatusRejected).Return(true, nil)

	result, err := fx.service.Decide(ctx, merchantID, visit.ID, usecase.DecisionReject)
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Equal(t, entity.VisitStatusRejected, result.Status)
	// Rejection never touches the ledger.
	fx.cardRepo.AssertNotCalled(t, "ApplyDelta", mock.Anything, mock.Anything, mock.Anything)
	fx.merchantRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestModerationService_Decide_AlreadyDecided(t *testing.T) {
	fx := createTestModerationService(t)

	ctx := context.Background()
	merchantID := uuid.New()
	visit := pendingVisit(merchantID)
	visit.Status = entity.VisitStatusConfirmed

	fx.visitRepo.EXPECT().FindByID(ctx, visit.ID).Return(visit, nil)

	result, err := fx.service.Decide(ctx, merchantID, visit.ID, usecase.DecisionConfirm)
	require.NoError(t, err)
	assert.False(t, result.Applied)
	assert.Equal(t, entity.VisitStatusConfirmed, result.Status)
	fx.visitRepo.AssertNotCalled(t, "MarkDecided", mock.Anything, mock.Anything, mock.Anything)
}

func TestModerationService_Decide_LosesDecisionRace(t *testing.T) {
	fx := createTestModerationService(t)

	ctx := context.Background()
	merchant := &entity.Merchant{ID: uuid.New(), Tier1Threshold: 10}
	visit := pendingVisit(merchant.ID)

	fx.visitRepo.EXPECT().FindByID(ctx, visit.ID).Return(visit, nil)
	fx.merchantRepo.EXPECT().FindByID(ctx, merchant.ID).Return(merchant, nil)
	// A concurrent moderator decided first; the conditional update refuses.
	fx.visitRepo.EXPECT().MarkDecided(ctx, visit.ID, entity.VisitStatusConfirmed).Return(false, nil)

	result, err := fx.service.Decide(ctx, merchant.ID, visit.ID, usecase.DecisionConfirm)
	require.NoError(t, err)
	assert.False(t, result.Applied)
	fx.cardRepo.AssertNotCalled(t, "ApplyDelta", mock.Anything, mock.Anything, mock.Anything)
}

func TestModerationService_Decide_ForeignVisit(t *testing.T) {
	fx := createTestModerationService(t)

	ctx := context.Background()
	visit := pendingVisit(uuid.New())

	fx.visitRepo.EXPECT().FindByID(ctx, visit.ID).Return(visit, nil)

	_, err := fx.service.Decide(ctx, uuid.New(), visit.ID, usecase.DecisionReject)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestModerationService_Decide_VisitNotFound(t *testing.T) {
	fx := createTestModerationService(t)

	ctx := context.Background()
	visitID := uuid.New()

	fx.visitRepo.EXPECT().FindByID(ctx, visitID).Return(nil, repository.ErrVisitNotFound)

	_, err := fx.service.Decide(ctx, uuid.New(), visitID, usecase.DecisionReject)
	require.ErrorIs(t, err, domainerrors.ErrVisitNotFound)
}

func TestModerationService_Decide_InvalidDecision(t *testing.T) {
	fx := createTestModerationService(t)

	ctx := context.Background()

	_, err := fx.service.Decide(ctx, uuid.New(), uuid.New(), "maybe")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestModerationService_DecideBulk_CountsSkippedItems(t *testing.T) {
	fx := createTestModerationService(t)

	ctx := context.Background()
	merchantID := uuid.New()
	ownVisit := pendingVisit(merchantID)
	foreignVisit := pendingVisit(uuid.New())

	fx.visitRepo.EXPECT().FindByID(ctx, ownVisit.ID).Return(ownVisit, nil)
	fx.visitRepo.EXPECT().MarkDecided(ctx, ownVisit.ID, entity.VisitStatusRejected).Return(true, nil)
	fx.visitRepo.EXPECT().FindByID(ctx, foreignVisit.ID).Return(foreignVisit, nil)

	summary, err := fx.service.DecideBulk(ctx, merchantID, []uuid.UUID{ownVisit.ID, foreignVisit.ID}, usecase.DecisionReject)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Decided)
	assert.Equal(t, 1, summary.Skipped)
	assert.Len(t, summary.Results, 1)
}
