package impl

import (
	"context"
	"testing"

	"stampcard/internal/domain/entity"
	mockRepo "stampcard/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateRewards_Tier1Unlocked(t *testing.T) {
	ctx := context.Background()
	merchant := twoTierMerchant()
	card := &entity.LoyaltyCard{ID: uuid.New(), CurrentStamps: 10, Cycle: 0}

	redemptions := mockRepo.NewMockRedemptionRepository(t)
	redemptions.EXPECT().HasActive(ctx, card.ID, 1, 0).Return(false, nil)
	redemptions.EXPECT().HasActive(ctx, card.ID, 2, 0).Return(false, nil)

	status, err := evaluateRewards(ctx, redemptions, merchant, card)
	require.NoError(t, err)
	assert.True(t, status.Unlocked)
	assert.Equal(t, 1, status.Tier)
	assert.Equal(t, merchant.Tier1Reward, status.Reward)
}

func TestEvaluateRewards_HigherTierWins(t *testing.T) {
	ctx := context.Background()
	merchant := twoTierMerchant()
	card := &entity.LoyaltyCard{ID: uuid.New(), CurrentStamps: 25, Cycle: 0}

	redemptions := mockRepo.NewMockRedemptionRepository(t)
	redemptions.EXPECT().HasActive(ctx, card.ID, 1, 0).Return(false, nil)
	redemptions.EXPECT().HasActive(ctx, card.ID, 2, 0).Return(false, nil)

	status, err := evaluateRewards(ctx, redemptions, merchant, card)
	require.NoError(t, err)
	assert.True(t, status.Unlocked)
	assert.Equal(t, 2, status.Tier)
	assert.Equal(t, merchant.Tier2Reward, status.Reward)
}

func TestEvaluateRewards_Tier2IndependentOfTier1(t *testing.T) {
	ctx := context.Background()
	merchant := twoTierMerchant()
	card := &entity.LoyaltyCard{ID: uuid.New(), CurrentStamps: 20, Cycle: 1}

	// Tier 1 already claimed this cycle; tier 2 still unlocks on its own.
	redemptions := mockRepo.NewMockRedemptionRepository(t)
	redemptions.EXPECT().HasActive(ctx, card.ID, 1, 1).Return(true, nil)
	redemptions.EXPECT().HasActive(ctx, card.ID, 2, 1).Return(false, nil)

	status, err := evaluateRewards(ctx, redemptions, merchant, card)
	require.NoError(t, err)
	assert.True(t, status.Unlocked)
	assert.Equal(t, 2, status.Tier)
	assert.True(t, status.Tier1Redeemed)
	assert.False(t, status.Tier2Redeemed)
}

func TestEvaluateRewards_RedeemedTierStaysLocked(t *testing.T) {
	ctx := context.Background()
	merchant := twoTierMerchant()
	merchant.Tier2Enabled = false
	card := &entity.LoyaltyCard{ID: uuid.New(), CurrentStamps: 15, Cycle: 0}

	redemptions := mockRepo.NewMockRedemptionRepository(t)
	redemptions.EXPECT().HasActive(ctx, card.ID, 1, 0).Return(true, nil)

	status, err := evaluateRewards(ctx, redemptions, merchant, card)
	require.NoError(t, err)
	assert.False(t, status.Unlocked)
	assert.True(t, status.Tier1Redeemed)
}

func TestEvaluateRewards_BelowThreshold(t *testing.T) {
	ctx := context.Background()
	merchant := twoTierMerchant()
	merchant.Tier2Enabled = false
	card := &entity.LoyaltyCard{ID: uuid.New(), CurrentStamps: 4, Cycle: 0}

	redemptions := mockRepo.NewMockRedemptionRepository(t)
	redemptions.EXPECT().HasActive(ctx, card.ID, 1, 0).Return(false, nil)

	status, err := evaluateRewards(ctx, redemptions, merchant, card)
	require.NoError(t, err)
	assert.False(t, status.Unlocked)
	assert.Zero(t, status.Tier)
}
