package impl

import (
	"context"
	"testing"
	"time"

	"stampcard/internal/domain/entity"
	mockRepo "stampcard/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFraudShield_UnitCapReason(t *testing.T) {
	shield := newFraudShield("UTC")

	articleMerchant := &entity.Merchant{Mode: entity.LoyaltyModeArticle}
	assert.Empty(t, shield.UnitCapReason(articleMerchant, 3))
	assert.Equal(t, "per-scan unit limit exceeded", shield.UnitCapReason(articleMerchant, 4))

	// Visit mode never hits the unit cap.
	visitMerchant := &entity.Merchant{Mode: entity.LoyaltyModeVisit}
	assert.Empty(t, shield.UnitCapReason(visitMerchant, 100))
}

func TestFraudShield_Evaluate_VisitMode(t *testing.T) {
	shield := newFraudShield("UTC")
	ctx := context.Background()
	merchant := &entity.Merchant{Mode: entity.LoyaltyModeVisit}
	cardID := uuid.New()
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	t.Run("first visit of the day passes", func(t *testing.T) {
		visits := mockRepo.NewMockVisitRepository(t)
		visits.EXPECT().
			CountAccrualsSince(ctx, cardID, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)).
			Return(0, nil)

		reason, err := shield.Evaluate(ctx, visits, merchant, cardID, 1, now)
		require.NoError(t, err)
		assert.Empty(t, reason)
	})

	t.Run("second visit of the day is flagged", func(t *testing.T) {
		visits := mockRepo.NewMockVisitRepository(t)
		visits.EXPECT().
			CountAccrualsSince(ctx, cardID, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)).
			Return(1, nil)

		reason, err := shield.Evaluate(ctx, visits, merchant, cardID, 1, now)
		require.NoError(t, err)
		assert.Equal(t, "daily visit limit exceeded", reason)
	})
}

func TestFraudShield_Evaluate_ArticleMode(t *testing.T) {
	shield := newFraudShield("UTC")
	ctx := context.Background()
	merchant := &entity.Merchant{Mode: entity.LoyaltyModeArticle}
	cardID := uuid.New()
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	t.Run("second scan of the day passes", func(t *testing.T) {
		visits := mockRepo.NewMockVisitRepository(t)
		visits.EXPECT().
			CountAccrualsSince(ctx, cardID, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)).
			Return(1, nil)

		reason, err := shield.Evaluate(ctx, visits, merchant, cardID, 2, now)
		require.NoError(t, err)
		assert.Empty(t, reason)
	})

	t.Run("third scan of the day is flagged", func(t *testing.T) {
		visits := mockRepo.NewMockVisitRepository(t)
		visits.EXPECT().
			CountAccrualsSince(ctx, cardID, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)).
			Return(2, nil)

		reason, err := shield.Evaluate(ctx, visits, merchant, cardID, 2, now)
		require.NoError(t, err)
		assert.Equal(t, "daily scan limit exceeded", reason)
	})

	t.Run("unit cap wins without touching storage", func(t *testing.T) {
		visits := mockRepo.NewMockVisitRepository(t)

		reason, err := shield.Evaluate(ctx, visits, merchant, cardID, 4, now)
		require.NoError(t, err)
		assert.Equal(t, "per-scan unit limit exceeded", reason)
	})
}

func TestFraudShield_LocalDayStart_MerchantTimezone(t *testing.T) {
	shield := newFraudShield("UTC")
	taipei, err := time.LoadLocation("Asia/Taipei")
	require.NoError(t, err)

	merchant := &entity.Merchant{Timezone: "Asia/Taipei"}

	// 17:00 UTC is already 01:00 of the next day in Taipei, so the day
	// boundary must land on the Taipei midnight, not the UTC one.
	now := time.Date(2026, 8, 28, 17, 0, 0, 0, time.UTC)
	dayStart := shield.LocalDayStart(merchant, now)

	assert.True(t, dayStart.Equal(time.Date(2026, 8, 29, 0, 0, 0, 0, taipei)))
}

func TestFraudShield_LocalDayStart_FallsBackToDefault(t *testing.T) {
	shield := newFraudShield("UTC")
	merchant := &entity.Merchant{Timezone: "Not/AZone"}

	now := time.Date(2026, 8, 28, 23, 30, 0, 0, time.UTC)
	dayStart := shield.LocalDayStart(merchant, now)

	assert.True(t, dayStart.Equal(time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)))
}
