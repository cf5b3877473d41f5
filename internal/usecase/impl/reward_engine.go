package impl

import (
	"context"
	"log/slog"

	"stampcard/internal/domain/entity"
	"stampcard/internal/domain/repository"
	"stampcard/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// rewardStatus is the outcome of one reward evaluation. Reporting an unlock
// is informational only; claiming happens exclusively through the explicit
// redemption operation.
type rewardStatus struct {
	Unlocked      bool
	Tier          int
	Reward        string
	Tier1Redeemed bool
	Tier2Redeemed bool
}

// evaluateRewards compares the card balance against the merchant's tier
// thresholds. A tier counts as unlocked only while no redemption for it
// exists in the card's current cycle; tier 2 is independent of tier 1's
// redemption state. When both tiers qualify, the higher one is reported.
func evaluateRewards(ctx context.Context, redemptions repository.RedemptionRepository, merchant *entity.Merchant, card *entity.LoyaltyCard) (*rewardStatus, error) {
	status := &rewardStatus{}

	tier1Redeemed, err := redemptions.HasActive(ctx, card.ID, 1, card.Cycle)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check tier 1 redemption state")
	}
	status.Tier1Redeemed = tier1Redeemed

	if card.CurrentStamps >= merchant.Tier1Threshold && !tier1Redeemed {
		status.Unlocked = true
		status.Tier = 1
		status.Reward = merchant.Tier1Reward
	}

	if !merchant.Tier2Enabled {
		return status, nil
	}

	tier2Redeemed, err := redemptions.HasActive(ctx, card.ID, 2, card.Cycle)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check tier 2 redemption state")
	}
	status.Tier2Redeemed = tier2Redeemed

	if card.CurrentStamps >= merchant.Tier2Threshold && !tier2Redeemed {
		status.Unlocked = true
		status.Tier = 2
		status.Reward = merchant.Tier2Reward
	}

	return status, nil
}

// publishRewardAsync hands the unlock event to the message queue after the
// core transaction has committed. Fire-and-forget: a publish failure is
// logged and never surfaces to the scanning client.
func publishRewardAsync(ctx context.Context, logger *slog.Logger, publisher service.EventPublisher, merchant *entity.Merchant, card *entity.LoyaltyCard, customerID uuid.UUID, status *rewardStatus) {
	if publisher == nil || status == nil || !status.Unlocked {
		return
	}

	event := &service.RewardEvent{
		MerchantID:    merchant.ID.String(),
		LoyaltyCardID: card.ID.String(),
		CustomerID:    customerID.String(),
		Tier:          status.Tier,
		Reward:        status.Reward,
		CurrentStamps: card.CurrentStamps,
	}

	detached := context.WithoutCancel(ctx)
	go func() {
		if err := publisher.PublishRewardEvent(detached, event); err != nil {
			logger.Error("Failed to publish reward event",
				slog.Any("error", err),
				slog.String("merchant_id", event.MerchantID),
				slog.String("loyalty_card_id", event.LoyaltyCardID),
			)
		}
	}()
}
