package service

import (
	"context"
)

// RewardEvent is published after a committed balance increase unlocks a
// reward tier. Consumers (notification senders, analytics) are downstream;
// publishing is fire-and-forget and never blocks the core response.
type RewardEvent struct {
	RequestID     string `json:"request_id,omitempty"` // For distributed tracing
	MerchantID    string `json:"merchant_id"`
	LoyaltyCardID string `json:"loyalty_card_id"`
	CustomerID    string `json:"customer_id"`
	Tier          int    `json:"tier"`
	Reward        string `json:"reward"`
	CurrentStamps int    `json:"current_stamps"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRewardEvent publishes a reward unlock event for async processing
	PublishRewardEvent(ctx context.Context, event *RewardEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
