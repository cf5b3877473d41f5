package entity

import (
	"time"

	"github.com/google/uuid"
)

// Redemption records one consumed reward. The triple (LoyaltyCardID, Tier,
// Cycle) is unique at the storage layer: it is the idempotency anchor for
// "already redeemed this tier this cycle".
type Redemption struct {
	ID            uuid.UUID `json:"id"`
	LoyaltyCardID uuid.UUID `json:"loyalty_card_id"`
	Tier          int       `json:"tier"`  // 1 or 2.
	Cycle         int       `json:"cycle"` // Card cycle at redemption time.
	RedeemedAt    time.Time `json:"redeemed_at"`
}
