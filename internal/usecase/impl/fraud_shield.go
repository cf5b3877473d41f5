package impl

import (
	"context"
	"time"

	"stampcard/internal/domain/entity"
	"stampcard/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Shield limits per loyalty mode. The per-merchant knobs are the enabled
// flag and the reporting timezone; the limits themselves are policy.
const (
	visitDailyLimit        = 1
	articleDailyLimit      = 2
	articleMaxUnitsPerScan = 3
)

// Flagged reasons shown to moderating merchants.
const (
	reasonDailyVisitLimit = "daily visit limit exceeded"
	reasonDailyScanLimit  = "daily scan limit exceeded"
	reasonUnitCapExceeded = "per-scan unit limit exceeded"
)

// fraudShield evaluates the rate-limiting policy on every scan of a merchant
// that has the shield enabled. A violation quarantines the scan instead of
// dropping it.
type fraudShield struct {
	defaultTZ string
}

func newFraudShield(defaultTZ string) *fraudShield {
	return &fraudShield{defaultTZ: defaultTZ}
}

// UnitCapReason checks the article-mode per-scan unit cap. It needs no
// storage access, so it also covers a customer's very first scan.
func (f *fraudShield) UnitCapReason(merchant *entity.Merchant, points int) string {
	if merchant.Mode == entity.LoyaltyModeArticle && points > articleMaxUnitsPerScan {
		return reasonUnitCapExceeded
	}

	return ""
}

// Evaluate returns a non-empty flagged reason when the scan violates the
// merchant's shield policy.
//
// The daily count is evaluated against the pre-transaction snapshot: under
// concurrent duplicate scans the shield may under-count by one and let one
// extra scan through, with quarantine catching up on the next scan. This
// relaxation is deliberate (the insert and the count are not serialized).
func (f *fraudShield) Evaluate(ctx context.Context, visits repository.VisitRepository, merchant *entity.Merchant, cardID uuid.UUID, points int, now time.Time) (string, error) {
	if reason := f.UnitCapReason(merchant, points); reason != "" {
		return reason, nil
	}

	dayStart := f.LocalDayStart(merchant, now)
	count, err := visits.CountAccrualsSince(ctx, cardID, dayStart)
	if err != nil {
		return "", errors.Wrap(err, "failed to count visits for fraud shield")
	}

	switch merchant.Mode {
	case entity.LoyaltyModeArticle:
		if count >= articleDailyLimit {
			return reasonDailyScanLimit, nil
		}
	default:
		if count >= visitDailyLimit {
			return reasonDailyVisitLimit, nil
		}
	}

	return "", nil
}

// LocalDayStart computes midnight of the merchant's reporting day containing
// the given instant. A scan just after local midnight must not count against
// the previous day, so the boundary is the merchant's zone, never UTC.
func (f *fraudShield) LocalDayStart(merchant *entity.Merchant, now time.Time) time.Time {
	loc := merchant.Location(f.defaultTZ)
	local := now.In(loc)

	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
