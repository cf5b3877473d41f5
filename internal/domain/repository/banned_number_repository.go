package repository

import (
	"context"

	"github.com/google/uuid"
)

// BannedNumberRepository answers the pre-lookup ban check on every scan.
type BannedNumberRepository interface {
	// Exists reports whether the phone number is banned for the merchant.
	Exists(ctx context.Context, merchantID uuid.UUID, phone string) (bool, error)
}
