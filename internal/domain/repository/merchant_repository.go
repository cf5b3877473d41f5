// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMerchantNotFound is a domain-specific error returned when a merchant is not found.
var ErrMerchantNotFound = errors.New("merchant not found")

// MerchantRepository resolves tenants. Read-mostly: merchant configuration is
// written by onboarding/back-office code outside the engine.
type MerchantRepository interface {
	// FindByID retrieves a single merchant by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Merchant, error)

	// FindByScanCode resolves an opaque scan code to a merchant configuration.
	FindByScanCode(ctx context.Context, scanCode string) (*entity.Merchant, error)

	// FindByEmail retrieves a merchant by login email.
	FindByEmail(ctx context.Context, email string) (*entity.Merchant, error)
}
