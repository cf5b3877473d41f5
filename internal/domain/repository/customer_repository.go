package repository

import (
	"context"
	"errors"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for customer persistence.
var (
	// ErrCustomerNotFound is returned when no customer exists for the composite key.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrDuplicateCustomer is returned when the (phone, merchant) pair already exists.
	ErrDuplicateCustomer = errors.New("customer already exists for this merchant")
)

// CustomerRepository persists per-merchant customer identities. Every lookup
// is scoped by the composite (phone, merchant_id) key; an unscoped lookup is
// deliberately not part of this interface.
type CustomerRepository interface {
	// FindByID retrieves a customer by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindByPhoneAndMerchant retrieves the customer owning the given phone
	// number within a single merchant's program.
	FindByPhoneAndMerchant(ctx context.Context, phone string, merchantID uuid.UUID) (*entity.Customer, error)

	// Create persists a new customer. The composite uniqueness of
	// (phone, merchant_id) is enforced by the storage layer.
	Create(ctx context.Context, customer *entity.Customer) error
}
