package impl

import (
	"context"
	"io"
	"log/slog"

	"stampcard/config"
	"stampcard/internal/domain/repository"
)

// stubRepositoryFactory hands the tests' mocks back to transactional code so
// expectations can be declared on the same mock instances used outside the
// transaction.
type stubRepositoryFactory struct {
	customerRepo   repository.CustomerRepository
	cardRepo       repository.LoyaltyCardRepository
	visitRepo      repository.VisitRepository
	redemptionRepo repository.RedemptionRepository
	adjustmentRepo repository.PointAdjustmentRepository
}

func (f *stubRepositoryFactory) NewCustomerRepository() repository.CustomerRepository {
	return f.customerRepo
}

func (f *stubRepositoryFactory) NewLoyaltyCardRepository() repository.LoyaltyCardRepository {
	return f.cardRepo
}

func (f *stubRepositoryFactory) NewVisitRepository() repository.VisitRepository {
	return f.visitRepo
}

func (f *stubRepositoryFactory) NewRedemptionRepository() repository.RedemptionRepository {
	return f.redemptionRepo
}

func (f *stubRepositoryFactory) NewPointAdjustmentRepository() repository.PointAdjustmentRepository {
	return f.adjustmentRepo
}

// stubTransactionManager runs the callback directly against the stub factory,
// with no real transaction underneath.
type stubTransactionManager struct {
	factory repository.RepositoryFactory
}

func (m *stubTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{}
}
