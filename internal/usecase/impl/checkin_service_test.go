package impl

import (
	"context"
	"testing"

	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	mockRepo "stampcard/internal/mocks/repository"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkinServiceFixtures holds all test dependencies for check-in tests.
type checkinServiceFixtures struct {
	service        usecase.CheckinUsecase
	merchantRepo   *mockRepo.MockMerchantRepository
	customerRepo   *mockRepo.MockCustomerRepository
	cardRepo       *mockRepo.MockLoyaltyCardRepository
	visitRepo      *mockRepo.MockVisitRepository
	bannedRepo     *mockRepo.MockBannedNumberRepository
	redemptionRepo *mockRepo.MockRedemptionRepository
}

func createTestCheckinService(t *testing.T) checkinServiceFixtures {
	merchantRepo := mockRepo.NewMockMerchantRepository(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	cardRepo := mockRepo.NewMockLoyaltyCardRepository(t)
	visitRepo := mockRepo.NewMockVisitRepository(t)
	bannedRepo := mockRepo.NewMockBannedNumberRepository(t)
	redemptionRepo := mockRepo.NewMockRedemptionRepository(t)

	txManager := &stubTransactionManager{factory: &stubRepositoryFactory{
		customerRepo:   customerRepo,
		cardRepo:       cardRepo,
		visitRepo:      visitRepo,
		redemptionRepo: redemptionRepo,
	}}

	service := NewCheckinService(
		merchantRepo,
		customerRepo,
		cardRepo,
		visitRepo,
		bannedRepo,
		txManager,
		nil,
		testConfig(),
		testLogger(),
	)

	return checkinServiceFixtures{
		service:        service,
		merchantRepo:   merchantRepo,
		customerRepo:   customerRepo,
		cardRepo:       cardRepo,
		visitRepo:      visitRepo,
		bannedRepo:     bannedRepo,
		redemptionRepo: redemptionRepo,
	}
}

func visitModeMerchant() *entity.Merchant {
	return &entity.Merchant{
		ID:             uuid.New(),
		Name:           "Corner Cafe",
		ScanCode:       "cafe-scan-code",
		Mode:           entity.LoyaltyModeVisit,
		Tier1Threshold: 10,
		Tier1Reward:    "Free coffee",
	}
}

func TestCheckinService_Checkin_KnownCustomer(t *testing.T) {
	fx := createTestCheckinService(t)

	ctx := context.Background()
	merchant := visitModeMerchant()
	customer := &entity.Customer{ID: uuid.New(), MerchantID: merchant.ID, Phone: "+33612345678"}
	card := &entity.LoyaltyCard{
		ID:            uuid.New(),
		CustomerID:    customer.ID,
		MerchantID:    merchant.ID,
		CurrentStamps: 3,
		StampsTarget:  10,
	}
	updated := &entity.LoyaltyCard{
		ID:            card.ID,
		CustomerID:    customer.ID,
		MerchantID:    merchant.ID,
		CurrentStamps: 4,
		StampsTarget:  10,
	}

	fx.merchantRepo.EXPECT().FindByScanCode(ctx, merchant.ScanCode).Return(merchant, nil)
	fx.bannedRepo.EXPECT().Exists(ctx, merchant.ID, customer.Phone).Return(false, nil)
	fx.customerRepo.EXPECT().FindByPhoneAndMerchant(ctx, customer.Phone, merchant.ID).Return(customer, nil)
	fx.cardRepo.EXPECT().FindByCustomer(ctx, customer.ID).Return(card, nil)
	fx.visitRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Visit")).Return(nil)
	fx.cardRepo.EXPECT().ApplyDelta(ctx, card.ID, 1).Return(updated, nil)
	fx.redemptionRepo.EXPECT().HasActive(ctx, card.ID, 1, 0).Return(false, nil)

	result, err := fx.service.Checkin(ctx, &usecase.CheckinInput{
		ScanCode: merchant.ScanCode,
		Phone:    customer.Phone,
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.False(t, result.PendingReview)
	assert.Equal(t, 1, result.PointsEarned)
	assert.Equal(t, 4, result.CurrentStamps)
	assert.Equal(t, 10, result.StampsTarget)
	assert.False(t, result.RewardUnlocked)
}

func TestCheckinService_Checkin_RecordsConfirmedVisit(t *testing.T) {
	fx := createTestCheckinService(t)

	ctx := context.Background()
	merchant := visitModeMerchant()
	customer := &entity.Customer{ID: uuid.New(), MerchantID: merchant.ID, Phone: "+33612345678"}
	card := &entity.LoyaltyCard{ID: uuid.New(), CustomerID: customer.ID, MerchantID: merchant.ID}

	fx.merchantRepo.EXPECT().FindByScanCode(ctx, merchant.ScanCode).Return(merchant, nil)
	fx.bannedRepo.EXPECT().Exists(ctx, merchant.ID, customer.Phone).Return(false, nil)
	fx.customerRepo.EXPECT().FindByPhoneAndMerchant(ctx, customer.Phone, merchant.ID).Return(customer, nil)
	fx.cardRepo.EXPECT().FindByCustomer(ctx, customer.ID).Return(card, nil)
	fx.visitRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Visit")).
		Run(func(ctx context.Context, visit *entity.Visit) {
			assert.Equal(t, card.ID, visit.LoyaltyCardID)
			assert.Equal(t, customer.ID, visit.CustomerID)
			assert.Equal(t, merchant.ID, visit.MerchantID)
			assert.Equal(t, 1, visit.PointsEarned)
			assert.Equal(t, entity.VisitStatusConfirmed, visit.Status)
			assert.Empty(t, visit.FlaggedReason)
		}).
		Return(nil)
	fx.cardRepo.EXPECT().ApplyDelta(ctx, card.ID, 1).Return(card, nil)
	fx.redemptionRepo.EXPECT().HasActive(ctx, card.ID, 1, 0).Return(false, nil)

	_, err := fx.service.Checkin(ctx, &usecase.CheckinInput{
		ScanCode: merchant.ScanCode,
		Phone:    customer.Phone,
	})
	require.NoError(t, err)
}

func TestCheckinService_Checkin_BannedNumber(t *testing.T) {
	fx := createTestCheckinService(t)

	ctx := context.Background()
	merchant := visitModeMerchant()
	phone := "+33698765432"

	fx.merchantRepo.EXPECT().FindByScanCode(ctx, merchant.ScanCode).Return(merchant, nil)
	fx.bannedRepo.EXPECT().Exists(ctx, merchant.ID, phone).Return(true, nil)

	result, err := fx.service.Checkin(ctx, &usecase.CheckinInput{
		ScanCode: merchant.ScanCode,
		Phone:    phone,
	})
	require.NoError(t, err)
	assert.True(t, result.Banned)
	assert.False(t, result.Success)
	fx.customerRepo.AssertNotCalled(t, "FindByPhoneAndMerchant", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckinService_Checkin_NeedsRegistration(t *testing.T) {
	fx := createTestCheckinService(t)

	ctx := context.Background()
	merchant := visitModeMerchant()
	phone := "+33612345678"

	fx.merchantRepo.EXPECT().FindByScanCode(ctx, merchant.ScanCode).Return(merchant, nil)
	fx.bannedRepo.EXPECT().Exists(ctx, merchant.ID, phone).Return(false, nil)
	fx.customerRepo.EXPECT().
		FindByPhoneAndMerchant(ctx, phone, merchant.ID).
		Return(nil, repository.ErrCustomerNotFound)

	result, err := fx.service.Checkin(ctx, &usecase.CheckinInput{
		ScanCode: merchant.ScanCode,
		Phone:    phone,
	})
	require.NoError(t, err)
	assert.True(t, result.NeedsRegistration)
	assert.False(t, result.Success)
}

func TestCheckinService_Checkin_NewCustomerWithProfile(t *testing.T) {
	fx := createTestCheckinService(t)

	ctx := context.Background()
	merchant := visitModeMerchant()
	phone := "+33612345678"
	created := &entity.LoyaltyCard{
		ID:            uuid.New(),
		MerchantID:    merchant.ID,
		CurrentStamps: 1,
		StampsTarget:  10,
	}

	fx.merchantRepo.EXPECT().FindByScanCode(ctx, merchant.ScanCode).Return(merchant, nil)
	fx.bannedRepo.EXPECT().Exists(ctx, merchant.ID, phone).Return(false, nil)
	fx.customerRepo.EXPECT().
		FindByPhoneAndMerchant(ctx, phone, merchant.ID).
		Return(nil, repository.ErrCustomerNotFound)
	fx.customerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		Run(func(ctx context.Context, customer *entity.Customer) {
			assert.Equal(t, merchant.ID, customer.MerchantID)
			assert.Equal(t, phone, customer.Phone)
			assert.Equal(t, "Ada", customer.FirstName)
			assert.Equal(t, "Lovelace", customer.LastName)
		}).
		Return(nil)
	fx.cardRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.LoyaltyCard")).
		Run(func(ctx context.Context, card *entity.LoyaltyCard) {
			assert.Equal(t, merchant.ID, card.MerchantID)
			assert.Equal(t, merchant.Tier1Threshold, card.StampsTarget)
		}).
		Return(nil)
	fx.visitRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Visit")).Return(nil)
	fx.cardRepo.EXPECT().
		ApplyDelta(ctx, mock.AnythingOfType("uuid.UUID"), 1).
		Return(created, nil)
	fx.redemptionRepo.EXPECT().HasActive(ctx, created.ID, 1, 0).Return(false, nil)

	result, err := fx.service.Checkin(ctx, &usecase.CheckinInput{
		ScanCode: merchant.ScanCode,
		Phone:    phone,
		Profile:  &usecase.CustomerProfile{FirstName: "Ada", LastName: "Lovelace"},
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.CurrentStamps)
}

func TestCheckinService_Checkin_ArticleModePoints(t *testing.T) {
	fx := createTestCheckinService(t)

	ctx := context.Background()
	merchant := visitModeMerchant()
	merchant.Mode = entity.LoyaltyModeArticle
	customer := &entity.Customer{ID: uuid.New(), MerchantID: merchant.ID, Phone: "+33612345678"}
	card := &entity.LoyaltyCard{ID: uuid.New(), CustomerID: customer.ID, MerchantID: merchant.ID, CurrentStamps: 2}
	updated := &entity.LoyaltyCard{ID: card.ID, CustomerID: customer.ID, MerchantID: merchant.ID, CurrentStamps: 5}

	fx.merchantRepo.EXPECT().FindByScanCode(ctx, merchant.ScanCode).Return(merchant, nil)
	fx.bannedRepo.EXPECT().Exists(ctx, merchant.ID, customer.Phone).Return(false, nil)
	fx.customerRepo.EXPECT().FindByPhoneAndMerchant(ctx, customer.Phone, merchant.ID).Return(customer, nil)
	fx.cardRepo.EXPECT().FindByCustomer(ctx, customer.ID).Return(card, nil)
	fx.visitRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Visit")).Return(nil)
	fx.cardRepo.EXPECT().ApplyDelta(ctx, card.ID, 3).Return(updated, nil)
	fx.redemptionRepo.EXPECT().HasActive(ctx, card.ID, 1, 0).Return(false, nil)

	result, err := fx.service.Checkin(ctx, &usecase.CheckinInput{
		ScanCode:    merchant.ScanCode,
		Phone:       customer.Phone,
		PointsToAdd: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.PointsEarned)
	assert.Equal(t, 5, result.CurrentStamps)
}

func TestCheckinService_Checkin_QuarantinedByDailyVisitLimit(t *testing.T) {
	fx := createTestCheckinService(t)

	ctx := context.Background()
	merchant := visitModeMerchant()
	merchant.FraudShieldEnabled = true
	customer := &entity.Customer{ID: uuid.New(), MerchantID: merchant.ID, Phone: "+33612345678"}
	card := &entity.LoyaltyCard{ID: uuid.New(), CustomerID: customer.ID, MerchantID: merchant.ID, CurrentStamps: 4}

	fx.merchantRepo.EXPECT().FindByScanCode(ctx, merchant.ScanCode).Return(merchant, nil)
	fx.bannedRepo.EXPECT().Exists(ctx, merchant.ID, customer.Phone).Return(false, nil)
	fx.customerRepo.EXPECT().FindByPhoneAndMerchant(ctx, customer.Phone, merchant.ID).Return(customer, nil)
	fx.cardRepo.EXPECT().FindByCustomer(ctx, customer.ID).Return(card, nil)
	fx.visitRepo.EXPECT().
		CountAccrualsSince(ctx, card.ID, mock.AnythingOfType("time.Time")).
		Return(1, nil)
	fx.visitRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Visit")).
		Run(func(ctx context.Context, visit *entity.Visit) {
			assert.Equal(t, entity.VisitStatusPending, visit.Status)
			assert.Equal(t, "daily visit limit exceeded", visit.FlaggedReason)
		}).
		Return(nil)

	result, err := fx.service.Checkin(ctx, &usecase.CheckinInput{
		ScanCode: merchant.ScanCode,
		Phone:    customer.Phone,
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.PendingReview)
	assert.Equal(t, "daily visit limit exceeded", result.FlaggedReason)
	// The quarantined points must not touch the balance.
	assert.Equal(t, 4, result.CurrentStamps)
	fx.cardRepo.AssertNotCalled(t, "ApplyDelta", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckinService_Checkin_FirstScanUnitCap(t *testing.T) {
	fx := createTestCheckinService(t)

	ctx := context.Background()
	merchant := visitModeMerchant()
	merchant.Mode = entity.LoyaltyModeArticle
	merchant.FraudShieldEnabled = true
	customer := &entity.Customer{ID: uuid.New(), MerchantID: merchant.ID, Phone: "+33612345678"}

	fx.merchantRepo.EXPECT().FindByScanCode(ctx, merchant.ScanCode).Return(merchant, nil)
	fx.bannedRepo.EXPECT().Exists(ctx, merchant.ID, customer.Phone).Return(false, nil)
	fx.customerRepo.EXPECT().FindByPhoneAndMerchant(ctx, customer.Phone, merchant.ID).Return(customer, nil)
	fx.cardRepo.EXPECT().FindByCustomer(ctx, customer.ID).Return(nil, repository.ErrCardNotFound)
	fx.cardRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.LoyaltyCard")).Return(nil)
	fx.visitRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Visit")).
		Run(func(ctx context.Context, visit *entity.Visit) {
			assert.Equal(t, entity.VisitStatusPending, visit.Status)
			assert.Equal(t, "per-scan unit limit exceeded", visit.FlaggedReason)
		}).
		Return(nil)

	result, err := fx.service.Checkin(ctx, &usecase.CheckinInput{
		ScanCode:    merchant.ScanCode,
		Phone:       customer.Phone,
		PointsToAdd: 5,
	})
	require.NoError(t, err)
	assert.True(t, result.PendingReview)
	// No history to count on a first scan, only the unit cap applies.
	fx.visitRepo.AssertNotCalled(t, "CountAccrualsSince", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckinService_Checkin_RewardUnlocked(t *testing.T) {
	fx := createTestCheckinService(t)

	ctx := context.Background()
	merchant := visitModeMerchant()
	customer := &entity.Customer{ID: uuid.New(), MerchantID: merchant.ID, Phone: "+33612345678"}
	card := &entity.LoyaltyCard{ID: uuid.New(), CustomerID: customer.ID, MerchantID: merchant.ID, CurrentStamps: 9, StampsTarget: 10}
	updated := &entity.LoyaltyCard{ID: card.ID, CustomerID: customer.ID, MerchantID: merchant.ID, CurrentStamps: 10, StampsTarget: 10}

	fx.merchantRepo.EXPECT().FindByScanCode(ctx, merchant.ScanCode).Return(merchant, nil)
	fx.bannedRepo.EXPECT().Exists(ctx, merchant.ID, customer.Phone).Return(false, nil)
	fx.customerRepo.EXPECT().FindByPhoneAndMerchant(ctx, customer.Phone, merchant.ID).Return(customer, nil)
	fx.cardRepo.EXPECT().FindByCustomer(ctx, customer.ID).Return(card, nil)
	fx.visitRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Visit")).Return(nil)
	fx.cardRepo.EXPECT().ApplyDelta(ctx, card.ID, 1).Return(updated, nil)
	fx.redemptionRepo.EXPECT().HasActive(ctx, card.ID, 1, 0).Return(false, nil)

	result, err := fx.service.Checkin(ctx, &usecase.CheckinInput{
		ScanCode: merchant.ScanCode,
		Phone:    customer.Phone,
	})
	require.NoError(t, err)
	assert.True(t, result.RewardUnlocked)
	assert.Equal(t, 1, result.RewardTier)
	assert.Equal(t, "Free coffee", result.Reward)
}

func TestCheckinService_Checkin_UnknownScanCode(t *testing.T) {
	fx := createTestCheckinService(t)

	ctx := context.Background()

	fx.merchantRepo.EXPECT().
		FindByScanCode(ctx, "nope").
		Return(nil, repository.ErrMerchantNotFound)

	result, err := fx.service.Checkin(ctx, &usecase.CheckinInput{
		ScanCode: "nope",
		Phone:    "+33612345678",
	})
	require.ErrorIs(t, err, domainerrors.ErrMerchantNotFound)
	assert.Nil(t, result)
}
