package impl

import (
	"context"
	"testing"

	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	mockRepo "stampcard/internal/mocks/repository"
	mockSvc "stampcard/internal/mocks/service"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// merchantServiceFixtures holds all test dependencies for merchant tests.
type merchantServiceFixtures struct {
	service      usecase.MerchantUsecase
	merchantRepo *mockRepo.MockMerchantRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenSvc     *mockSvc.MockTokenService
	qrcodeSvc    *mockSvc.MockQRCodeService
}

func createTestMerchantService(t *testing.T) merchantServiceFixtures {
	merchantRepo := mockRepo.NewMockMerchantRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	qrcodeSvc := mockSvc.NewMockQRCodeService(t)

	service := NewMerchantService(merchantRepo, hasher, tokenSvc, qrcodeSvc)

	return merchantServiceFixtures{
		service:      service,
		merchantRepo: merchantRepo,
		hasher:       hasher,
		tokenSvc:     tokenSvc,
		qrcodeSvc:    qrcodeSvc,
	}
}

func TestMerchantService_Login_Success(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	merchant := &entity.Merchant{
		ID:           uuid.New(),
		Email:        "owner@cafe.example",
		PasswordHash: "$2a$10$stored-hash",
	}

	fx.merchantRepo.EXPECT().FindByEmail(ctx, merchant.Email).Return(merchant, nil)
	fx.hasher.EXPECT().Check("hunter2", merchant.PasswordHash).Return(true)
	fx.tokenSvc.EXPECT().GenerateTokens(merchant.ID).Return("access-token", "refresh-token", nil)

	result, err := fx.service.Login(ctx, merchant.Email, "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "access-token", result.AccessToken)
	assert.Equal(t, "refresh-token", result.RefreshToken)
	assert.Equal(t, merchant, result.Merchant)
}

func TestMerchantService_Login_UnknownEmail(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()

	fx.merchantRepo.EXPECT().
		FindByEmail(ctx, "ghost@cafe.example").
		Return(nil, repository.ErrMerchantNotFound)

	_, err := fx.service.Login(ctx, "ghost@cafe.example", "hunter2")
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestMerchantService_Login_WrongPassword(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	merchant := &entity.Merchant{
		ID:           uuid.New(),
		Email:        "owner@cafe.example",
		PasswordHash: "$2a$10$stored-hash",
	}

	fx.merchantRepo.EXPECT().FindByEmail(ctx, merchant.Email).Return(merchant, nil)
	fx.hasher.EXPECT().Check("wrong", merchant.PasswordHash).Return(false)

	// Same error as unknown email, no account enumeration.
	_, err := fx.service.Login(ctx, merchant.Email, "wrong")
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestMerchantService_ScanQR_Success(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	merchant := &entity.Merchant{ID: uuid.New(), ScanCode: "cafe-scan-code"}
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.merchantRepo.EXPECT().FindByID(ctx, merchant.ID).Return(merchant, nil)
	fx.qrcodeSvc.EXPECT().GenerateScanQR(merchant.ScanCode).Return(png, nil)

	got, err := fx.service.ScanQR(ctx, merchant.ID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestMerchantService_ScanQR_MerchantNotFound(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	merchantID := uuid.New()

	fx.merchantRepo.EXPECT().FindByID(ctx, merchantID).Return(nil, repository.ErrMerchantNotFound)

	_, err := fx.service.ScanQR(ctx, merchantID)
	require.ErrorIs(t, err, domainerrors.ErrMerchantNotFound)
}
