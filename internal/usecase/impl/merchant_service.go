package impl

import (
	"context"

	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/domain/service"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type merchantService struct {
	merchantRepo repository.MerchantRepository
	hasher       service.PasswordHasher
	tokenSvc     service.TokenService
	qrcodeSvc    service.QRCodeService
}

// NewMerchantService creates a new merchant service instance.
func NewMerchantService(
	merchantRepo repository.MerchantRepository,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	qrcodeSvc service.QRCodeService,
) usecase.MerchantUsecase {
	return &merchantService{
		merchantRepo: merchantRepo,
		hasher:       hasher,
		tokenSvc:     tokenSvc,
		qrcodeSvc:    qrcodeSvc,
	}
}

// Login authenticates a merchant by email and password. Unknown email and
// wrong password return the same error to avoid account enumeration.
func (s *merchantService) Login(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
	merchant, err := s.merchantRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find merchant by email")
	}

	if !s.hasher.Check(password, merchant.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.tokenSvc.GenerateTokens(merchant.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Merchant:     merchant,
	}, nil
}

// ScanQR renders the merchant's scan code as a printable QR PNG.
func (s *merchantService) ScanQR(ctx context.Context, merchantID uuid.UUID) ([]byte, error) {
	merchant, err := s.merchantRepo.FindByID(ctx, merchantID)
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return nil, domainerrors.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant")
	}

	qr, err := s.qrcodeSvc.GenerateScanQR(merchant.ScanCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate scan QR")
	}

	return qr, nil
}
