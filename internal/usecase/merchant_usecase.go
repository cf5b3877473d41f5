package usecase

import (
	"context"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginResult carries a merchant session after successful authentication.
type LoginResult struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	Merchant     *entity.Merchant `json:"merchant"`
}

// MerchantUsecase covers merchant session and scan-code material.
type MerchantUsecase interface {
	// Login authenticates a merchant by email and password.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// ScanQR renders the merchant's scan code as a printable QR PNG.
	ScanQR(ctx context.Context, merchantID uuid.UUID) ([]byte, error)
}
