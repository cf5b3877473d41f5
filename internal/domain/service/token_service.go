// Package service defines domain-level collaborator interfaces whose
// concrete implementations live under internal/infra.
package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenService defines the interface for generating and validating merchant
// session tokens. This abstracts the JWT details from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a merchant.
	GenerateTokens(merchantID uuid.UUID) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns the merchant ID it carries.
	ValidateAccessToken(tokenString string) (uuid.UUID, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
