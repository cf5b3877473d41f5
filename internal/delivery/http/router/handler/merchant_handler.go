package handler

import (
	"log/slog"
	"net/http"

	"stampcard/internal/delivery/http/middleware"
	"stampcard/internal/delivery/http/response"
	"stampcard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MerchantHandler holds dependencies for merchant session handlers.
type MerchantHandler struct {
	uc     usecase.MerchantUsecase
	logger *slog.Logger
}

// NewMerchantHandler is the constructor for MerchantHandler, injected by Fx.
func NewMerchantHandler(uc usecase.MerchantUsecase, logger *slog.Logger) *MerchantHandler {
	return &MerchantHandler{
		uc:     uc,
		logger: logger,
	}
}

// LoginInput is the request body of the merchant login endpoint.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles the merchant login request.
func (h *MerchantHandler) Login(c echo.Context) error {
	var input *LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.Login(c.Request().Context(), input.Email, input.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Login successful")
}

// ScanQR streams the merchant's scan code as a PNG QR image.
func (h *MerchantHandler) ScanQR(c echo.Context) error {
	merchantID, ok := middleware.MerchantID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing merchant identity")
	}

	png, err := h.uc.ScanQR(c.Request().Context(), merchantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
