// Package handler contains the HTTP handlers for the API server.
package handler

import (
	"log/slog"
	"net/http"

	"stampcard/internal/delivery/http/response"
	"stampcard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckinHandler holds dependencies for the scan endpoint.
type CheckinHandler struct {
	uc     usecase.CheckinUsecase
	logger *slog.Logger
}

// NewCheckinHandler is the constructor for CheckinHandler, injected by Fx.
func NewCheckinHandler(uc usecase.CheckinUsecase, logger *slog.Logger) *CheckinHandler {
	return &CheckinHandler{
		uc:     uc,
		logger: logger,
	}
}

// Checkin handles one scan event. Banned, needs-registration and
// pending-review outcomes are 200 responses with the matching flag set, so
// the scanning client can render a specific message for each.
func (h *CheckinHandler) Checkin(c echo.Context) error {
	var input *usecase.CheckinInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid check-in input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.Checkin(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Check-in processed")
}
