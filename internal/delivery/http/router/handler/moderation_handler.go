package handler

import (
	"log/slog"
	"net/http"

	"stampcard/internal/delivery/http/middleware"
	"stampcard/internal/delivery/http/response"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ModerationHandler holds dependencies for moderation queue handlers.
type ModerationHandler struct {
	uc     usecase.ModerationUsecase
	logger *slog.Logger
}

// NewModerationHandler is the constructor for ModerationHandler, injected by Fx.
func NewModerationHandler(uc usecase.ModerationUsecase, logger *slog.Logger) *ModerationHandler {
	return &ModerationHandler{
		uc:     uc,
		logger: logger,
	}
}

// DecisionInput is the request body of the single-visit decision endpoint.
type DecisionInput struct {
	Decision usecase.ModerationDecision `json:"decision" validate:"required,oneof=confirm reject"`
}

// BulkDecisionInput is the request body of the bulk decision endpoint.
type BulkDecisionInput struct {
	VisitIDs []uuid.UUID                `json:"visit_ids" validate:"required,min=1,dive,required"`
	Decision usecase.ModerationDecision `json:"decision" validate:"required,oneof=confirm reject"`
}

// ListPending returns the merchant's quarantined visits, oldest first.
func (h *ModerationHandler) ListPending(c echo.Context) error {
	merchantID, ok := middleware.MerchantID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing merchant identity")
	}

	visits, err := h.uc.ListPending(c.Request().Context(), merchantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, visits, "Pending visits listed")
}

// Decide applies one verdict to one quarantined visit.
func (h *ModerationHandler) Decide(c echo.Context) error {
	merchantID, ok := middleware.MerchantID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing merchant identity")
	}

	visitID, err := uuid.Parse(c.Param("visitId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_VISIT_ID", "Visit ID must be a UUID")
	}

	var input *DecisionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid decision input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.Decide(c.Request().Context(), merchantID, visitID, input.Decision)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Decision applied")
}

// DecideBulk applies the same verdict to a set of visits.
func (h *ModerationHandler) DecideBulk(c echo.Context) error {
	merchantID, ok := middleware.MerchantID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing merchant identity")
	}

	var input *BulkDecisionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bulk decision input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	summary, err := h.uc.DecideBulk(c.Request().Context(), merchantID, input.VisitIDs, input.Decision)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Bulk decision applied")
}
