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

// CardHandler holds dependencies for card and redemption handlers.
type CardHandler struct {
	cardUC       usecase.CardUsecase
	redemptionUC usecase.RedemptionUsecase
	logger       *slog.Logger
}

// NewCardHandler is the constructor for CardHandler, injected by Fx.
func NewCardHandler(cardUC usecase.CardUsecase, redemptionUC usecase.RedemptionUsecase, logger *slog.Logger) *CardHandler {
	return &CardHandler{
		cardUC:       cardUC,
		redemptionUC: redemptionUC,
		logger:       logger,
	}
}

// RedeemInput is the request body of the redemption endpoint.
type RedeemInput struct {
	Tier int `json:"tier" validate:"required,oneof=1 2"`
}

// AdjustInput is the request body of the manual adjustment endpoint.
type AdjustInput struct {
	Delta  int    `json:"delta" validate:"required"`
	Reason string `json:"reason" validate:"max=255"`
}

// Redeem claims a reward tier for a card.
func (h *CardHandler) Redeem(c echo.Context) error {
	merchantID, ok := middleware.MerchantID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing merchant identity")
	}

	cardID, err := uuid.Parse(c.Param("cardId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_CARD_ID", "Card ID must be a UUID")
	}

	var input *RedeemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid redemption input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.redemptionUC.Redeem(c.Request().Context(), merchantID, cardID, input.Tier)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Reward redeemed")
}

// Adjust applies a manual balance correction.
func (h *CardHandler) Adjust(c echo.Context) error {
	merchantID, ok := middleware.MerchantID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing merchant identity")
	}

	cardID, err := uuid.Parse(c.Param("cardId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_CARD_ID", "Card ID must be a UUID")
	}

	var input *AdjustInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid adjustment input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	card, err := h.cardUC.Adjust(c.Request().Context(), merchantID, cardID, input.Delta, input.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, card, "Adjustment applied")
}

// Summary returns the card, its owner and recent activity.
func (h *CardHandler) Summary(c echo.Context) error {
	merchantID, ok := middleware.MerchantID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing merchant identity")
	}

	cardID, err := uuid.Parse(c.Param("cardId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_CARD_ID", "Card ID must be a UUID")
	}

	summary, err := h.cardUC.Summary(c.Request().Context(), merchantID, cardID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Card summary")
}
