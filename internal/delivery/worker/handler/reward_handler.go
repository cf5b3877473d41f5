// Package handler processes Pub/Sub push deliveries of reward events.
package handler

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"stampcard/config"
	deliverycontext "stampcard/internal/delivery/context"
	"stampcard/internal/domain/constants"
	"stampcard/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// RewardHandler handles Pub/Sub push messages carrying reward unlock events.
// It is the fan-out point for downstream consumers (customer messaging,
// analytics); the core API never waits on it.
type RewardHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
}

// RewardHandlerParams holds dependencies for the RewardHandler
type RewardHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewRewardHandler creates a new Pub/Sub push handler
func NewRewardHandler(params RewardHandlerParams) *RewardHandler {
	// Google-signed push tokens are only present when the google provider
	// delivers the message; the local publisher sends bare requests.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		!params.Config.Env.Debug

	return &RewardHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// Malformed messages are acknowledged with 200 to prevent infinite retries;
// only transport-level failures return non-success statuses.
func (h *RewardHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.RewardEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse reward event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Prefer the request_id from message attributes, then the event payload,
	// then whatever the RequestIDMiddleware put on the context.
	requestID := pushMsg.Message.Attributes["request_id"]
	if requestID == "" {
		requestID = event.RequestID
	}
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}

	reqLogger := h.logger.With(slog.String("request_id", requestID))
	reqLogger.Info("[Worker] Reward unlocked",
		slog.String("merchant_id", event.MerchantID),
		slog.String("loyalty_card_id", event.LoyaltyCardID),
		slog.String("customer_id", event.CustomerID),
		slog.Int("tier", event.Tier),
		slog.String("reward", event.Reward),
		slog.Int("current_stamps", event.CurrentStamps),
	)

	return c.NoContent(http.StatusOK)
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this push endpoint.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// The issuer of Pub/Sub push tokens is accounts.google.com.
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
