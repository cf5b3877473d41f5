package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stampcard/config"
	"stampcard/internal/domain/constants"
	"stampcard/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRewardHandler(cfg *config.Config) *RewardHandler {
	return NewRewardHandler(RewardHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func pushRequest(t *testing.T, event *service.RewardEvent) *http.Request {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	body, err := json.Marshal(map[string]any{
		"message": map[string]any{
			"data":      base64.StdEncoding.EncodeToString(payload),
			"messageId": "msg-1",
			"attributes": map[string]string{
				"request_id": "req-1",
			},
		},
		"subscription": "projects/test/subscriptions/reward-events",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestRewardHandler_HandlePush_AcksRewardEvent(t *testing.T) {
	h := createTestRewardHandler(&config.Config{})

	event := &service.RewardEvent{
		MerchantID:    "m-1",
		LoyaltyCardID: "c-1",
		CustomerID:    "u-1",
		Tier:          1,
		Reward:        "Free coffee",
		CurrentStamps: 10,
	}

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, event), rec)

	err := h.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRewardHandler_HandlePush_BadBase64(t *testing.T) {
	h := createTestRewardHandler(&config.Config{})

	body := `{"message":{"data":"%%%not-base64%%%","messageId":"msg-1"},"subscription":"s"}`
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRewardHandler_HandlePush_RejectsUnauthenticatedGooglePush(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	h := createTestRewardHandler(cfg)

	event := &service.RewardEvent{MerchantID: "m-1"}

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, event), rec)

	// No Authorization header at all.
	err := h.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRewardHandler_DebugSkipsPushAuth(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Debug = true
	h := createTestRewardHandler(cfg)

	event := &service.RewardEvent{MerchantID: "m-1"}

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, event), rec)

	err := h.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
