// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"stampcard/internal/delivery/http/middleware"
	"stampcard/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CheckinHandler    *handler.CheckinHandler
	MerchantHandler   *handler.MerchantHandler
	ModerationHandler *handler.ModerationHandler
	CardHandler       *handler.CardHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	checkinHandler    *handler.CheckinHandler
	merchantHandler   *handler.MerchantHandler
	moderationHandler *handler.ModerationHandler
	cardHandler       *handler.CardHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		checkinHandler:    params.CheckinHandler,
		merchantHandler:   params.MerchantHandler,
		moderationHandler: params.ModerationHandler,
		cardHandler:       params.CardHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// The scan endpoint is public: the customer-facing client authenticates
	// the merchant implicitly through the scan code.
	e.POST("/checkin", r.checkinHandler.Checkin)

	// Merchant back-office routes
	merchantGroup := e.Group("/merchant")
	merchantGroup.POST("/login", r.merchantHandler.Login)

	authed := merchantGroup.Group("")
	authed.Use(r.authMiddleware.Authenticate)
	{
		authed.GET("/qr", r.merchantHandler.ScanQR)

		authed.GET("/moderation", r.moderationHandler.ListPending)
		authed.POST("/moderation/bulk", r.moderationHandler.DecideBulk)
		authed.POST("/moderation/:visitId", r.moderationHandler.Decide)

		authed.GET("/cards/:cardId", r.cardHandler.Summary)
		authed.POST("/cards/:cardId/redeem", r.cardHandler.Redeem)
		authed.POST("/cards/:cardId/adjust", r.cardHandler.Adjust)
	}
}
