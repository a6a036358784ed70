// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"market/config"
	"market/internal/delivery/http/middleware"
	"market/internal/delivery/http/router/handler"
	"market/internal/domain/entity"
	"market/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OfferHandler   *handler.OfferHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Recorder `optional:"true"`
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	offerHandler   *handler.OfferHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Recorder
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		offerHandler:   params.OfferHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil && r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	// Offer routes, all of which act on behalf of the token subject
	offersGroup := e.Group("/offers")
	offersGroup.Use(r.authMiddleware.Authenticate)
	{
		offersGroup.POST("", r.offerHandler.CreateOffer)
		offersGroup.GET("", r.offerHandler.ListOffers)
		offersGroup.GET("/:id", r.offerHandler.GetOffer)
		offersGroup.POST("/:id/accept", r.offerHandler.AcceptOffer)
		offersGroup.POST("/:id/reject", r.offerHandler.RejectOffer)
		offersGroup.POST("/:id/counter", r.offerHandler.CounterOffer)
		offersGroup.POST("/:id/message", r.offerHandler.AddMessage)
		offersGroup.DELETE("/:id", r.offerHandler.CancelOffer)
	}

	// Operator routes
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/offers/sweep", r.adminHandler.SweepExpiredOffers)
	}
}
