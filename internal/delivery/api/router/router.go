// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"agency/config"
	"agency/internal/delivery/api/middleware"
	"agency/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ContentHandler *handler.ContentHandler
	ContactHandler *handler.ContactHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	contentHandler *handler.ContentHandler
	contactHandler *handler.ContactHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		contentHandler: params.ContentHandler,
		contactHandler: params.ContactHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.healthHandler.Root)
	e.GET("/health", r.healthHandler.Health)
	e.GET("/test", r.healthHandler.Diagnose)

	// Marketing content
	e.GET("/pricing", r.contentHandler.Pricing)
	e.GET("/testimonials", r.contentHandler.Testimonials)
	e.POST("/contact", r.contactHandler.Submit)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	e.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
}

// RegisterMetricsRoute exposes the Prometheus registry when metrics are enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(promhttp.Handler()))
}
