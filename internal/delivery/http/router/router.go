// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marketplace/internal/delivery/http/middleware"
	"marketplace/internal/delivery/http/router/handler"
	"marketplace/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LocationHandler *handler.LocationHandler
	ListingHandler  *handler.ListingHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Metrics         *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	locationHandler *handler.LocationHandler
	listingHandler  *handler.ListingHandler
	authMiddleware  *middleware.AuthMiddleware
	metrics         *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		locationHandler: params.LocationHandler,
		listingHandler:  params.ListingHandler,
		authMiddleware:  params.AuthMiddleware,
		metrics:         params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// Location routes, optionally authenticated
	locationGroup := e.Group("/location", r.authMiddleware.Authenticate)
	{
		locationGroup.GET("/current", r.locationHandler.GetCurrentLocation)
		locationGroup.GET("/reverse", r.locationHandler.ReverseGeocode)
		locationGroup.GET("/distance", r.locationHandler.Distance)
	}

	e.POST("/listings/nearby", r.listingHandler.NearbyListings, r.authMiddleware.Authenticate)
	e.POST("/stores/nearby", r.listingHandler.NearbyStores, r.authMiddleware.Authenticate)
}
