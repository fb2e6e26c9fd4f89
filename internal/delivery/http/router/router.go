// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler   *handler.CatalogHandler
	ProductHandler   *handler.ProductHandler
	OrderHandler     *handler.OrderHandler
	ActivityHandler  *handler.ActivityHandler
	SettingsHandler  *handler.SettingsHandler
	DashboardHandler *handler.DashboardHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler   *handler.CatalogHandler
	productHandler   *handler.ProductHandler
	orderHandler     *handler.OrderHandler
	activityHandler  *handler.ActivityHandler
	settingsHandler  *handler.SettingsHandler
	dashboardHandler *handler.DashboardHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:   params.CatalogHandler,
		productHandler:   params.ProductHandler,
		orderHandler:     params.OrderHandler,
		activityHandler:  params.ActivityHandler,
		settingsHandler:  params.SettingsHandler,
		dashboardHandler: params.DashboardHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public storefront routes
	storeGroup := e.Group("/store")
	{
		storeGroup.GET("/catalog", r.catalogHandler.Browse)
		storeGroup.GET("/products/:id", r.productHandler.Get)
		storeGroup.POST("/orders", r.orderHandler.Create)
		storeGroup.GET("/orders/:id", r.orderHandler.Get)
		storeGroup.POST("/track", r.activityHandler.Track)
		storeGroup.GET("/delivery-charges", r.settingsHandler.DeliveryCharges)
	}

	// Operator routes
	adminGroup := e.Group("/admin")
	{
		adminGroup.GET("/products", r.productHandler.List)
		adminGroup.POST("/products", r.productHandler.Create)
		adminGroup.GET("/products/:id", r.productHandler.Get)
		adminGroup.PUT("/products/:id", r.productHandler.Update)
		adminGroup.DELETE("/products/:id", r.productHandler.Delete)
		adminGroup.POST("/media", r.productHandler.UploadMedia)

		adminGroup.GET("/orders", r.orderHandler.List)
		adminGroup.PATCH("/orders/:id/status", r.orderHandler.Transition)

		adminGroup.GET("/activity", r.activityHandler.Query)

		adminGroup.GET("/settings/delivery-charges", r.settingsHandler.DeliveryCharges)
		adminGroup.PUT("/settings/delivery-charges", r.settingsHandler.SetDeliveryCharge)

		adminGroup.GET("/dashboard/stats", r.dashboardHandler.Stats)
		adminGroup.GET("/dashboard/feed", r.dashboardHandler.Feed)
		adminGroup.POST("/dashboard/feed/ack", r.dashboardHandler.AcknowledgeOrders)
	}
}
