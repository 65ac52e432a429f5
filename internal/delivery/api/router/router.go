// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"leadhub/internal/delivery/api/middleware"
	"leadhub/internal/delivery/api/router/handler"
	"leadhub/internal/domain/entity"
	"leadhub/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AddressHandler *handler.AddressHandler
	VendorHandler  *handler.VendorHandler
	LeadHandler    *handler.LeadHandler
	MessageHandler *handler.MessageHandler
	ImportHandler  *handler.ImportHandler
	ProductHandler *handler.ProductHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	addressHandler *handler.AddressHandler
	vendorHandler  *handler.VendorHandler
	leadHandler    *handler.LeadHandler
	messageHandler *handler.MessageHandler
	importHandler  *handler.ImportHandler
	productHandler *handler.ProductHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		addressHandler: params.AddressHandler,
		vendorHandler:  params.VendorHandler,
		leadHandler:    params.LeadHandler,
		messageHandler: params.MessageHandler,
		importHandler:  params.ImportHandler,
		productHandler: params.ProductHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil && r.metrics.Enabled() {
		e.GET(r.metrics.Path(), echo.WrapHandler(r.metrics.Handler()))
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	addressesGroup := apiV1.Group("/addresses")
	{
		addressesGroup.POST("", r.addressHandler.CreateAddress)
		addressesGroup.GET("", r.addressHandler.ListAddresses)
		addressesGroup.PUT("/:id", r.addressHandler.UpdateAddress)
		addressesGroup.DELETE("/:id", r.addressHandler.DeleteAddress)
	}

	// Any user may open a vendor account for themselves
	apiV1.POST("/vendors", r.vendorHandler.RegisterVendor)
	apiV1.GET("/vendors", r.vendorHandler.ListVendors)
	apiV1.GET("/subscriptions", r.vendorHandler.ListPlans)

	vendorsGroup := apiV1.Group("/vendors/:id")
	vendorsGroup.Use(r.authMiddleware.RequireRole(entity.RoleVendor, entity.RoleAdmin))
	{
		vendorsGroup.GET("", r.vendorHandler.GetVendor)
		vendorsGroup.POST("/subscriptions", r.vendorHandler.PurchaseSubscription)
		vendorsGroup.GET("/subscriptions", r.vendorHandler.PurchaseHistory)
		vendorsGroup.GET("/leads", r.vendorHandler.ListClaimedLeads)
		vendorsGroup.POST("/leads/:leadId/contact", r.vendorHandler.ContactLead)
		vendorsGroup.POST("/products", r.productHandler.CreateProducts)
	}

	leadsGroup := apiV1.Group("/leads")
	{
		leadsGroup.POST("", r.leadHandler.CreateLead)
		leadsGroup.GET("", r.leadHandler.ListLeadPool)
	}

	messagesGroup := apiV1.Group("/messages")
	{
		messagesGroup.POST("", r.messageHandler.SendMessage)
		messagesGroup.GET("/history", r.messageHandler.FetchHistory)
		messagesGroup.GET("/conversation", r.messageHandler.ListConversation)
	}

	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/imports/vendors", r.importHandler.ImportVendors)
	}
}
