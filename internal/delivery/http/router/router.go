// Package router contains routing setup for the HTTP delivery.
package router

import (
	"suq/internal/delivery/http/middleware"
	"suq/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler *handler.CatalogHandler
	AccountHandler *handler.AccountHandler
	OrderHandler   *handler.OrderHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler *handler.CatalogHandler
	accountHandler *handler.AccountHandler
	orderHandler   *handler.OrderHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler: params.CatalogHandler,
		accountHandler: params.AccountHandler,
		orderHandler:   params.OrderHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public catalog
	e.GET("/products", r.catalogHandler.ListProducts)
	e.GET("/products/:id", r.catalogHandler.GetProduct)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.POST("/logout", r.accountHandler.Logout, r.authMiddleware.Authenticate)
		authGroup.POST("/admin/login", r.accountHandler.AdminLogin)
	}

	// Customer routes that require authentication
	meGroup := e.Group("/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("", r.accountHandler.Profile)
		meGroup.GET("/orders", r.orderHandler.ListMyOrders)
	}

	e.POST("/orders", r.orderHandler.PlaceOrder, r.authMiddleware.Authenticate)

	// Operator routes, guarded by the admin token
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/orders", r.adminHandler.ListOrders)
		adminGroup.PATCH("/orders/:id/status", r.adminHandler.ChangeOrderStatus)
		adminGroup.POST("/products", r.adminHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.adminHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.adminHandler.DeleteProduct)
	}
}
