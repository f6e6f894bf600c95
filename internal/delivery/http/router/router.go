// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sparestock/internal/delivery/http/middleware"
	"sparestock/internal/delivery/http/router/handler"
	"sparestock/internal/domain/policy"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	productHandler *handler.ProductHandler
	orderHandler   *handler.OrderHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		productHandler: params.ProductHandler,
		orderHandler:   params.OrderHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes are the only public API surface.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Inventory routes. Everyone logged in may browse; only privileged roles
	// may change the catalog.
	productGroup := e.Group("/products")
	productGroup.Use(r.authMiddleware.Authenticate)
	{
		productGroup.GET("", r.productHandler.ListProducts,
			r.authMiddleware.Require(policy.ActionViewProducts))
		productGroup.POST("", r.productHandler.CreateProduct,
			r.authMiddleware.Require(policy.ActionManageProducts))
		productGroup.DELETE("/:id", r.productHandler.DeleteProduct,
			r.authMiddleware.Require(policy.ActionManageProducts))
	}

	// Order routes.
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.PlaceOrder,
			r.authMiddleware.Require(policy.ActionPlaceOrder))
		orderGroup.PUT("/cancel/:id", r.orderHandler.CancelOrder,
			r.authMiddleware.Require(policy.ActionPlaceOrder))
		orderGroup.GET("/my-orders", r.orderHandler.MyOrders,
			r.authMiddleware.Require(policy.ActionViewOwnOrders))
		orderGroup.GET("/stats", r.orderHandler.Stats,
			r.authMiddleware.Require(policy.ActionViewAllOrders))
		orderGroup.GET("/all", r.orderHandler.AllOrders,
			r.authMiddleware.Require(policy.ActionViewAllOrders))
	}
}
