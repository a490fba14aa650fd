// Package router contains routing setup for the HTTP delivery.
package router

import (
	"dentalstore/internal/delivery/http/middleware"
	"dentalstore/internal/delivery/http/router/handler"
	"dentalstore/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds all handlers registered on the server, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	ProductHandler   *handler.ProductHandler
	OrderHandler     *handler.OrderHandler
	SettingHandler   *handler.SettingHandler
	PageImageHandler *handler.PageImageHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	productHandler   *handler.ProductHandler
	orderHandler     *handler.OrderHandler
	settingHandler   *handler.SettingHandler
	pageImageHandler *handler.PageImageHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		productHandler:   params.ProductHandler,
		orderHandler:     params.OrderHandler,
		settingHandler:   params.SettingHandler,
		pageImageHandler: params.PageImageHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.authMiddleware.Authenticate
	requireAdmin := r.authMiddleware.RequireRole(entity.RoleAdmin)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account routes
	accountGroup := e.Group("/accounts")
	{
		accountGroup.POST("/login", r.authHandler.Login)
		accountGroup.POST("/logout", r.authHandler.Logout, authenticate)
		accountGroup.GET("/check", r.authHandler.Check, authenticate)
	}

	// Catalog routes: reads are public, mutations need the admin role.
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.GET("/:id", r.productHandler.Get)
		productGroup.GET("/category/:category", r.productHandler.ListByCategory)
		productGroup.POST("", r.productHandler.Create, authenticate, requireAdmin)
		productGroup.PUT("/:id", r.productHandler.Update, authenticate, requireAdmin)
		productGroup.DELETE("/:id", r.productHandler.Delete, authenticate, requireAdmin)
	}

	// Checkout routes: placing an order is anonymous, browsing orders is not.
	cartGroup := e.Group("/cart")
	{
		cartGroup.POST("/order", r.orderHandler.Create)
		cartGroup.GET("/orders", r.orderHandler.List, authenticate, requireAdmin)
		cartGroup.GET("/orders/:id", r.orderHandler.Get, authenticate, requireAdmin)
	}

	// CMS routes
	cmsGroup := e.Group("/cms")
	{
		cmsGroup.GET("/settings", r.settingHandler.List)
		cmsGroup.GET("/settings/:id", r.settingHandler.Get)
		cmsGroup.POST("/settings", r.settingHandler.Create, authenticate, requireAdmin)
		cmsGroup.PUT("/settings/:id", r.settingHandler.Update, authenticate, requireAdmin)
		cmsGroup.DELETE("/settings/:id", r.settingHandler.Delete, authenticate, requireAdmin)

		cmsGroup.GET("/page-images", r.pageImageHandler.List)
		cmsGroup.GET("/page-images/:id", r.pageImageHandler.Get)
		cmsGroup.POST("/page-images", r.pageImageHandler.Create, authenticate, requireAdmin)
		cmsGroup.PUT("/page-images/:id", r.pageImageHandler.Update, authenticate, requireAdmin)
		cmsGroup.DELETE("/page-images/:id", r.pageImageHandler.Delete, authenticate, requireAdmin)
	}
}
