// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hwehweme/internal/delivery/http/middleware"
	"hwehweme/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	DeviceHandler   *handler.DeviceHandler
	LocationHandler *handler.LocationHandler
	GroupHandler    *handler.GroupHandler
	ShareHandler    *handler.ShareHandler
	AlertHandler    *handler.AlertHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	deviceHandler   *handler.DeviceHandler
	locationHandler *handler.LocationHandler
	groupHandler    *handler.GroupHandler
	shareHandler    *handler.ShareHandler
	alertHandler    *handler.AlertHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		deviceHandler:   params.DeviceHandler,
		locationHandler: params.LocationHandler,
		groupHandler:    params.GroupHandler,
		shareHandler:    params.ShareHandler,
		alertHandler:    params.AlertHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.Refresh)
		authGroup.POST("/logout", r.userHandler.Logout, r.authMiddleware.Authenticate)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.PUT("/profile", r.userHandler.UpdateProfile)
	}

	// Device routes, including per-device location reporting and history
	deviceGroup := e.Group("/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	{
		deviceGroup.POST("", r.deviceHandler.Register)
		deviceGroup.GET("", r.deviceHandler.List)
		deviceGroup.GET("/:id", r.deviceHandler.Get)
		deviceGroup.PUT("/:id", r.deviceHandler.Update)
		deviceGroup.DELETE("/:id", r.deviceHandler.Delete)

		deviceGroup.POST("/:id/locations", r.locationHandler.Report)
		deviceGroup.GET("/:id/locations", r.locationHandler.History)
		deviceGroup.GET("/:id/locations/latest", r.locationHandler.Latest)
	}

	// Device group routes
	groupGroup := e.Group("/groups")
	groupGroup.Use(r.authMiddleware.Authenticate)
	{
		groupGroup.POST("", r.groupHandler.Create)
		groupGroup.GET("", r.groupHandler.List)
		groupGroup.GET("/:id", r.groupHandler.Get)
		groupGroup.PUT("/:id", r.groupHandler.Update)
		groupGroup.DELETE("/:id", r.groupHandler.Delete)

		groupGroup.POST("/:id/devices", r.groupHandler.AddDevice)
		groupGroup.DELETE("/:id/devices/:deviceID", r.groupHandler.RemoveDevice)
	}

	// Share routes
	shareGroup := e.Group("/shares")
	shareGroup.Use(r.authMiddleware.Authenticate)
	{
		shareGroup.POST("", r.shareHandler.Create)
		shareGroup.GET("", r.shareHandler.ListGranted)
		shareGroup.GET("/with-me", r.shareHandler.ListReceived)
		shareGroup.DELETE("/:id", r.shareHandler.Revoke)
	}

	// Alert routes
	alertGroup := e.Group("/alerts")
	alertGroup.Use(r.authMiddleware.Authenticate)
	{
		alertGroup.POST("", r.alertHandler.Create)
		alertGroup.GET("", r.alertHandler.List)
		alertGroup.POST("/:id/resolve", r.alertHandler.Resolve)
	}
}
