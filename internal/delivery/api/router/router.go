// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"beacon/internal/delivery/api/middleware"
	"beacon/internal/delivery/api/router/handler"
	"beacon/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeviceHandler       *handler.DeviceHandler
	SettingsHandler     *handler.SettingsHandler
	HistoryHandler      *handler.HistoryHandler
	EventHandler        *handler.EventHandler
	NotificationHandler *handler.NotificationHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	deviceHandler       *handler.DeviceHandler
	settingsHandler     *handler.SettingsHandler
	historyHandler      *handler.HistoryHandler
	eventHandler        *handler.EventHandler
	notificationHandler *handler.NotificationHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deviceHandler:       params.DeviceHandler,
		settingsHandler:     params.SettingsHandler,
		historyHandler:      params.HistoryHandler,
		eventHandler:        params.EventHandler,
		notificationHandler: params.NotificationHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// End-user routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)
	apiV1.Use(r.authMiddleware.RequireRole(entity.RoleUser))
	{
		apiV1.GET("/me", handler.WhoAmI)
		apiV1.POST("/events", r.eventHandler.PublishEvent)
	}

	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.ListDevices)
		devicesGroup.DELETE("", r.deviceHandler.UnregisterDevice)
	}

	settingsGroup := apiV1.Group("/settings")
	{
		settingsGroup.GET("", r.settingsHandler.GetSettings)
		settingsGroup.PATCH("", r.settingsHandler.UpdateSettings)
	}

	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.GET("", r.historyHandler.ListHistory)
		notificationsGroup.POST("/:id/delivered", r.historyHandler.MarkDelivered)
		notificationsGroup.POST("/:id/read", r.historyHandler.MarkRead)
	}

	// Producer routes for other backend services
	internalGroup := e.Group("/internal")
	internalGroup.Use(r.authMiddleware.Authenticate)
	internalGroup.Use(r.authMiddleware.RequireRole(entity.RoleService))
	{
		internalGroup.POST("/notifications", r.notificationHandler.Enqueue)
		internalGroup.POST("/notifications/send", r.notificationHandler.Send)
		internalGroup.POST("/devices/deactivate", r.deviceHandler.DeactivateToken)
	}

	// Operator routes
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/entries", r.adminHandler.ListEntries)
		adminGroup.GET("/entries/:id", r.adminHandler.GetEntry)
		adminGroup.POST("/entries/retry", r.adminHandler.RetryFailed)
		adminGroup.POST("/entries/cancel", r.adminHandler.Cancel)
		adminGroup.POST("/entries/purge", r.adminHandler.Purge)
		adminGroup.GET("/stats", r.adminHandler.Stats)
	}
}
