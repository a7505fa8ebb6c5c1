// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"agroalerta/internal/delivery/http/middleware"
	"agroalerta/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers the router wires up, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler           *handler.AuthHandler
	FormHandler           *handler.FormHandler
	CropHandler           *handler.CropHandler
	AlertHandler          *handler.AlertHandler
	RecommendationHandler *handler.RecommendationHandler
	WeatherHandler        *handler.WeatherHandler
	ReportHandler         *handler.ReportHandler
	PreferenceHandler     *handler.PreferenceHandler
	AuthMiddleware        *middleware.AuthMiddleware
	RequestIDMiddleware   *middleware.RequestIDMiddleware
	LoggerMiddleware      *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.params.RequestIDMiddleware.Process)
	e.Use(r.params.LoggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Registration form: public, it exists before any session does
	formGroup := e.Group("/form")
	{
		formGroup.GET("", r.params.FormHandler.Get)
		formGroup.GET("/progress", r.params.FormHandler.Progress)
		formGroup.PUT("/fields", r.params.FormHandler.SetField)
		formGroup.PUT("/members", r.params.FormHandler.ToggleMember)
		formGroup.POST("/submit", r.params.FormHandler.Submit)
	}

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.params.AuthHandler.Login)
	}

	sessionGroup := e.Group("/auth")
	sessionGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		sessionGroup.POST("/logout", r.params.AuthHandler.Logout)
		sessionGroup.GET("/session", r.params.AuthHandler.Session)
		sessionGroup.PUT("/consents", r.params.AuthHandler.UpdateConsents)
	}

	// Dashboard routes that require authentication
	cropGroup := e.Group("/crops")
	cropGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		cropGroup.POST("", r.params.CropHandler.Add)
		cropGroup.GET("", r.params.CropHandler.List)
		cropGroup.GET("/stats", r.params.CropHandler.Stats)
		cropGroup.GET("/:id", r.params.CropHandler.Get)
		cropGroup.PUT("/:id", r.params.CropHandler.Update)
		cropGroup.DELETE("/:id", r.params.CropHandler.Delete)
	}

	alertGroup := e.Group("/alerts")
	alertGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		alertGroup.GET("", r.params.AlertHandler.List)
		alertGroup.GET("/active", r.params.AlertHandler.Active)
		alertGroup.GET("/:id", r.params.AlertHandler.Get)
		alertGroup.GET("/:id/share", r.params.AlertHandler.Share)
	}

	recGroup := e.Group("/recommendations")
	recGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		recGroup.POST("/refresh", r.params.RecommendationHandler.Refresh)
		recGroup.GET("", r.params.RecommendationHandler.List)
		recGroup.GET("/unread-count", r.params.RecommendationHandler.UnreadCount)
		recGroup.GET("/priority", r.params.RecommendationHandler.Priority)
		recGroup.PUT("/read-all", r.params.RecommendationHandler.MarkAllRead)
		recGroup.PUT("/:id/read", r.params.RecommendationHandler.MarkRead)
		recGroup.DELETE("/:id", r.params.RecommendationHandler.Dismiss)
	}

	weatherGroup := e.Group("/weather")
	{
		weatherGroup.GET("", r.params.WeatherHandler.Current)
		weatherGroup.POST("/refresh", r.params.WeatherHandler.Refresh)
	}

	reportGroup := e.Group("/reports")
	reportGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		reportGroup.POST("", r.params.ReportHandler.Generate)
		reportGroup.POST("/export", r.params.ReportHandler.Export)
	}

	// Device preferences: public, they apply before login (language picker)
	prefGroup := e.Group("/preferences")
	{
		prefGroup.GET("", r.params.PreferenceHandler.Get)
		prefGroup.PUT("/language", r.params.PreferenceHandler.SetLanguage)
		prefGroup.PUT("/offline-mode", r.params.PreferenceHandler.SetOfflineMode)
	}
}
