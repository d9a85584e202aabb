// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"craftapp/internal/delivery/http/middleware"
	"craftapp/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	AssetHandler   *handler.AssetHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	assetHandler   *handler.AssetHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		assetHandler:   params.AssetHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/activate", r.accountHandler.Activate)
		authGroup.POST("/token", r.accountHandler.Token)
		authGroup.POST("/forgot-password", r.accountHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.accountHandler.ResetPassword)

		authGroup.GET("/me", r.accountHandler.Me, r.authMiddleware.Authenticate)
		authGroup.PUT("/update-account", r.accountHandler.UpdateAccount, r.authMiddleware.Authenticate)
	}

	// Asset routes. Static routes win over the wildcard, so the health,
	// upload and default aliases must not leak into the object-store path.
	assetGroup := e.Group("/assets")
	{
		assetGroup.GET("/health", r.assetHandler.Health)
		assetGroup.GET("/default/logo", r.assetHandler.DefaultLogo)
		assetGroup.GET("/default/favicon", r.assetHandler.DefaultFavicon)
		assetGroup.POST("/upload", r.assetHandler.Upload, r.authMiddleware.Authenticate)
		assetGroup.GET("/*", r.assetHandler.GetAsset)
	}
}
