// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gather/internal/delivery/http/middleware"
	"gather/internal/delivery/http/router/handler"
	"gather/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// RouterParams holds everything the router mounts, injected by Fx.
type RouterParams struct {
	fx.In

	AccountHandler  *handler.AccountHandler
	ActivityHandler *handler.ActivityHandler
	ProfileHandler  *handler.ProfileHandler
	PhotoHandler    *handler.PhotoHandler
	AuthMiddleware  *middleware.AuthMiddleware
	HostMiddleware  *middleware.HostMiddleware
	AuthMetrics     *metrics.AuthMetrics
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler  *handler.AccountHandler
	activityHandler *handler.ActivityHandler
	profileHandler  *handler.ProfileHandler
	photoHandler    *handler.PhotoHandler
	authMiddleware  *middleware.AuthMiddleware
	hostMiddleware  *middleware.HostMiddleware
	authMetrics     *metrics.AuthMetrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:  params.AccountHandler,
		activityHandler: params.ActivityHandler,
		profileHandler:  params.ProfileHandler,
		photoHandler:    params.PhotoHandler,
		authMiddleware:  params.AuthMiddleware,
		hostMiddleware:  params.HostMiddleware,
		authMetrics:     params.AuthMetrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(
		promhttp.HandlerFor(r.authMetrics.Registry(), promhttp.HandlerOpts{})))

	// Session routes. Refresh and logout authenticate with the bearer token;
	// the refresh token itself travels only in the cookie.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.POST("/refresh", r.accountHandler.Refresh, r.authMiddleware.Authenticate)
		authGroup.POST("/logout", r.accountHandler.Logout, r.authMiddleware.Authenticate)
	}

	accountGroup := e.Group("/account")
	accountGroup.Use(r.authMiddleware.Authenticate)
	{
		accountGroup.GET("", r.accountHandler.CurrentUser)
	}

	// Activity routes. Edit and delete additionally require the host
	// capability, evaluated per request.
	activityGroup := e.Group("/activities")
	activityGroup.Use(r.authMiddleware.Authenticate)
	{
		activityGroup.GET("", r.activityHandler.List)
		activityGroup.POST("", r.activityHandler.Create)
		activityGroup.GET("/:id", r.activityHandler.Get)
		activityGroup.PUT("/:id", r.activityHandler.Update, r.hostMiddleware.RequireActivityHost)
		activityGroup.DELETE("/:id", r.activityHandler.Delete, r.hostMiddleware.RequireActivityHost)
		activityGroup.POST("/:id/attend", r.activityHandler.Attend)
	}

	profileGroup := e.Group("/profiles")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.POST("/:username/follow", r.profileHandler.ToggleFollow)
		profileGroup.GET("/:username/followers", r.profileHandler.ListFollowers)
		profileGroup.GET("/:username/following", r.profileHandler.ListFollowing)
		profileGroup.GET("/:username/activities", r.profileHandler.ListActivities)
	}

	photoGroup := e.Group("/photos")
	photoGroup.Use(r.authMiddleware.Authenticate)
	{
		photoGroup.POST("", r.photoHandler.Add)
		photoGroup.POST("/:id/setmain", r.photoHandler.SetMain)
		photoGroup.DELETE("/:id", r.photoHandler.Delete)
	}
}
