// Package router registers the API routes on the echo server.
package router

import (
	"net/http"

	"travelfit/config"
	"travelfit/internal/delivery/api/middleware"
	"travelfit/internal/delivery/api/router/handler"
	"travelfit/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	GymHandler        *handler.GymHandler
	PassOptionHandler *handler.PassOptionHandler
	PassHandler       *handler.PassHandler
	VerifyHandler     *handler.VerifyHandler
	PhotoHandler      *handler.PhotoHandler
	FavoriteHandler   *handler.FavoriteHandler
	AuthMiddleware    *middleware.AuthMiddleware
	MetricsHandler    http.Handler `name:"metricsHandler"`
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	gymHandler        *handler.GymHandler
	passOptionHandler *handler.PassOptionHandler
	passHandler       *handler.PassHandler
	verifyHandler     *handler.VerifyHandler
	photoHandler      *handler.PhotoHandler
	favoriteHandler   *handler.FavoriteHandler
	authMiddleware    *middleware.AuthMiddleware
	metricsHandler    http.Handler
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		gymHandler:        params.GymHandler,
		passOptionHandler: params.PassOptionHandler,
		passHandler:       params.PassHandler,
		verifyHandler:     params.VerifyHandler,
		photoHandler:      params.PhotoHandler,
		favoriteHandler:   params.FavoriteHandler,
		authMiddleware:    params.AuthMiddleware,
		metricsHandler:    params.MetricsHandler,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.authMiddleware.Authenticate
	staff := r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleGym)
	admin := r.authMiddleware.RequireRole(entity.RoleAdmin)
	holder := r.authMiddleware.RequireRole(entity.RoleUser)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Prometheus scrape endpoint
	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metricsHandler))
	}

	// Gym directory routes
	gymsGroup := e.Group("/gyms")
	{
		gymsGroup.POST("/nearby", r.gymHandler.FindNearby)
		gymsGroup.GET("/city/:city", r.gymHandler.ListByCity)
		gymsGroup.POST("", r.gymHandler.CreateGym, auth, admin)
		gymsGroup.GET("/:gymId", r.gymHandler.GetGym)
		gymsGroup.PUT("/:gymId", r.gymHandler.UpdateGym, auth, staff)
		gymsGroup.DELETE("/:gymId", r.gymHandler.DeleteGym, auth, admin)

		// Guest-pass catalog
		gymsGroup.POST("/:gymId/guest-pass-options", r.passOptionHandler.CreatePassOption, auth, staff)
		gymsGroup.GET("/:gymId/guest-pass-options", r.passOptionHandler.ListPassOptions)
		gymsGroup.DELETE("/:gymId/guest-pass-options/:optionId", r.passOptionHandler.DeletePassOption, auth, staff)

		gymsGroup.POST("/:gymId/guest-passes/purchase", r.passHandler.PurchasePass, auth, holder)

		// Photo gallery
		gymsGroup.POST("/:gymId/photos", r.photoHandler.UploadPhotos, auth, staff)
		gymsGroup.GET("/:gymId/photos", r.photoHandler.ListPhotos)
		gymsGroup.DELETE("/:gymId/photos/:photoId", r.photoHandler.DeletePhoto, auth, staff)
	}

	// Guest-pass wallet routes
	passesGroup := e.Group("/guest-passes", auth)
	{
		passesGroup.GET("", r.passHandler.ListPasses, holder)
		passesGroup.GET("/:passId/qr", r.passHandler.GetPassQRCode, holder)
		passesGroup.POST("/:passId/revoke", r.passHandler.RevokePass, staff)
	}

	// Front-desk redemption
	e.POST("/verify-pass", r.verifyHandler.VerifyPass, auth, staff)

	// Per-account bookmarks, open to every authenticated role
	favoritesGroup := e.Group("/users/favorites", auth)
	{
		favoritesGroup.GET("", r.favoriteHandler.ListFavorites)
		favoritesGroup.POST("/:gymId", r.favoriteHandler.AddFavorite)
		favoritesGroup.DELETE("/:gymId", r.favoriteHandler.RemoveFavorite)
	}
}
