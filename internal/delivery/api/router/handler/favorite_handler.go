package handler

import (
	"log/slog"
	"net/http"

	"travelfit/internal/delivery/api/middleware"
	"travelfit/internal/delivery/api/response"
	"travelfit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler holds dependencies for bookmark handlers
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

// ListFavorites handles listing the caller's bookmarked gyms
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	gyms, err := h.favoriteUC.ListFavorites(c.Request().Context(), identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toGymSummaryResponses(gyms))
}

// AddFavorite handles bookmarking a gym
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	gymID, err := uuid.Parse(c.Param("gymId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid gym ID")
	}

	if err := h.favoriteUC.AddFavorite(c.Request().Context(), identity, gymID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Gym added to favorites successfully"})
}

// RemoveFavorite handles removing a bookmark
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	gymID, err := uuid.Parse(c.Param("gymId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid gym ID")
	}

	if err := h.favoriteUC.RemoveFavorite(c.Request().Context(), identity, gymID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Gym removed from favorites successfully"})
}
