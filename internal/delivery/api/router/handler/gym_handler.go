package handler

import (
	"log/slog"
	"net/http"

	"travelfit/internal/delivery/api/middleware"
	"travelfit/internal/delivery/api/response"
	"travelfit/internal/domain/entity"
	"travelfit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GymHandlerParams holds dependencies for GymHandler, injected by Fx.
type GymHandlerParams struct {
	fx.In

	GymUC       usecase.GymUsecase
	GeoSearchUC usecase.GeoSearchUsecase
	Logger      *slog.Logger
}

// GymHandler holds dependencies for gym directory handlers
type GymHandler struct {
	gymUC       usecase.GymUsecase
	geoSearchUC usecase.GeoSearchUsecase
	logger      *slog.Logger
}

// NewGymHandler is the constructor for GymHandler
func NewGymHandler(params GymHandlerParams) *GymHandler {
	return &GymHandler{
		gymUC:       params.GymUC,
		geoSearchUC: params.GeoSearchUC,
		logger:      params.Logger,
	}
}

// NearbyGymsRequest represents the request body for a proximity search
type NearbyGymsRequest struct {
	Latitude       *float64 `json:"latitude" validate:"required"`
	Longitude      *float64 `json:"longitude" validate:"required"`
	RadiusInMeters float64  `json:"radius_in_meters"`
	Limit          int      `json:"limit"`
}

// CreateGymRequest represents the request body for listing a new gym
type CreateGymRequest struct {
	GymName          string            `json:"gym_name" validate:"required,max=255"`
	GymDescription   string            `json:"gym_description"`
	Address1         string            `json:"address1" validate:"required"`
	Address2         string            `json:"address2"`
	City             string            `json:"city" validate:"required"`
	State            string            `json:"state" validate:"required"`
	Zipcode          string            `json:"zipcode" validate:"required"`
	Amenities        []string          `json:"amenities"`
	HoursOfOperation map[string]string `json:"hours_of_operation"`
}

// UpdateGymRequest represents the request body for a partial gym update
type UpdateGymRequest struct {
	GymName          *string           `json:"gym_name" validate:"omitnil,min=1,max=255"`
	GymDescription   *string           `json:"gym_description"`
	Address1         *string           `json:"address1" validate:"omitnil,min=1"`
	Address2         *string           `json:"address2"`
	City             *string           `json:"city" validate:"omitnil,min=1"`
	State            *string           `json:"state" validate:"omitnil,min=1"`
	Zipcode          *string           `json:"zipcode" validate:"omitnil,min=1"`
	Amenities        []string          `json:"amenities"`
	HoursOfOperation map[string]string `json:"hours_of_operation"`
}

// FindNearby handles the proximity search
func (h *GymHandler) FindNearby(c echo.Context) error {
	var req NearbyGymsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	gyms, err := h.geoSearchUC.FindNearby(c.Request().Context(), &usecase.NearbyQuery{
		Latitude:     *req.Latitude,
		Longitude:    *req.Longitude,
		RadiusMeters: req.RadiusInMeters,
		Limit:        req.Limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toNearbyGymResponses(gyms))
}

// ListByCity handles listing the gyms in a city
func (h *GymHandler) ListByCity(c echo.Context) error {
	gyms, err := h.gymUC.ListGymsInCity(c.Request().Context(), c.Param("city"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toGymSummaryResponses(gyms))
}

// CreateGym handles listing a new gym
func (h *GymHandler) CreateGym(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	var req CreateGymRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid gym input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	gym, err := h.gymUC.CreateGym(c.Request().Context(), identity, &usecase.GymInput{
		Name:        req.GymName,
		Description: req.GymDescription,
		Address: entity.GymAddress{
			Address1: req.Address1,
			Address2: req.Address2,
			City:     req.City,
			State:    req.State,
			Zipcode:  req.Zipcode,
		},
		Amenities: req.Amenities,
		Hours:     req.HoursOfOperation,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toGymResponse(gym))
}

// GetGym handles retrieving a gym with its photos
func (h *GymHandler) GetGym(c echo.Context) error {
	gymID, err := uuid.Parse(c.Param("gymId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid gym ID")
	}

	gym, err := h.gymUC.GetGym(c.Request().Context(), gymID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toGymResponse(gym))
}

// UpdateGym handles a partial gym update
func (h *GymHandler) UpdateGym(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	gymID, err := uuid.Parse(c.Param("gymId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid gym ID")
	}

	var req UpdateGymRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid gym input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	gym, err := h.gymUC.UpdateGym(c.Request().Context(), identity, gymID, &usecase.GymPatch{
		Name:        req.GymName,
		Description: req.GymDescription,
		Address1:    req.Address1,
		Address2:    req.Address2,
		City:        req.City,
		State:       req.State,
		Zipcode:     req.Zipcode,
		Amenities:   req.Amenities,
		Hours:       req.HoursOfOperation,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toGymResponse(gym))
}

// DeleteGym handles removing a gym listing
func (h *GymHandler) DeleteGym(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	gymID, err := uuid.Parse(c.Param("gymId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid gym ID")
	}

	if err := h.gymUC.DeleteGym(c.Request().Context(), identity, gymID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Gym deleted successfully"})
}
