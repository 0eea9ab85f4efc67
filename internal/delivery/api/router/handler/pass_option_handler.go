package handler

import (
	"log/slog"
	"net/http"

	"travelfit/internal/delivery/api/middleware"
	"travelfit/internal/delivery/api/response"
	"travelfit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// PassOptionHandlerParams holds dependencies for PassOptionHandler, injected by Fx.
type PassOptionHandlerParams struct {
	fx.In

	PassCatalogUC usecase.PassCatalogUsecase
	Logger        *slog.Logger
}

// PassOptionHandler holds dependencies for guest-pass catalog handlers
type PassOptionHandler struct {
	passCatalogUC usecase.PassCatalogUsecase
	logger        *slog.Logger
}

// NewPassOptionHandler is the constructor for PassOptionHandler
func NewPassOptionHandler(params PassOptionHandlerParams) *PassOptionHandler {
	return &PassOptionHandler{
		passCatalogUC: params.PassCatalogUC,
		logger:        params.Logger,
	}
}

// CreatePassOptionRequest represents the request body for adding an offering.
// Price accepts a JSON number or string; range and precision are enforced by the catalog.
type CreatePassOptionRequest struct {
	PassName    string          `json:"pass_name" validate:"required,max=255"`
	Price       decimal.Decimal `json:"price"`
	Duration    int             `json:"duration"`
	Description string          `json:"description"`
}

// CreatePassOption handles adding an offering to a gym's catalog
func (h *PassOptionHandler) CreatePassOption(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	gymID, err := uuid.Parse(c.Param("gymId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid gym ID")
	}

	var req CreatePassOptionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pass option input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	offering, err := h.passCatalogUC.CreateOffering(c.Request().Context(), identity, gymID, &usecase.OfferingInput{
		Name:         req.PassName,
		Price:        req.Price,
		DurationDays: req.Duration,
		Description:  req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPassOptionResponse(offering))
}

// ListPassOptions handles listing a gym's offerings
func (h *PassOptionHandler) ListPassOptions(c echo.Context) error {
	gymID, err := uuid.Parse(c.Param("gymId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid gym ID")
	}

	offerings, err := h.passCatalogUC.ListOfferings(c.Request().Context(), gymID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result := make([]PassOptionResponse, 0, len(offerings))
	for _, offering := range offerings {
		result = append(result, toPassOptionResponse(offering))
	}

	return response.Success(c, http.StatusOK, result)
}

// DeletePassOption handles removing an offering from a gym's catalog
func (h *PassOptionHandler) DeletePassOption(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	gymID, err := uuid.Parse(c.Param("gymId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid gym ID")
	}

	optionID, err := uuid.Parse(c.Param("optionId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pass option ID")
	}

	if err := h.passCatalogUC.DeleteOffering(c.Request().Context(), identity, gymID, optionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Pass option deleted successfully"})
}
