package handler

import (
	"log/slog"
	"net/http"
	"time"

	"travelfit/internal/delivery/api/middleware"
	"travelfit/internal/delivery/api/response"
	"travelfit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PassHandlerParams holds dependencies for PassHandler, injected by Fx.
type PassHandlerParams struct {
	fx.In

	PassLedgerUC usecase.PassLedgerUsecase
	Logger       *slog.Logger
}

// PassHandler holds dependencies for guest-pass purchase and wallet handlers
type PassHandler struct {
	passLedgerUC usecase.PassLedgerUsecase
	logger       *slog.Logger
	now          func() time.Time
}

// NewPassHandler is the constructor for PassHandler
func NewPassHandler(params PassHandlerParams) *PassHandler {
	return &PassHandler{
		passLedgerUC: params.PassLedgerUC,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// PurchasePassRequest represents the request body for buying a guest pass
type PurchasePassRequest struct {
	PassOptionID string `json:"pass_option_id" validate:"required,uuid"`
}

// PurchasePass handles buying a guest pass
func (h *PassHandler) PurchasePass(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	gymID, err := uuid.Parse(c.Param("gymId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid gym ID")
	}

	var req PurchasePassRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	// Validated as a UUID above.
	optionID := uuid.MustParse(req.PassOptionID)

	purchase, err := h.passLedgerUC.Purchase(c.Request().Context(), identity, gymID, optionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, PurchaseResponse{
		PurchaseID:    purchase.ID,
		GymID:         purchase.GymID,
		PassName:      purchase.PassName,
		Price:         purchase.Price.StringFixed(2),
		DurationDays:  purchase.DurationDays,
		RedemptionURL: purchase.RedemptionURL,
		PurchasedAt:   purchase.PurchasedAt,
		Message:       "Guest pass purchased successfully",
	})
}

// ListPasses handles listing the caller's valid passes
func (h *PassHandler) ListPasses(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	views, err := h.passLedgerUC.ListForUser(c.Request().Context(), identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toGuestPassResponses(views, h.now()))
}

// GetPassQRCode handles serving the redemption QR image of one of the caller's passes
func (h *PassHandler) GetPassQRCode(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	passID, err := uuid.Parse(c.Param("passId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pass ID")
	}

	png, err := h.passLedgerUC.GetPassQRCode(c.Request().Context(), identity, passID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "private, no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}

// RevokePass handles invalidating a pass
func (h *PassHandler) RevokePass(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	passID, err := uuid.Parse(c.Param("passId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pass ID")
	}

	if err := h.passLedgerUC.RevokePass(c.Request().Context(), identity, passID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Guest pass revoked successfully"})
}
