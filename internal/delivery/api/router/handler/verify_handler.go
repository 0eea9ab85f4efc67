package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"travelfit/internal/delivery/api/middleware"
	"travelfit/internal/delivery/api/response"
	"travelfit/internal/domain/entity"
	domainerrors "travelfit/internal/domain/errors"
	"travelfit/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VerifyHandlerParams holds dependencies for VerifyHandler, injected by Fx.
type VerifyHandlerParams struct {
	fx.In

	RedemptionUC usecase.RedemptionUsecase
	Logger       *slog.Logger
}

// VerifyHandler holds dependencies for the door-scan handler
type VerifyHandler struct {
	redemptionUC usecase.RedemptionUsecase
	logger       *slog.Logger
}

// NewVerifyHandler is the constructor for VerifyHandler
func NewVerifyHandler(params VerifyHandlerParams) *VerifyHandler {
	return &VerifyHandler{
		redemptionUC: params.RedemptionUC,
		logger:       params.Logger,
	}
}

// VerifyPass handles a scanned redemption code. The request body is the scanned QR text as-is.
// A granted scan answers 200; a revoked or expired pass answers 403 with the denial reason as the code.
func (h *VerifyHandler) VerifyPass(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Failed to read scanned code")
	}

	qrData := strings.TrimSpace(string(body))
	if qrData == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "Scanned code is required")
	}

	verification, err := h.redemptionUC.VerifyScan(c.Request().Context(), identity, qrData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if !verification.Granted {
		denial := domainerrors.ErrPassExpired
		if verification.Reason == entity.DenialReasonRevoked {
			denial = domainerrors.ErrPassRevoked
		}

		return response.Error(c, denial.HTTPCode(), denial.ErrorCode(), verification.Message, nil)
	}

	return response.Success(c, http.StatusOK, VerificationResponse{
		PassID:    verification.PassID,
		Granted:   verification.Granted,
		Reason:    verification.Reason,
		State:     verification.State,
		Activated: verification.Activated,
		ExpiresAt: verification.ExpiresAt,
		Message:   verification.Message,
	})
}
