package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "travelfit/internal/delivery/context"
	"travelfit/internal/domain/entity"
	mockservice "travelfit/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func serveWithAuth(t *testing.T, tokenSvc *mockservice.MockTokenService, header string, roles ...entity.Role) (*httptest.ResponseRecorder, *entity.Identity, *entity.Identity) {
	t.Helper()

	var fromEcho, fromContext *entity.Identity
	m := NewAuthMiddleware(tokenSvc, discardLogger)

	e := echo.New()
	chain := []echo.MiddlewareFunc{m.Authenticate}
	if len(roles) > 0 {
		chain = append(chain, m.RequireRole(roles...))
	}
	e.GET("/protected", func(c echo.Context) error {
		fromEcho, _ = GetIdentity(c)
		fromContext = deliverycontext.GetIdentityFromContext(c.Request().Context())

		return c.NoContent(http.StatusNoContent)
	}, chain...)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec, fromEcho, fromContext
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Run("valid token stores the identity", func(t *testing.T) {
		tokenSvc := mockservice.NewMockTokenService(t)
		identity := &entity.Identity{UserID: uuid.New(), Role: entity.RoleUser}
		tokenSvc.EXPECT().ValidateToken("good-token").Return(identity, nil)

		rec, fromEcho, fromContext := serveWithAuth(t, tokenSvc, "Bearer good-token")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, identity, fromEcho)
		assert.Equal(t, identity, fromContext)
	})

	t.Run("missing header", func(t *testing.T) {
		rec, fromEcho, _ := serveWithAuth(t, mockservice.NewMockTokenService(t), "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
		assert.Nil(t, fromEcho)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		rec, _, _ := serveWithAuth(t, mockservice.NewMockTokenService(t), "Basic dXNlcjpwYXNz")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
	})

	t.Run("rejected token", func(t *testing.T) {
		tokenSvc := mockservice.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("expired").Return(nil, assert.AnError)

		rec, _, _ := serveWithAuth(t, tokenSvc, "Bearer expired")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name       string
		role       entity.Role
		allowed    []entity.Role
		wantStatus int
	}{
		{name: "admin on staff route", role: entity.RoleAdmin, allowed: []entity.Role{entity.RoleAdmin, entity.RoleGym}, wantStatus: http.StatusNoContent},
		{name: "gym on staff route", role: entity.RoleGym, allowed: []entity.Role{entity.RoleAdmin, entity.RoleGym}, wantStatus: http.StatusNoContent},
		{name: "user on staff route", role: entity.RoleUser, allowed: []entity.Role{entity.RoleAdmin, entity.RoleGym}, wantStatus: http.StatusForbidden},
		{name: "admin on holder route", role: entity.RoleAdmin, allowed: []entity.Role{entity.RoleUser}, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockservice.NewMockTokenService(t)
			tokenSvc.EXPECT().ValidateToken("token").Return(&entity.Identity{UserID: uuid.New(), Role: tt.role}, nil)

			rec, _, _ := serveWithAuth(t, tokenSvc, "Bearer token", tt.allowed...)

			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
