package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"travelfit/config"
	"travelfit/internal/delivery/api/middleware"
	"travelfit/internal/delivery/api/router/handler"
	"travelfit/internal/delivery/api/validator"
	"travelfit/internal/domain/entity"
	mockservice "travelfit/internal/mocks/service"
	mockusecase "travelfit/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routerFixture struct {
	echo       *echo.Echo
	tokenSvc   *mockservice.MockTokenService
	gymUC      *mockusecase.MockGymUsecase
	favoriteUC *mockusecase.MockFavoriteUsecase
}

func newRouterFixture(t *testing.T, metricsEnabled bool) *routerFixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokenSvc := mockservice.NewMockTokenService(t)
	gymUC := mockusecase.NewMockGymUsecase(t)
	favoriteUC := mockusecase.NewMockFavoriteUsecase(t)

	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: metricsEnabled, Path: "/metrics"}}

	r := NewRouter(RouterParams{
		GymHandler: handler.NewGymHandler(handler.GymHandlerParams{
			GymUC:       gymUC,
			GeoSearchUC: mockusecase.NewMockGeoSearchUsecase(t),
			Logger:      logger,
		}),
		PassOptionHandler: handler.NewPassOptionHandler(handler.PassOptionHandlerParams{
			PassCatalogUC: mockusecase.NewMockPassCatalogUsecase(t),
			Logger:        logger,
		}),
		PassHandler: handler.NewPassHandler(handler.PassHandlerParams{
			PassLedgerUC: mockusecase.NewMockPassLedgerUsecase(t),
			Logger:       logger,
		}),
		VerifyHandler: handler.NewVerifyHandler(handler.VerifyHandlerParams{
			RedemptionUC: mockusecase.NewMockRedemptionUsecase(t),
			Logger:       logger,
		}),
		PhotoHandler: handler.NewPhotoHandler(handler.PhotoHandlerParams{
			PhotoUC: mockusecase.NewMockPhotoUsecase(t),
			Logger:  logger,
		}),
		FavoriteHandler: handler.NewFavoriteHandler(handler.FavoriteHandlerParams{
			FavoriteUC: favoriteUC,
			Logger:     logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(tokenSvc, logger),
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("# metrics"))
		}),
		Config: cfg,
	})

	e := echo.New()
	e.Validator = validator.New()
	r.RegisterRoutes(e)

	return &routerFixture{echo: e, tokenSvc: tokenSvc, gymUC: gymUC, favoriteUC: favoriteUC}
}

func (f *routerFixture) do(method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func TestRouter_PublicRoutes(t *testing.T) {
	f := newRouterFixture(t, false)
	gymID := uuid.New()
	f.gymUC.EXPECT().GetGym(mock.Anything, gymID).Return(&entity.Gym{ID: gymID, Name: "Iron Temple"}, nil)

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/health", "", "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/gyms/"+gymID.String(), "", "").Code)
}

func TestRouter_ProtectedRoutes(t *testing.T) {
	gymID := uuid.New()

	tests := []struct {
		name       string
		method     string
		target     string
		role       entity.Role
		wantStatus int
	}{
		{name: "create gym without token", method: http.MethodPost, target: "/gyms", wantStatus: http.StatusUnauthorized},
		{name: "create gym as gym staff", method: http.MethodPost, target: "/gyms", role: entity.RoleGym, wantStatus: http.StatusForbidden},
		{name: "delete gym as user", method: http.MethodDelete, target: "/gyms/" + gymID.String(), role: entity.RoleUser, wantStatus: http.StatusForbidden},
		{name: "add offering as user", method: http.MethodPost, target: "/gyms/" + gymID.String() + "/guest-pass-options", role: entity.RoleUser, wantStatus: http.StatusForbidden},
		{name: "purchase as admin", method: http.MethodPost, target: "/gyms/" + gymID.String() + "/guest-passes/purchase", role: entity.RoleAdmin, wantStatus: http.StatusForbidden},
		{name: "wallet without token", method: http.MethodGet, target: "/guest-passes", wantStatus: http.StatusUnauthorized},
		{name: "verify as user", method: http.MethodPost, target: "/verify-pass", role: entity.RoleUser, wantStatus: http.StatusForbidden},
		{name: "revoke as user", method: http.MethodPost, target: "/guest-passes/" + uuid.NewString() + "/revoke", role: entity.RoleUser, wantStatus: http.StatusForbidden},
		{name: "upload photo as user", method: http.MethodPost, target: "/gyms/" + gymID.String() + "/photos", role: entity.RoleUser, wantStatus: http.StatusForbidden},
		{name: "favorites without token", method: http.MethodGet, target: "/users/favorites", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouterFixture(t, false)

			token := ""
			if tt.role != "" {
				token = "token"
				f.tokenSvc.EXPECT().ValidateToken(token).Return(&entity.Identity{UserID: uuid.New(), Role: tt.role}, nil)
			}

			assert.Equal(t, tt.wantStatus, f.do(tt.method, tt.target, token, `{}`).Code)
		})
	}
}

func TestRouter_FavoritesOpenToEveryRole(t *testing.T) {
	for _, role := range []entity.Role{entity.RoleAdmin, entity.RoleGym, entity.RoleUser} {
		t.Run(string(role), func(t *testing.T) {
			f := newRouterFixture(t, false)
			f.tokenSvc.EXPECT().ValidateToken("token").Return(&entity.Identity{UserID: uuid.New(), Role: role}, nil)
			f.favoriteUC.EXPECT().ListFavorites(mock.Anything, mock.Anything).Return([]*entity.GymSummary{}, nil)

			assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/users/favorites", "token", "").Code)
		})
	}
}

func TestRouter_MetricsRoute(t *testing.T) {
	enabled := newRouterFixture(t, true)
	rec := enabled.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "# metrics", rec.Body.String())

	disabled := newRouterFixture(t, false)
	assert.Equal(t, http.StatusNotFound, disabled.do(http.MethodGet, "/metrics", "", "").Code)
}
