package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainerrors "travelfit/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	path   string
	status int
}

type fakeRecorder struct {
	requests []recordedRequest
}

func (f *fakeRecorder) RecordHTTPRequest(method, path string, status int, _ time.Duration) {
	f.requests = append(f.requests, recordedRequest{method: method, path: path, status: status})
}

func TestMetricsMiddleware_Handle(t *testing.T) {
	tests := []struct {
		name       string
		handler    echo.HandlerFunc
		wantStatus int
	}{
		{
			name: "written response",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusNoContent)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "app error before write",
			handler: func(c echo.Context) error {
				return domainerrors.ErrGymNotFound
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "echo error before write",
			handler: func(c echo.Context) error {
				return echo.NewHTTPError(http.StatusRequestEntityTooLarge)
			},
			wantStatus: http.StatusRequestEntityTooLarge,
		},
		{
			name: "unknown error before write",
			handler: func(c echo.Context) error {
				return assert.AnError
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := &fakeRecorder{}
			e := echo.New()
			e.GET("/gyms/:gymId", tt.handler, NewMetricsMiddleware(recorder).Handle)

			req := httptest.NewRequest(http.MethodGet, "/gyms/123", nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Len(t, recorder.requests, 1)
			assert.Equal(t, http.MethodGet, recorder.requests[0].method)
			assert.Equal(t, "/gyms/:gymId", recorder.requests[0].path)
			assert.Equal(t, tt.wantStatus, recorder.requests[0].status)
		})
	}
}
