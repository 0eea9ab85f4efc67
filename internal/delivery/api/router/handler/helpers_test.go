package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"travelfit/internal/delivery/api/response"
	"travelfit/internal/delivery/api/validator"
	deliverycontext "travelfit/internal/delivery/context"
	"travelfit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type testRequest struct {
	method      string
	target      string
	body        string
	contentType string
	identity    *entity.Identity
	params      map[string]string
}

func newTestContext(tr testRequest) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(tr.method, tr.target, strings.NewReader(tr.body))
	contentType := tr.contentType
	if contentType == "" {
		contentType = echo.MIMEApplicationJSON
	}
	req.Header.Set(echo.HeaderContentType, contentType)

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetRequestID(c, "test-request")

	if tr.identity != nil {
		deliverycontext.SetIdentity(c, tr.identity)
	}

	names := make([]string, 0, len(tr.params))
	values := make([]string, 0, len(tr.params))
	for name, value := range tr.params {
		names = append(names, name)
		values = append(values, value)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	return c, rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var body struct {
		Data T                 `json:"data"`
		Meta response.MetaInfo `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "test-request", body.Meta.RequestID)

	return body.Data
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error.Code
}

func adminIdentity() *entity.Identity {
	return &entity.Identity{UserID: uuid.New(), Role: entity.RoleAdmin}
}

func userIdentity() *entity.Identity {
	return &entity.Identity{UserID: uuid.New(), Role: entity.RoleUser}
}

func staffIdentity(gymID uuid.UUID) *entity.Identity {
	return &entity.Identity{UserID: uuid.New(), Role: entity.RoleGym, GymID: gymID}
}
