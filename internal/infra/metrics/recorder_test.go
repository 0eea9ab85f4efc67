package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"travelfit/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_PassMetrics(t *testing.T) {
	recorder := NewRecorder()

	recorder.PassPurchased()
	recorder.PassPurchased()
	recorder.PassVerified(service.VerificationGranted, true)
	recorder.PassVerified(service.VerificationGranted, false)
	recorder.PassVerified(service.VerificationExpired, false)

	assert.Equal(t, float64(2), testutil.ToFloat64(recorder.passPurchasesTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(recorder.passVerifications.WithLabelValues("granted", "true")))
	assert.Equal(t, float64(1), testutil.ToFloat64(recorder.passVerifications.WithLabelValues("granted", "false")))
	assert.Equal(t, float64(1), testutil.ToFloat64(recorder.passVerifications.WithLabelValues("expired", "false")))
	assert.Equal(t, float64(0), testutil.ToFloat64(recorder.passVerifications.WithLabelValues("revoked", "false")))
}

func TestRecorder_HTTPRequests(t *testing.T) {
	recorder := NewRecorder()

	recorder.RecordHTTPRequest(http.MethodPost, "/gyms/nearby", http.StatusOK, 20*time.Millisecond)
	recorder.RecordHTTPRequest(http.MethodPost, "/gyms/nearby", http.StatusOK, 30*time.Millisecond)
	recorder.RecordHTTPRequest(http.MethodPost, "/gyms/nearby", http.StatusBadRequest, time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(recorder.httpRequestsTotal.WithLabelValues("POST", "/gyms/nearby", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(recorder.httpRequestsTotal.WithLabelValues("POST", "/gyms/nearby", "400")))
}

func TestRecorder_Handler(t *testing.T) {
	recorder := NewRecorder()
	recorder.NearbySearchCompleted(15*time.Millisecond, 3)

	rec := httptest.NewRecorder()
	recorder.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "travelfit_nearby_search_results_count 1")
	assert.Contains(t, body, "travelfit_nearby_search_duration_seconds_bucket")
	assert.Contains(t, body, "go_goroutines")
}
