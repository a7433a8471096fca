package metrics_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/flight-lookup/internal/metrics"
)

func scrape(t *testing.T, r *metrics.Recorder) string {
	t.Helper()
	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	return string(body)
}

func TestRecorder_RecordLookup(t *testing.T) {
	r := metrics.NewRecorder()

	r.RecordLookup("found")
	r.RecordLookup("found")
	r.RecordLookup("not_found")

	body := scrape(t, r)
	assert.Contains(t, body, `flight_lookup_lookups_total{outcome="found"} 2`)
	assert.Contains(t, body, `flight_lookup_lookups_total{outcome="not_found"} 1`)
	assert.NotContains(t, body, `flight_lookup_lookups_total{outcome="error"}`)
}

func TestRecorder_RecordUpstream(t *testing.T) {
	r := metrics.NewRecorder()

	r.RecordUpstream(120*time.Millisecond, nil)
	r.RecordUpstream(3*time.Second, errors.New("boom"))

	body := scrape(t, r)
	assert.Contains(t, body, `flight_lookup_upstream_request_duration_seconds_count{result="ok"} 1`)
	assert.Contains(t, body, `flight_lookup_upstream_request_duration_seconds_count{result="error"} 1`)
}

func TestRecorder_RecordHTTPRequest(t *testing.T) {
	r := metrics.NewRecorder()

	r.RecordHTTPRequest(http.MethodGet, "/api/flights/{flightNumber}", http.StatusOK, 5*time.Millisecond)
	r.RecordHTTPRequest(http.MethodGet, "/api/flights/{flightNumber}", http.StatusNotFound, 5*time.Millisecond)

	body := scrape(t, r)
	assert.Contains(t, body, `flight_lookup_http_requests_total{method="GET",route="/api/flights/{flightNumber}",status="200"} 1`)
	assert.Contains(t, body, `flight_lookup_http_requests_total{method="GET",route="/api/flights/{flightNumber}",status="404"} 1`)
	assert.Contains(t, body, `flight_lookup_http_request_duration_seconds_count{method="GET",route="/api/flights/{flightNumber}"} 2`)
}

func TestRecorder_HandlerExposesRuntimeCollectors(t *testing.T) {
	body := scrape(t, metrics.NewRecorder())
	assert.Contains(t, body, "go_goroutines")
}

func TestRecorder_NilIsSafe(t *testing.T) {
	var r *metrics.Recorder

	assert.NotPanics(t, func() {
		r.RecordLookup("found")
		r.RecordUpstream(time.Second, nil)
		r.RecordHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Second)
	})

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
