package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/domain"
	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/http/handlers"
	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/http/middleware/ratelimit"
	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/http/router"
	svc "github.com/aasthha0421/Commerce-Operations-Analytics/internal/service/analytics"

	core "github.com/aasthha0421/Commerce-Operations-Analytics/internal/analytics"
)

type staticSource struct {
	snap *domain.Snapshot
}

func (s staticSource) Load(context.Context) (*domain.Snapshot, error) {
	return s.snap, nil
}

func newTestRouter(t *testing.T, limiter *ratelimit.Middleware) http.Handler {
	t.Helper()

	service := svc.NewService(staticSource{snap: &domain.Snapshot{}}, core.DefaultThresholds(), time.Second, nil)
	uc := handlers.NewAnalyticsUsecase(service)

	return router.New(
		handlers.New(nil),
		handlers.NewAnalyticsHandler(uc, nil),
		handlers.NewExportHandler(uc, nil, nil),
		nil,
		limiter,
	)
}

func TestRouter_Ping(t *testing.T) {
	r := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_UnknownRouteIsJSON404(t *testing.T) {
	r := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/there/is/no/such/route", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestRouter_AnalyticsRoutes(t *testing.T) {
	r := newTestRouter(t, nil)

	paths := []string{
		"/api/analytics/overview",
		"/api/analytics/delays",
		"/api/analytics/cancellations",
		"/api/analytics/stockouts",
		"/api/analytics/riders",
		"/api/analytics/picking-time",
		"/api/analytics/recommendations",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code, "path %s", path)
		require.True(t, json.Valid(rr.Body.Bytes()), "path %s must return JSON", path)
	}
}

func TestRouter_MetricsExposed(t *testing.T) {
	r := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "http_requests_total")
}

func TestRouter_ExportRateLimited(t *testing.T) {
	limiter := ratelimit.New(nil, nil, ratelimit.NewTokenBucketLimiter(nil, ratelimit.Config{
		Rate:  0.001,
		Burst: 1,
	}))
	r := newTestRouter(t, limiter)

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/export/excel", nil))
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/export/excel", nil))
	require.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestRouter_RateLimitDoesNotCoverAnalytics(t *testing.T) {
	limiter := ratelimit.New(nil, nil, ratelimit.NewTokenBucketLimiter(nil, ratelimit.Config{
		Rate:  0.001,
		Burst: 1,
	}))
	r := newTestRouter(t, limiter)

	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/analytics/overview", nil))
		require.Equal(t, http.StatusOK, rr.Code)
	}
}
