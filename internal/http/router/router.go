package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/http/handlers"
	mw "github.com/aasthha0421/Commerce-Operations-Analytics/internal/http/middleware"
	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/http/middleware/ratelimit"
	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
func New(
	h *handlers.Handlers,
	analytics *handlers.AnalyticsHandler,
	export *handlers.ExportHandler,
	logger logx.Logger,
	limiter *ratelimit.Middleware,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(mw.Observability(logger))

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/analytics", func(r chi.Router) {
		r.Get("/overview", analytics.Overview)
		r.Get("/delays", analytics.Delays)
		r.Get("/cancellations", analytics.Cancellations)
		r.Get("/stockouts", analytics.Stockouts)
		r.Get("/riders", analytics.Riders)
		r.Get("/picking-time", analytics.PickingTime)
		r.Get("/recommendations", analytics.Recommendations)
	})

	r.Route("/api/export", func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Handler())
		}
		r.Get("/excel", export.Excel)
	})

	r.NotFound(http.HandlerFunc(h.NotFound))

	return r
}
