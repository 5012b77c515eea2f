package handlers

import (
	"errors"
	"net/http"

	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/analytics"
	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/apperr"
	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/logx"
)

// AnalyticsHandler serves HTTP endpoints for the analytic views.
type AnalyticsHandler struct {
	uc     analyticsUsecase
	logger logx.Logger
}

// NewAnalyticsHandler wires an analyticsUsecase into HTTP handlers.
func NewAnalyticsHandler(uc analyticsUsecase, logger logx.Logger) *AnalyticsHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &AnalyticsHandler{uc: uc, logger: logger}
}

func (h *AnalyticsHandler) respond(w http.ResponseWriter, r *http.Request, v any, err error) {
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, v)
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "dataset not found, run the seeder")
	case errors.Is(err, apperr.Unavailable):
		writeError(h.logger, w, r, http.StatusServiceUnavailable, "data source unavailable")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Overview handles GET /api/analytics/overview.
func (h *AnalyticsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	v, err := h.uc.Overview(r.Context())
	h.respond(w, r, v, err)
}

// Delays handles GET /api/analytics/delays.
func (h *AnalyticsHandler) Delays(w http.ResponseWriter, r *http.Request) {
	v, err := h.uc.Delays(r.Context())
	h.respond(w, r, v, err)
}

// Cancellations handles GET /api/analytics/cancellations.
func (h *AnalyticsHandler) Cancellations(w http.ResponseWriter, r *http.Request) {
	v, err := h.uc.Cancellations(r.Context())
	h.respond(w, r, v, err)
}

// Stockouts handles GET /api/analytics/stockouts.
func (h *AnalyticsHandler) Stockouts(w http.ResponseWriter, r *http.Request) {
	v, err := h.uc.Stockouts(r.Context())
	h.respond(w, r, v, err)
}

// Riders handles GET /api/analytics/riders.
func (h *AnalyticsHandler) Riders(w http.ResponseWriter, r *http.Request) {
	v, err := h.uc.Riders(r.Context())
	h.respond(w, r, v, err)
}

// PickingTime handles GET /api/analytics/picking-time.
func (h *AnalyticsHandler) PickingTime(w http.ResponseWriter, r *http.Request) {
	v, err := h.uc.PickingTime(r.Context())
	h.respond(w, r, v, err)
}

// Recommendations handles GET /api/analytics/recommendations.
func (h *AnalyticsHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	recs, err := h.uc.Recommendations(r.Context())
	if err != nil {
		h.respond(w, r, nil, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string][]analytics.Recommendation{
		"recommendations": recs,
	})
}
