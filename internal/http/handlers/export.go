package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/apperr"
	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/export"
	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/logx"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves the Excel report download.
type ExportHandler struct {
	uc      analyticsUsecase
	logger  logx.Logger
	counter prometheus.Counter
}

// NewExportHandler wires an analyticsUsecase into the export endpoint.
// The counter tracks served downloads and may be nil.
func NewExportHandler(uc analyticsUsecase, logger logx.Logger, counter prometheus.Counter) *ExportHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &ExportHandler{uc: uc, logger: logger, counter: counter}
}

// Excel handles GET /api/export/excel and streams the full report as
// an xlsx attachment.
func (h *ExportHandler) Excel(w http.ResponseWriter, r *http.Request) {
	rep, err := h.uc.Report(r.Context())
	switch {
	case err == nil:
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "dataset not found, run the seeder")
		return
	case errors.Is(err, apperr.Unavailable):
		writeError(h.logger, w, r, http.StatusServiceUnavailable, "data source unavailable")
		return
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}

	data, err := export.Workbook(rep)
	if err != nil {
		h.logger.Error("workbook build failed",
			logx.String("req_id", reqID(r.Context())),
			logx.Any("err", err),
		)
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}

	if h.counter != nil {
		h.counter.Inc()
	}

	filename := "quick_commerce_report_" + rep.GeneratedAt.Format("20060102_1504") + ".xlsx"
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Debug("export response write failed",
			logx.String("req_id", reqID(r.Context())),
			logx.Any("err", err),
		)
	}
}
