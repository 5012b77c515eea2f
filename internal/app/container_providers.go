package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/analytics"
	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/config"
	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/http/handlers"
	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/logx"
	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/metrics"
	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/repository"
	svcanalytics "github.com/aasthha0421/Commerce-Operations-Analytics/internal/service/analytics"
)

type serviceIn struct {
	dig.In
	Repo       *repository.SnapshotRepo
	Thresholds analytics.Thresholds
	Config     *config.Config
	Logger     logx.Logger
}

type pprofServerOut struct {
	dig.Out
	Server *http.Server `name:"pprof_server"`
}

type metricsOut struct {
	dig.Out
	RateLimitExceededTotal prometheus.Counter `name:"rate_limit_exceeded_total"`
	ExportDownloadsTotal   prometheus.Counter `name:"export_downloads_total"`
}

// provideMetrics registers the service counters, reusing an existing
// collector when the process registers twice.
func provideMetrics() (metricsOut, error) {
	var out metricsOut
	var err error

	out.RateLimitExceededTotal, err = registerCounter(metrics.NewRateLimitExceededTotal(), "rate_limit_exceeded_total")
	if err != nil {
		return metricsOut{}, err
	}
	out.ExportDownloadsTotal, err = registerCounter(metrics.NewExportDownloadsTotal(), "export_downloads_total")
	if err != nil {
		return metricsOut{}, err
	}
	return out, nil
}

func registerCounter(c prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := prometheus.DefaultRegisterer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}

func newAnalyticsHandler(service *svcanalytics.Service, logger logx.Logger) *handlers.AnalyticsHandler {
	return handlers.NewAnalyticsHandler(handlers.NewAnalyticsUsecase(service), logger)
}

type exportIn struct {
	dig.In
	Service *svcanalytics.Service
	Logger  logx.Logger
	Counter prometheus.Counter `name:"export_downloads_total"`
}

func newExportHandler(in exportIn) *handlers.ExportHandler {
	return handlers.NewExportHandler(handlers.NewAnalyticsUsecase(in.Service), in.Logger, in.Counter)
}
