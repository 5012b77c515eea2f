package handlers

import (
	"context"

	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/analytics"
	svc "github.com/aasthha0421/Commerce-Operations-Analytics/internal/service/analytics"
)

type analyticsUsecase interface {
	Overview(ctx context.Context) (*analytics.OverviewView, error)
	Delays(ctx context.Context) (*analytics.DelaysView, error)
	Cancellations(ctx context.Context) (*analytics.CancellationsView, error)
	Stockouts(ctx context.Context) (*analytics.StockoutsView, error)
	Riders(ctx context.Context) (*analytics.RidersView, error)
	PickingTime(ctx context.Context) (*analytics.PickingTimeView, error)
	Recommendations(ctx context.Context) ([]analytics.Recommendation, error)
	Report(ctx context.Context) (*analytics.Report, error)
}

// NewAnalyticsUsecase wires an analytics Service into an analyticsUsecase.
func NewAnalyticsUsecase(service *svc.Service) analyticsUsecase {
	return service
}
