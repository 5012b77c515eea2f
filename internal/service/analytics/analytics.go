package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/analytics"
	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/logx"
)

// Service coordinates analytics business logic and orchestrates snapshot loads.
type Service struct {
	source           snapshotSource
	thresholds       analytics.Thresholds
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewService creates and configures an analytics Service.
func NewService(src snapshotSource, th analytics.Thresholds, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		source:           src,
		thresholds:       th,
		operationTimeout: timeout,
		logger:           logger,
		now:              time.Now,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func (s *Service) views(ctx context.Context) (*analytics.Views, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	snap, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	v := analytics.ComposeViews(snap)
	return &v, nil
}

// Overview returns headline order and fulfilment metrics.
func (s *Service) Overview(ctx context.Context) (*analytics.OverviewView, error) {
	v, err := s.views(ctx)
	if err != nil {
		return nil, err
	}
	return &v.Overview, nil
}

// Delays returns the delivery delay breakdown.
func (s *Service) Delays(ctx context.Context) (*analytics.DelaysView, error) {
	v, err := s.views(ctx)
	if err != nil {
		return nil, err
	}
	return &v.Delays, nil
}

// Cancellations returns the cancellation breakdown.
func (s *Service) Cancellations(ctx context.Context) (*analytics.CancellationsView, error) {
	v, err := s.views(ctx)
	if err != nil {
		return nil, err
	}
	return &v.Cancellations, nil
}

// Stockouts returns the out-of-stock breakdown.
func (s *Service) Stockouts(ctx context.Context) (*analytics.StockoutsView, error) {
	v, err := s.views(ctx)
	if err != nil {
		return nil, err
	}
	return &v.Stockouts, nil
}

// Riders returns rider performance rankings.
func (s *Service) Riders(ctx context.Context) (*analytics.RidersView, error) {
	v, err := s.views(ctx)
	if err != nil {
		return nil, err
	}
	return &v.Riders, nil
}

// PickingTime returns the picking time breakdown.
func (s *Service) PickingTime(ctx context.Context) (*analytics.PickingTimeView, error) {
	v, err := s.views(ctx)
	if err != nil {
		return nil, err
	}
	return &v.PickingTime, nil
}

// Recommendations evaluates operational rules against the current data.
func (s *Service) Recommendations(ctx context.Context) ([]analytics.Recommendation, error) {
	v, err := s.views(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.Recommend(v, s.thresholds), nil
}

// Report assembles every view plus recommendations into a single document.
func (s *Service) Report(ctx context.Context) (*analytics.Report, error) {
	started := s.now()
	v, err := s.views(ctx)
	if err != nil {
		return nil, err
	}
	rep := &analytics.Report{
		GeneratedAt:     s.now(),
		Views:           *v,
		Recommendations: analytics.Recommend(v, s.thresholds),
	}
	s.logger.Info("report built",
		logx.Int("total_orders", rep.Overview.TotalOrders),
		logx.Int("recommendations", len(rep.Recommendations)),
		logx.Duration("took", s.now().Sub(started)),
	)
	return rep, nil
}
