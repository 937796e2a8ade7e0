package service

import (
	"context"
	"time"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/metrics"
	"fleetrent-backend/internal/repository"
)

type metricsService struct {
	stats     repository.StatsRepository
	requests  *metrics.RequestCounter
	startTime time.Time
}

// NewMetricsService derives point-in-time statistics from the store and the
// process request counter. Reads only; the two counts need not be observed in
// a single consistent cut.
func NewMetricsService(stats repository.StatsRepository, requests *metrics.RequestCounter, startTime time.Time) MetricsService {
	return &metricsService{stats: stats, requests: requests, startTime: startTime}
}

func (s *metricsService) Snapshot(ctx context.Context) (*domain.MetricsSnapshot, error) {
	stats, err := s.stats.Aggregate(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.MetricsSnapshot{
		UptimeSeconds: int64(time.Since(s.startTime).Seconds()),
		Rentals: domain.RentalCounts{
			Total:  stats.TotalRentals,
			Active: stats.ActiveRentals,
			// Completed counts every non-active rental, cancelled included,
			// even though revenue excludes cancellations.
			Completed: stats.TotalRentals - stats.ActiveRentals,
		},
		Revenue: domain.RevenueSnapshot{
			Total:    stats.Revenue,
			Currency: "USD",
		},
		Requests: domain.RequestCounts{
			Total: s.requests.Total(),
		},
	}, nil
}
