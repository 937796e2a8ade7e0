package service

import (
	"context"
	"testing"
	"time"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/metrics"

	"github.com/stretchr/testify/assert"
)

func TestMetricsService_Snapshot(t *testing.T) {
	ctx := context.Background()

	statsRepo := new(MockStatsRepo)
	counter := metrics.NewRequestCounter()
	counter.Inc()
	counter.Inc()
	counter.Inc()

	svc := NewMetricsService(statsRepo, counter, time.Now().Add(-90*time.Second))

	statsRepo.On("Aggregate", ctx).Return(&domain.RentalStats{
		TotalRentals:  3,
		ActiveRentals: 1,
		Revenue:       domain.Money(29250),
	}, nil)

	snap, err := svc.Snapshot(ctx)
	assert.NoError(t, err)

	assert.GreaterOrEqual(t, snap.UptimeSeconds, int64(90))
	assert.Equal(t, int64(3), snap.Rentals.Total)
	assert.Equal(t, int64(1), snap.Rentals.Active)
	assert.Equal(t, int64(2), snap.Rentals.Completed)
	assert.Equal(t, snap.Rentals.Total, snap.Rentals.Active+snap.Rentals.Completed)
	assert.Equal(t, "292.50", snap.Revenue.Total.String())
	assert.Equal(t, "USD", snap.Revenue.Currency)
	assert.Equal(t, int64(3), snap.Requests.Total)
}
