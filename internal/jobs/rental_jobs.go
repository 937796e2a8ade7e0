// Package jobs holds the scheduled maintenance work run inside the server
// process.
package jobs

import (
	"context"
	"time"

	"fleetrent-backend/internal/config"
	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/pricing"
	"fleetrent-backend/internal/repository"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	store  *repository.Store
	config *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(store *repository.Store, cfg *config.Config) *JobRunner {
	return &JobRunner{store: store, config: cfg}
}

// Config exposes the loaded configuration to the scheduler.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// ReportOverdueRentals logs every ongoing rental whose end date has passed.
// It mutates nothing; the report exists for operator follow-up, since an
// overdue car stays unavailable until the rental is marked returned.
func (jr *JobRunner) ReportOverdueRentals() {
	jr.runWithRecovery("ReportOverdueRentals", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		rentals, err := jr.store.Rentals.List(ctx)
		if err != nil {
			logger.Error("Failed to list rentals for overdue report", "error", err)
			return
		}

		today := time.Now().UTC().Format(pricing.DateLayout)
		overdue := 0
		for _, rt := range rentals {
			if rt.Status != domain.RentalStatusOngoing {
				continue
			}
			if rt.EndDate < today {
				overdue++
				logger.Warn("Rental is overdue",
					"rental_id", rt.ID,
					"car_id", rt.CarID,
					"renter", rt.RenterName,
					"end_date", rt.EndDate,
				)
			}
		}
		logger.Info("Overdue rental report finished", "overdue", overdue, "scanned", len(rentals))
	})
}
