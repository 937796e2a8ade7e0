package postgres

import (
	"context"
	"database/sql"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type statsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Aggregate(ctx context.Context) (*domain.RentalStats, error) {
	stats := &domain.RentalStats{}
	query := `SELECT count(*),
	                 count(*) FILTER (WHERE status = 'ongoing'),
	                 COALESCE(sum(total_cost_cents) FILTER (WHERE status IN ('ongoing', 'returned')), 0)
	          FROM rentals`
	err := r.db.QueryRowContext(ctx, query).Scan(&stats.TotalRentals, &stats.ActiveRentals, &stats.Revenue)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
