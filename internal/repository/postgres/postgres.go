// Package postgres is the durable store backend, written against database/sql
// with the lib/pq driver.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"fleetrent-backend/internal/repository"

	_ "github.com/lib/pq"
)

func NewStore(db *sql.DB) *repository.Store {
	return &repository.Store{
		Cars:    NewCarRepository(db),
		Rentals: NewRentalRepository(db),
		Stats:   NewStatsRepository(db),
	}
}

// EnsureSchema creates the tables if they do not exist. The rentals→cars
// foreign key is RESTRICT: a referenced car can never be deleted from under
// its rentals.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS cars (
			id SERIAL PRIMARY KEY,
			make TEXT NOT NULL,
			model TEXT NOT NULL,
			year INT NOT NULL DEFAULT 0,
			daily_rate_cents BIGINT NOT NULL CHECK (daily_rate_cents >= 0),
			available BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS rentals (
			id SERIAL PRIMARY KEY,
			car_id INT NOT NULL REFERENCES cars(id) ON DELETE RESTRICT,
			renter_name TEXT NOT NULL,
			start_date TEXT NOT NULL,
			end_date TEXT NOT NULL,
			total_cost_cents BIGINT NOT NULL,
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_rentals_car_id ON rentals(car_id)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// Seed inserts the fixed initial fleet when the cars table is empty. It is a
// no-op on every later start.
func Seed(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT count(*) FROM cars`).Scan(&count); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if count > 0 {
		return nil
	}
	cars := NewCarRepository(db)
	for _, car := range repository.SeedCars() {
		if err := cars.Create(ctx, &car); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	return nil
}
