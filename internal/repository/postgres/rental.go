package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

// Create claims the car and inserts the rental in a single transaction. The
// conditional UPDATE is the serialization point: of two concurrent creates
// for the same car, exactly one sees a row flip and commits.
func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `UPDATE cars SET available = FALSE WHERE id = $1 AND available`, rt.CarID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM cars WHERE id = $1)`, rt.CarID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.ErrCarNotFound
		}
		return domain.ErrCarUnavailable
	}

	now := time.Now().UTC()
	rt.CreatedAt = now
	rt.UpdatedAt = now
	query := `INSERT INTO rentals (car_id, renter_name, start_date, end_date, total_cost_cents, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	if err := tx.QueryRowContext(ctx, query, rt.CarID, rt.RenterName, rt.StartDate, rt.EndDate, int64(rt.TotalCost), rt.Status, rt.CreatedAt, rt.UpdatedAt).Scan(&rt.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT id, car_id, renter_name, start_date, end_date, total_cost_cents, status, created_at, updated_at
	          FROM rentals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rt.ID, &rt.CarID, &rt.RenterName, &rt.StartDate, &rt.EndDate, &rt.TotalCost, &rt.Status, &rt.CreatedAt, &rt.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRentalNotFound
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.RentalWithCar, error) {
	query := `SELECT r.id, r.car_id, r.renter_name, r.start_date, r.end_date, r.total_cost_cents, r.status, r.created_at, r.updated_at,
	                 c.make, c.model, c.year, c.daily_rate_cents
	          FROM rentals r
	          JOIN cars c ON c.id = r.car_id
	          ORDER BY r.created_at DESC, r.id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.RentalWithCar
	for rows.Next() {
		var rt domain.RentalWithCar
		if err := rows.Scan(&rt.ID, &rt.CarID, &rt.RenterName, &rt.StartDate, &rt.EndDate, &rt.TotalCost, &rt.Status, &rt.CreatedAt, &rt.UpdatedAt,
			&rt.CarMake, &rt.CarModel, &rt.CarYear, &rt.CarDailyRate); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	rt.UpdatedAt = time.Now().UTC()
	query := `UPDATE rentals SET end_date = $1, total_cost_cents = $2, status = $3, updated_at = $4 WHERE id = $5`
	res, err := r.db.ExecContext(ctx, query, rt.EndDate, int64(rt.TotalCost), rt.Status, rt.UpdatedAt, rt.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrRentalNotFound
	}
	return nil
}

func (r *rentalRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrRentalNotFound
	}
	return nil
}
