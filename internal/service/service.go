package service

import (
	"context"

	"fleetrent-backend/internal/domain"
)

type CarService interface {
	ListCars(ctx context.Context) ([]domain.Car, error)
	AddCar(ctx context.Context, in CreateCarInput) (*domain.Car, error)
	RemoveCar(ctx context.Context, id int32) error
}

type RentalService interface {
	CreateRental(ctx context.Context, in CreateRentalInput) (*domain.Rental, error)
	ListRentals(ctx context.Context) ([]domain.RentalWithCar, error)
	UpdateRental(ctx context.Context, id int32, in UpdateRentalInput) (*domain.Rental, error)
	DeleteRental(ctx context.Context, id int32) error
}

type MetricsService interface {
	Snapshot(ctx context.Context) (*domain.MetricsSnapshot, error)
}

type CreateCarInput struct {
	Make      string       `json:"make"`
	Model     string       `json:"model"`
	Year      int32        `json:"year"`
	DailyRate domain.Money `json:"daily_rate"`
}

type CreateRentalInput struct {
	CarID      int32  `json:"car_id"`
	RenterName string `json:"renter_name"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

// UpdateRentalInput carries the two optional mutations of a rental: a status
// transition and/or an end-date extension. Nil means "leave unchanged".
type UpdateRentalInput struct {
	Status  *string `json:"status"`
	EndDate *string `json:"end_date"`
}
