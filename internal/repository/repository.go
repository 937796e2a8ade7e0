// Package repository defines the store contract both backends satisfy: the
// durable postgres store and the volatile in-memory fallback expose identical
// observable behavior, so business logic never branches on backend kind.
package repository

import (
	"context"

	"fleetrent-backend/internal/domain"
)

type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	// List returns every car ordered by id ascending.
	List(ctx context.Context) ([]domain.Car, error)
	GetByID(ctx context.Context, id int32) (*domain.Car, error)
	SetAvailability(ctx context.Context, id int32, available bool) error
	// Delete fails with domain.ErrCarRented while any rental references the
	// car; referential integrity never cascades.
	Delete(ctx context.Context, id int32) error
}

type RentalRepository interface {
	// Create allocates the next id, stamps created_at/updated_at, and claims
	// the car: availability flips true→false atomically with the insert.
	// A car already claimed fails with domain.ErrCarUnavailable, so two
	// concurrent creates for the same car can never both succeed.
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	// List returns rentals joined with car descriptive fields, most recent
	// creation first.
	List(ctx context.Context) ([]domain.RentalWithCar, error)
	Update(ctx context.Context, rental *domain.Rental) error
	// Delete removes the record without touching car availability.
	Delete(ctx context.Context, id int32) error
}

type StatsRepository interface {
	Aggregate(ctx context.Context) (*domain.RentalStats, error)
}

// Store bundles the repositories of one backend.
type Store struct {
	Cars    CarRepository
	Rentals RentalRepository
	Stats   StatsRepository
}
