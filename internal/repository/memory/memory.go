// Package memory is the volatile store backend. It is the startup fallback
// when postgres cannot be reached: same contracts, same seed, no persistence
// across restarts. A single mutex serializes all mutations, which also makes
// the availability check-and-set in rental creation atomic.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type store struct {
	mu           sync.Mutex
	cars         map[int32]*domain.Car
	rentals      map[int32]*domain.Rental
	nextCarID    int32
	nextRentalID int32
}

// NewStore constructs a volatile store pre-seeded with the fixed initial
// fleet, matching what a fresh durable store would serve.
func NewStore() *repository.Store {
	s := &store{
		cars:         make(map[int32]*domain.Car),
		rentals:      make(map[int32]*domain.Rental),
		nextCarID:    1,
		nextRentalID: 1,
	}
	for _, car := range repository.SeedCars() {
		c := car
		c.ID = s.nextCarID
		c.CreatedAt = time.Now().UTC()
		s.cars[c.ID] = &c
		s.nextCarID++
	}
	return &repository.Store{
		Cars:    &carRepository{s},
		Rentals: &rentalRepository{s},
		Stats:   &statsRepository{s},
	}
}

type carRepository struct{ s *store }

func (r *carRepository) Create(ctx context.Context, car *domain.Car) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	car.ID = s.nextCarID
	s.nextCarID++
	car.CreatedAt = time.Now().UTC()
	c := *car
	s.cars[c.ID] = &c
	return nil
}

func (r *carRepository) List(ctx context.Context) ([]domain.Car, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	cars := make([]domain.Car, 0, len(s.cars))
	for _, c := range s.cars {
		cars = append(cars, *c)
	}
	sort.Slice(cars, func(i, j int) bool { return cars[i].ID < cars[j].ID })
	return cars, nil
}

func (r *carRepository) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cars[id]
	if !ok {
		return nil, domain.ErrCarNotFound
	}
	out := *c
	return &out, nil
}

func (r *carRepository) SetAvailability(ctx context.Context, id int32, available bool) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cars[id]
	if !ok {
		return domain.ErrCarNotFound
	}
	c.Available = available
	return nil
}

func (r *carRepository) Delete(ctx context.Context, id int32) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cars[id]; !ok {
		return domain.ErrCarNotFound
	}
	for _, rt := range s.rentals {
		if rt.CarID == id {
			return domain.ErrCarRented
		}
	}
	delete(s.cars, id)
	return nil
}

type rentalRepository struct{ s *store }

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	car, ok := s.cars[rt.CarID]
	if !ok {
		return domain.ErrCarNotFound
	}
	if !car.Available {
		return domain.ErrCarUnavailable
	}
	car.Available = false

	rt.ID = s.nextRentalID
	s.nextRentalID++
	now := time.Now().UTC()
	rt.CreatedAt = now
	rt.UpdatedAt = now
	stored := *rt
	s.rentals[stored.ID] = &stored
	return nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	rt, ok := s.rentals[id]
	if !ok {
		return nil, domain.ErrRentalNotFound
	}
	out := *rt
	return &out, nil
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.RentalWithCar, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	rentals := make([]domain.RentalWithCar, 0, len(s.rentals))
	for _, rt := range s.rentals {
		joined := domain.RentalWithCar{Rental: *rt}
		if car, ok := s.cars[rt.CarID]; ok {
			joined.CarMake = car.Make
			joined.CarModel = car.Model
			joined.CarYear = car.Year
			joined.CarDailyRate = car.DailyRate
		}
		rentals = append(rentals, joined)
	}
	sort.Slice(rentals, func(i, j int) bool {
		if !rentals[i].CreatedAt.Equal(rentals[j].CreatedAt) {
			return rentals[i].CreatedAt.After(rentals[j].CreatedAt)
		}
		return rentals[i].ID > rentals[j].ID
	})
	return rentals, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rentals[rt.ID]; !ok {
		return domain.ErrRentalNotFound
	}
	rt.UpdatedAt = time.Now().UTC()
	stored := *rt
	s.rentals[stored.ID] = &stored
	return nil
}

func (r *rentalRepository) Delete(ctx context.Context, id int32) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rentals[id]; !ok {
		return domain.ErrRentalNotFound
	}
	delete(s.rentals, id)
	return nil
}

type statsRepository struct{ s *store }

func (r *statsRepository) Aggregate(ctx context.Context) (*domain.RentalStats, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := &domain.RentalStats{}
	for _, rt := range s.rentals {
		stats.TotalRentals++
		if rt.Status == domain.RentalStatusOngoing {
			stats.ActiveRentals++
		}
		if rt.Status == domain.RentalStatusOngoing || rt.Status == domain.RentalStatusReturned {
			stats.Revenue += rt.TotalCost
		}
	}
	return stats, nil
}
