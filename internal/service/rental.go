package service

import (
	"context"
	"fmt"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/pricing"
	"fleetrent-backend/internal/repository"
)

type rentalService struct {
	rentals repository.RentalRepository
	cars    repository.CarRepository
}

func NewRentalService(rentals repository.RentalRepository, cars repository.CarRepository) RentalService {
	return &rentalService{rentals: rentals, cars: cars}
}

func (s *rentalService) CreateRental(ctx context.Context, in CreateRentalInput) (*domain.Rental, error) {
	if in.CarID == 0 {
		return nil, domain.MissingFieldError("car_id")
	}
	if in.RenterName == "" {
		return nil, domain.MissingFieldError("renter_name")
	}
	if in.StartDate == "" {
		return nil, domain.MissingFieldError("start_date")
	}
	if in.EndDate == "" {
		return nil, domain.MissingFieldError("end_date")
	}

	car, err := s.cars.GetByID(ctx, in.CarID)
	if err != nil {
		return nil, err
	}
	if !car.Available {
		return nil, domain.ErrCarUnavailable
	}

	days := pricing.InclusiveDays(in.StartDate, in.EndDate)
	if days == 0 {
		return nil, domain.ErrInvalidDateRange
	}

	rental := &domain.Rental{
		CarID:      car.ID,
		RenterName: in.RenterName,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		TotalCost:  pricing.RentalCost(car.DailyRate, days),
		Status:     domain.RentalStatusOngoing,
	}
	// The repository claims the car atomically with the insert; the
	// availability read above is only a fast pre-check.
	if err := s.rentals.Create(ctx, rental); err != nil {
		return nil, err
	}

	logger.Info("rental created", "rental_id", rental.ID, "car_id", car.ID, "days", days, "total_cost", rental.TotalCost.String())
	return rental, nil
}

func (s *rentalService) ListRentals(ctx context.Context) ([]domain.RentalWithCar, error) {
	return s.rentals.List(ctx)
}

func (s *rentalService) UpdateRental(ctx context.Context, id int32, in UpdateRentalInput) (*domain.Rental, error) {
	rental, err := s.rentals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.EndDate != nil {
		days := pricing.InclusiveDays(rental.StartDate, *in.EndDate)
		if days == 0 {
			return nil, domain.ErrInvalidDateRange
		}
		car, err := s.cars.GetByID(ctx, rental.CarID)
		if err != nil {
			return nil, err
		}
		rental.EndDate = *in.EndDate
		rental.TotalCost = pricing.RentalCost(car.DailyRate, days)
	}

	if in.Status != nil {
		next := domain.RentalStatus(*in.Status)
		if !next.Valid() || next == domain.RentalStatusOngoing {
			return nil, fmt.Errorf("%w: invalid status %q", domain.ErrValidation, *in.Status)
		}
		if rental.Status.Terminal() {
			return nil, domain.ErrInvalidTransition
		}
		rental.Status = next
		// Returning a car releases it; cancellation deliberately does not.
		if next == domain.RentalStatusReturned {
			if err := s.cars.SetAvailability(ctx, rental.CarID, true); err != nil {
				return nil, err
			}
		}
	}

	if err := s.rentals.Update(ctx, rental); err != nil {
		return nil, err
	}

	logger.Info("rental updated", "rental_id", rental.ID, "status", rental.Status, "end_date", rental.EndDate)
	return rental, nil
}

func (s *rentalService) DeleteRental(ctx context.Context, id int32) error {
	// Deletion never re-opens car availability, whatever the rental's status.
	if err := s.rentals.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("rental deleted", "rental_id", id)
	return nil
}
