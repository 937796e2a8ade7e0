package service

import (
	"context"
	"fmt"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/repository"
)

type carService struct {
	cars repository.CarRepository
}

func NewCarService(cars repository.CarRepository) CarService {
	return &carService{cars: cars}
}

func (s *carService) ListCars(ctx context.Context) ([]domain.Car, error) {
	return s.cars.List(ctx)
}

func (s *carService) AddCar(ctx context.Context, in CreateCarInput) (*domain.Car, error) {
	if in.Make == "" {
		return nil, domain.MissingFieldError("make")
	}
	if in.Model == "" {
		return nil, domain.MissingFieldError("model")
	}
	if in.DailyRate < 0 {
		return nil, fmt.Errorf("%w: daily_rate must not be negative", domain.ErrValidation)
	}

	car := &domain.Car{
		Make:      in.Make,
		Model:     in.Model,
		Year:      in.Year,
		DailyRate: in.DailyRate,
		Available: true,
	}
	if err := s.cars.Create(ctx, car); err != nil {
		return nil, err
	}
	logger.Info("car added", "car_id", car.ID, "make", car.Make, "model", car.Model)
	return car, nil
}

func (s *carService) RemoveCar(ctx context.Context, id int32) error {
	if err := s.cars.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("car removed", "car_id", id)
	return nil
}
