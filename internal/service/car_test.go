package service

import (
	"context"
	"testing"

	"fleetrent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCarService_AddCar(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		svc := NewCarService(carRepo)

		carRepo.On("Create", ctx, mock.AnythingOfType("*domain.Car")).Return(nil)

		car, err := svc.AddCar(ctx, CreateCarInput{Make: "Mazda", Model: "3", Year: 2023, DailyRate: domain.Money(4200)})
		assert.NoError(t, err)
		assert.True(t, car.Available, "a new car starts available")
	})

	t.Run("Validation", func(t *testing.T) {
		svc := NewCarService(new(MockCarRepo))

		_, err := svc.AddCar(ctx, CreateCarInput{Model: "3"})
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = svc.AddCar(ctx, CreateCarInput{Make: "Mazda"})
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = svc.AddCar(ctx, CreateCarInput{Make: "Mazda", Model: "3", DailyRate: domain.Money(-100)})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestCarService_RemoveCar(t *testing.T) {
	ctx := context.Background()

	carRepo := new(MockCarRepo)
	svc := NewCarService(carRepo)

	carRepo.On("Delete", ctx, int32(1)).Return(domain.ErrCarRented)
	assert.ErrorIs(t, svc.RemoveCar(ctx, 1), domain.ErrConflict)

	carRepo.On("Delete", ctx, int32(2)).Return(nil)
	assert.NoError(t, svc.RemoveCar(ctx, 2))
}
