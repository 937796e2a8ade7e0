package service

import (
	"context"
	"testing"

	"fleetrent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func availableCar() *domain.Car {
	return &domain.Car{
		ID:        1,
		Make:      "Toyota",
		Model:     "Corolla",
		Year:      2022,
		DailyRate: domain.Money(3500),
		Available: true,
	}
}

func TestRentalService_CreateRental(t *testing.T) {
	ctx := context.Background()

	input := CreateRentalInput{
		CarID:      1,
		RenterName: "Alice",
		StartDate:  "2025-01-01",
		EndDate:    "2025-01-03",
	}

	t.Run("Success", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		carRepo := new(MockCarRepo)
		svc := NewRentalService(rentalRepo, carRepo)

		carRepo.On("GetByID", ctx, int32(1)).Return(availableCar(), nil)
		rentalRepo.On("Create", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)

		rt, err := svc.CreateRental(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusOngoing, rt.Status)
		assert.Equal(t, "105.00", rt.TotalCost.String()) // 3 inclusive days * 35.00
	})

	t.Run("Missing fields", func(t *testing.T) {
		svc := NewRentalService(new(MockRentalRepo), new(MockCarRepo))

		for _, in := range []CreateRentalInput{
			{RenterName: "Alice", StartDate: "2025-01-01", EndDate: "2025-01-03"},
			{CarID: 1, StartDate: "2025-01-01", EndDate: "2025-01-03"},
			{CarID: 1, RenterName: "Alice", EndDate: "2025-01-03"},
			{CarID: 1, RenterName: "Alice", StartDate: "2025-01-01"},
		} {
			_, err := svc.CreateRental(ctx, in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		}
	})

	t.Run("Unknown car", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		svc := NewRentalService(new(MockRentalRepo), carRepo)

		carRepo.On("GetByID", ctx, int32(1)).Return(nil, domain.ErrCarNotFound)

		_, err := svc.CreateRental(ctx, input)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Unavailable car", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		svc := NewRentalService(new(MockRentalRepo), carRepo)

		car := availableCar()
		car.Available = false
		carRepo.On("GetByID", ctx, int32(1)).Return(car, nil)

		_, err := svc.CreateRental(ctx, input)
		assert.ErrorIs(t, err, domain.ErrCarUnavailable)
	})

	t.Run("Invalid date range", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		svc := NewRentalService(new(MockRentalRepo), carRepo)

		carRepo.On("GetByID", ctx, int32(1)).Return(availableCar(), nil)

		reversed := input
		reversed.StartDate, reversed.EndDate = reversed.EndDate, reversed.StartDate
		_, err := svc.CreateRental(ctx, reversed)
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

		garbled := input
		garbled.EndDate = "soon"
		_, err = svc.CreateRental(ctx, garbled)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func ongoingRental() *domain.Rental {
	return &domain.Rental{
		ID:         7,
		CarID:      1,
		RenterName: "Alice",
		StartDate:  "2025-01-01",
		EndDate:    "2025-01-03",
		TotalCost:  domain.Money(10500),
		Status:     domain.RentalStatusOngoing,
	}
}

func strptr(s string) *string { return &s }

func TestRentalService_UpdateRental(t *testing.T) {
	ctx := context.Background()

	t.Run("Extend recomputes cost", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		carRepo := new(MockCarRepo)
		svc := NewRentalService(rentalRepo, carRepo)

		rentalRepo.On("GetByID", ctx, int32(7)).Return(ongoingRental(), nil)
		carRepo.On("GetByID", ctx, int32(1)).Return(availableCar(), nil)
		rentalRepo.On("Update", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)

		rt, err := svc.UpdateRental(ctx, 7, UpdateRentalInput{EndDate: strptr("2025-01-05")})
		assert.NoError(t, err)
		assert.Equal(t, "2025-01-05", rt.EndDate)
		assert.Equal(t, "175.00", rt.TotalCost.String()) // 5 inclusive days * 35.00
		assert.Equal(t, domain.RentalStatusOngoing, rt.Status)
	})

	t.Run("Invalid end date", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		svc := NewRentalService(rentalRepo, new(MockCarRepo))

		rentalRepo.On("GetByID", ctx, int32(7)).Return(ongoingRental(), nil)

		_, err := svc.UpdateRental(ctx, 7, UpdateRentalInput{EndDate: strptr("2024-12-01")})
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	})

	t.Run("Return releases the car", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		carRepo := new(MockCarRepo)
		svc := NewRentalService(rentalRepo, carRepo)

		rentalRepo.On("GetByID", ctx, int32(7)).Return(ongoingRental(), nil)
		carRepo.On("SetAvailability", ctx, int32(1), true).Return(nil)
		rentalRepo.On("Update", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)

		rt, err := svc.UpdateRental(ctx, 7, UpdateRentalInput{Status: strptr("returned")})
		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusReturned, rt.Status)
		carRepo.AssertCalled(t, "SetAvailability", ctx, int32(1), true)
	})

	t.Run("Cancel leaves availability alone", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		carRepo := new(MockCarRepo)
		svc := NewRentalService(rentalRepo, carRepo)

		rentalRepo.On("GetByID", ctx, int32(7)).Return(ongoingRental(), nil)
		rentalRepo.On("Update", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)

		rt, err := svc.UpdateRental(ctx, 7, UpdateRentalInput{Status: strptr("cancelled")})
		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusCancelled, rt.Status)
		carRepo.AssertNotCalled(t, "SetAvailability", ctx, int32(1), true)
	})

	t.Run("No transition out of a terminal status", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		svc := NewRentalService(rentalRepo, new(MockCarRepo))

		returned := ongoingRental()
		returned.Status = domain.RentalStatusReturned
		rentalRepo.On("GetByID", ctx, int32(7)).Return(returned, nil)

		_, err := svc.UpdateRental(ctx, 7, UpdateRentalInput{Status: strptr("cancelled")})
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("Unknown status rejected", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		svc := NewRentalService(rentalRepo, new(MockCarRepo))

		rentalRepo.On("GetByID", ctx, int32(7)).Return(ongoingRental(), nil)

		_, err := svc.UpdateRental(ctx, 7, UpdateRentalInput{Status: strptr("lost")})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Unknown rental", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		svc := NewRentalService(rentalRepo, new(MockCarRepo))

		rentalRepo.On("GetByID", ctx, int32(9)).Return(nil, domain.ErrRentalNotFound)

		_, err := svc.UpdateRental(ctx, 9, UpdateRentalInput{Status: strptr("returned")})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRentalService_DeleteRental(t *testing.T) {
	ctx := context.Background()

	t.Run("Never touches availability", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		carRepo := new(MockCarRepo)
		svc := NewRentalService(rentalRepo, carRepo)

		rentalRepo.On("Delete", ctx, int32(7)).Return(nil)

		assert.NoError(t, svc.DeleteRental(ctx, 7))
		carRepo.AssertNotCalled(t, "SetAvailability", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown rental", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		svc := NewRentalService(rentalRepo, new(MockCarRepo))

		rentalRepo.On("Delete", ctx, int32(9)).Return(domain.ErrRentalNotFound)

		assert.ErrorIs(t, svc.DeleteRental(ctx, 9), domain.ErrNotFound)
	})
}
