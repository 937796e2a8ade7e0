package domain

import (
	"errors"
	"fmt"
)

// Error categories. The HTTP boundary maps these with errors.Is: validation
// and conflict failures answer 400, not-found answers 404, anything else 500.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

var (
	ErrCarNotFound    = fmt.Errorf("car %w", ErrNotFound)
	ErrRentalNotFound = fmt.Errorf("rental %w", ErrNotFound)

	// ErrCarUnavailable is returned when a rental is requested for a car that
	// is already held by an ongoing rental.
	ErrCarUnavailable = fmt.Errorf("%w: car is not available", ErrConflict)

	// ErrCarRented rejects deletion of a car still referenced by rentals.
	ErrCarRented = fmt.Errorf("%w: car is referenced by rentals", ErrConflict)

	ErrInvalidDateRange = fmt.Errorf("%w: invalid dates", ErrValidation)

	// ErrInvalidTransition rejects status changes out of a terminal state.
	ErrInvalidTransition = fmt.Errorf("%w: rental is no longer ongoing", ErrConflict)
)

// MissingFieldError builds a validation error naming the absent field.
func MissingFieldError(field string) error {
	return fmt.Errorf("%w: %s is required", ErrValidation, field)
}
