package repository

import "fleetrent-backend/internal/domain"

// SeedCars is the fixed initial fleet. The postgres store inserts it on first
// run (empty cars table); the memory store seeds it on construction, so a
// fallback process serves the same cars a fresh database would.
func SeedCars() []domain.Car {
	return []domain.Car{
		{Make: "Toyota", Model: "Corolla", Year: 2022, DailyRate: domain.Money(3500), Available: true},
		{Make: "Honda", Model: "Civic", Year: 2021, DailyRate: domain.Money(3750), Available: true},
		{Make: "Ford", Model: "Focus", Year: 2020, DailyRate: domain.Money(3000), Available: true},
	}
}
