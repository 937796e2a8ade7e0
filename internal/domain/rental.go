package domain

import "time"

type RentalStatus string

const (
	RentalStatusOngoing   RentalStatus = "ongoing"
	RentalStatusReturned  RentalStatus = "returned"
	RentalStatusCancelled RentalStatus = "cancelled"
)

// Valid reports whether s is one of the known rental statuses.
func (s RentalStatus) Valid() bool {
	switch s {
	case RentalStatusOngoing, RentalStatusReturned, RentalStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further status transition is allowed out of s.
func (s RentalStatus) Terminal() bool {
	return s == RentalStatusReturned || s == RentalStatusCancelled
}

// Rental is a rental agreement for a single car. Dates are calendar dates in
// yyyy-mm-dd form, interpreted as date-only (midnight UTC). TotalCost is kept
// in sync with daily_rate × inclusive days on every date-affecting mutation.
type Rental struct {
	ID         int32        `json:"id"`
	CarID      int32        `json:"car_id"`
	RenterName string       `json:"renter_name"`
	StartDate  string       `json:"start_date"`
	EndDate    string       `json:"end_date"`
	TotalCost  Money        `json:"total_cost"`
	Status     RentalStatus `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// RentalWithCar is a rental joined with the descriptive fields of its car,
// the shape returned by listings.
type RentalWithCar struct {
	Rental
	CarMake      string `json:"make"`
	CarModel     string `json:"model"`
	CarYear      int32  `json:"year,omitempty"`
	CarDailyRate Money  `json:"daily_rate"`
}
