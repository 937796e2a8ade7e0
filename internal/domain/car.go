package domain

import "time"

// Car is a fleet vehicle available for rent. Availability is owned by the
// store: a car is unavailable exactly while one ongoing rental references it.
type Car struct {
	ID        int32     `json:"id"`
	Make      string    `json:"make"`
	Model     string    `json:"model"`
	Year      int32     `json:"year,omitempty"`
	DailyRate Money     `json:"daily_rate"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
}
