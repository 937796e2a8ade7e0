package domain

// RentalStats is the point-in-time aggregate computed by the store.
// Revenue sums total_cost over ongoing and returned rentals; cancelled
// rentals are excluded.
type RentalStats struct {
	TotalRentals  int64
	ActiveRentals int64
	Revenue       Money
}

// MetricsSnapshot is the /metrics response shape.
type MetricsSnapshot struct {
	UptimeSeconds int64           `json:"uptime_seconds"`
	Rentals       RentalCounts    `json:"rentals"`
	Revenue       RevenueSnapshot `json:"revenue"`
	Requests      RequestCounts   `json:"requests"`
}

// RentalCounts derives completed as total − active, which counts cancelled
// rentals as completed even though revenue excludes them.
type RentalCounts struct {
	Total     int64 `json:"total"`
	Active    int64 `json:"active"`
	Completed int64 `json:"completed"`
}

type RevenueSnapshot struct {
	Total    Money  `json:"total"`
	Currency string `json:"currency"`
}

type RequestCounts struct {
	Total int64 `json:"total"`
}
