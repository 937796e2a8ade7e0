// Package pricing holds the pure date and cost math for rental agreements.
package pricing

import (
	"time"

	"fleetrent-backend/internal/domain"
)

// DateLayout is the calendar-date wire format. Dates carry no clock or zone;
// both ends are parsed at midnight UTC so the day count cannot drift across
// caller time zones.
const DateLayout = "2006-01-02"

// InclusiveDays converts a (start, end) calendar-date pair into a day count
// that includes both endpoints: same start and end is 1 day.
//
// It returns 0 when either date fails to parse or when end is strictly before
// start. Zero is a sentinel for "invalid range", not an error value; callers
// must treat it as a rejection condition.
func InclusiveDays(start, end string) int {
	s, err := time.ParseInLocation(DateLayout, start, time.UTC)
	if err != nil {
		return 0
	}
	e, err := time.ParseInLocation(DateLayout, end, time.UTC)
	if err != nil {
		return 0
	}
	if e.Before(s) {
		return 0
	}
	days := int(e.Sub(s).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days
}

// RentalCost is the flat pricing rule: daily rate × inclusive day count.
// Rates are cents, so the product is exact at the cent.
func RentalCost(rate domain.Money, days int) domain.Money {
	return rate * domain.Money(days)
}
