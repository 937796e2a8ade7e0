package pricing

import (
	"testing"

	"fleetrent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestInclusiveDays(t *testing.T) {
	t.Run("Same day counts as one", func(t *testing.T) {
		assert.Equal(t, 1, InclusiveDays("2025-12-09", "2025-12-09"))
	})

	t.Run("Both endpoints included", func(t *testing.T) {
		assert.Equal(t, 3, InclusiveDays("2025-12-09", "2025-12-11"))
	})

	t.Run("Cross month boundary", func(t *testing.T) {
		assert.Equal(t, 12, InclusiveDays("2024-01-25", "2024-02-05"))
	})

	t.Run("Cross year boundary", func(t *testing.T) {
		assert.Equal(t, 17, InclusiveDays("2023-12-25", "2024-01-10"))
	})

	t.Run("Leap day", func(t *testing.T) {
		assert.Equal(t, 2, InclusiveDays("2024-02-28", "2024-02-29"))
	})

	t.Run("Reversed range is rejected", func(t *testing.T) {
		assert.Equal(t, 0, InclusiveDays("2025-01-05", "2025-01-01"))
	})

	t.Run("Unparsable dates are rejected", func(t *testing.T) {
		assert.Equal(t, 0, InclusiveDays("not-a-date", "2025-01-01"))
		assert.Equal(t, 0, InclusiveDays("2025-01-01", "01/05/2025"))
		assert.Equal(t, 0, InclusiveDays("", ""))
		assert.Equal(t, 0, InclusiveDays("2025-13-40", "2025-14-01"))
	})
}

func TestRentalCost(t *testing.T) {
	t.Run("Rate 35.00 over three days", func(t *testing.T) {
		days := InclusiveDays("2025-01-01", "2025-01-03")
		assert.Equal(t, 3, days)
		cost := RentalCost(domain.Money(3500), days)
		assert.Equal(t, "105.00", cost.String())
	})

	t.Run("Rate 37.50 over five days", func(t *testing.T) {
		days := InclusiveDays("2025-01-01", "2025-01-05")
		assert.Equal(t, 5, days)
		cost := RentalCost(domain.Money(3750), days)
		assert.Equal(t, "187.50", cost.String())
	})

	t.Run("Single day charges one full day", func(t *testing.T) {
		cost := RentalCost(domain.Money(3000), InclusiveDays("2025-06-01", "2025-06-01"))
		assert.Equal(t, "30.00", cost.String())
	})
}
