package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "35.00", Money(3500).String())
	assert.Equal(t, "37.50", Money(3750).String())
	assert.Equal(t, "0.05", Money(5).String())
	assert.Equal(t, "-12.30", Money(-1230).String())
}

func TestParseMoney(t *testing.T) {
	t.Run("Two decimal places", func(t *testing.T) {
		m, err := ParseMoney("37.50")
		assert.NoError(t, err)
		assert.Equal(t, Money(3750), m)
	})

	t.Run("Whole number", func(t *testing.T) {
		m, err := ParseMoney("30")
		assert.NoError(t, err)
		assert.Equal(t, Money(3000), m)
	})

	t.Run("Single decimal place", func(t *testing.T) {
		m, err := ParseMoney("37.5")
		assert.NoError(t, err)
		assert.Equal(t, Money(3750), m)
	})

	t.Run("Sub-cent precision rejected", func(t *testing.T) {
		_, err := ParseMoney("37.505")
		assert.Error(t, err)
	})

	t.Run("Garbage rejected", func(t *testing.T) {
		_, err := ParseMoney("thirty")
		assert.Error(t, err)
	})
}

func TestMoneyJSON(t *testing.T) {
	out, err := json.Marshal(Money(10500))
	assert.NoError(t, err)
	assert.Equal(t, `"105.00"`, string(out))

	var m Money
	assert.NoError(t, json.Unmarshal([]byte(`"35.00"`), &m))
	assert.Equal(t, Money(3500), m)

	assert.NoError(t, json.Unmarshal([]byte(`35`), &m))
	assert.Equal(t, Money(3500), m)
}
