package helper

import (
	"santaratrip/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestDurationDays(t *testing.T) {
	assert.Equal(t, 1, DurationDays(date("2026-09-01"), date("2026-09-02")))
	assert.Equal(t, 3, DurationDays(date("2026-09-01"), date("2026-09-04")))
	assert.Equal(t, 0, DurationDays(date("2026-09-01"), date("2026-09-01")))
	assert.Equal(t, -1, DurationDays(date("2026-09-02"), date("2026-09-01")))
}

func TestDurationDaysRoundsUpPartialDays(t *testing.T) {
	checkIn := date("2026-09-01").Add(14 * time.Hour)
	checkOut := date("2026-09-03").Add(12 * time.Hour)
	assert.Equal(t, 2, DurationDays(checkIn, checkOut))
}

func TestCalculateTotalPriceHotel(t *testing.T) {
	// 2 rooms x 3 nights x 500_000
	total, err := CalculateTotalPrice(model.OrderTypeHotel, 500_000, 2, date("2026-09-01"), date("2026-09-04"))
	assert.NoError(t, err)
	assert.Equal(t, int64(3_000_000), total)
}

func TestCalculateTotalPriceSingleNight(t *testing.T) {
	total, err := CalculateTotalPrice(model.OrderTypeHotel, 750_000, 1, date("2026-09-01"), date("2026-09-02"))
	assert.NoError(t, err)
	assert.Equal(t, int64(750_000), total)
}

func TestCalculateTotalPriceTickets(t *testing.T) {
	visit := date("2026-09-10")

	total, err := CalculateTotalPrice(model.OrderTypeDestination, 150_000, 4, visit, visit)
	assert.NoError(t, err)
	assert.Equal(t, int64(600_000), total)

	total, err = CalculateTotalPrice(model.OrderTypeEvent, 250_000, 2, visit, visit)
	assert.NoError(t, err)
	assert.Equal(t, int64(500_000), total)
}

func TestCalculateTotalPriceRejectsInvertedRange(t *testing.T) {
	_, err := CalculateTotalPrice(model.OrderTypeHotel, 500_000, 1, date("2026-09-04"), date("2026-09-01"))
	assert.Error(t, err)

	_, err = CalculateTotalPrice(model.OrderTypeHotel, 500_000, 1, date("2026-09-01"), date("2026-09-01"))
	assert.Error(t, err)
}

func TestCalculateTotalPriceRejectsBadQuantity(t *testing.T) {
	_, err := CalculateTotalPrice(model.OrderTypeEvent, 250_000, 0, date("2026-09-10"), date("2026-09-10"))
	assert.Error(t, err)

	_, err = CalculateTotalPrice(model.OrderTypeEvent, 250_000, -3, date("2026-09-10"), date("2026-09-10"))
	assert.Error(t, err)
}
