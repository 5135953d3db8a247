package helper

import (
	"errors"
	"math"
	"santaratrip/model"
	"time"
)

// DurationDays is the number of nights between check-in and check-out,
// rounded up to whole days. Zero or negative for an inverted range.
func DurationDays(startDate, endDate time.Time) int {
	return int(math.Ceil(endDate.Sub(startDate).Hours() / 24))
}

// CalculateTotalPrice derives the order total from the unit price
// captured at booking time. Hotel orders pay per room per night;
// destination and event orders pay per ticket.
func CalculateTotalPrice(orderType string, unitPrice int64, quantity int, startDate, endDate time.Time) (int64, error) {
	if quantity <= 0 {
		return 0, errors.New("quantity must be positive")
	}
	if orderType == model.OrderTypeHotel {
		days := DurationDays(startDate, endDate)
		if days <= 0 {
			return 0, errors.New("check-in date must be before check-out date")
		}
		return unitPrice * int64(quantity) * int64(days), nil
	}
	return unitPrice * int64(quantity), nil
}
