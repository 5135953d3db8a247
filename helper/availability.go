package helper

import (
	"santaratrip/model"
	"time"

	"gorm.io/gorm"
)

// overlappingOrders returns every non-cancelled order holding the given
// catalog item over a date range. The classic interval predicate:
// existing.start <= requested.end AND existing.end >= requested.start.
func overlappingOrders(tx *gorm.DB, itemType string, itemID uint, startDate, endDate time.Time) ([]model.Order, error) {
	var orders []model.Order
	err := tx.
		Preload("Items").
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Where("order_items.item_type = ? AND order_items.item_id = ?", itemType, itemID).
		Where("orders.status <> ? AND orders.payment_status <> ?", model.OrderCancelled, model.PaymentCancelled).
		Where("orders.start_date <= ? AND orders.end_date >= ?", endDate, startDate).
		Group("orders.id").
		Find(&orders).Error
	return orders, err
}

// BookedQuantity sums the units of one catalog item across orders.
func BookedQuantity(orders []model.Order, itemID uint) int {
	total := 0
	for _, order := range orders {
		total += order.ItemQuantity(itemID)
	}
	return total
}

// CountBookedRooms returns how many units of a room type are already
// held by bookings overlapping [startDate, endDate].
func CountBookedRooms(tx *gorm.DB, roomID uint, startDate, endDate time.Time) (int, error) {
	orders, err := overlappingOrders(tx, "room", roomID, startDate, endDate)
	if err != nil {
		return 0, err
	}
	return BookedQuantity(orders, roomID), nil
}

// CountBookedEventTickets returns the tickets already sold for an event
// on one visit date. Events are single-day, so only exact-date orders count.
func CountBookedEventTickets(tx *gorm.DB, eventID uint, visitDate time.Time) (int, error) {
	var orders []model.Order
	err := tx.
		Preload("Items").
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Where("order_items.item_type = ? AND order_items.item_id = ?", "event", eventID).
		Where("orders.status <> ? AND orders.payment_status <> ?", model.OrderCancelled, model.PaymentCancelled).
		Where("orders.start_date = ?", visitDate).
		Group("orders.id").
		Find(&orders).Error
	if err != nil {
		return 0, err
	}
	return BookedQuantity(orders, eventID), nil
}
