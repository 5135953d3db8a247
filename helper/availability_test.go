package helper

import (
	"santaratrip/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func orderWithItem(itemID uint, quantity int) model.Order {
	return model.Order{
		Items: []model.OrderItem{{ItemID: itemID, Quantity: quantity}},
	}
}

func TestBookedQuantitySums(t *testing.T) {
	orders := []model.Order{
		orderWithItem(7, 2),
		orderWithItem(7, 1),
		orderWithItem(7, 3),
	}
	assert.Equal(t, 6, BookedQuantity(orders, 7))
}

func TestBookedQuantityIgnoresOtherItems(t *testing.T) {
	orders := []model.Order{
		orderWithItem(7, 2),
		orderWithItem(8, 5),
	}
	assert.Equal(t, 2, BookedQuantity(orders, 7))
	assert.Equal(t, 5, BookedQuantity(orders, 8))
	assert.Equal(t, 0, BookedQuantity(orders, 9))
}

func TestBookedQuantityEmpty(t *testing.T) {
	assert.Equal(t, 0, BookedQuantity(nil, 7))
	assert.Equal(t, 0, BookedQuantity([]model.Order{}, 7))
}
