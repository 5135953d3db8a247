package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pendingOrder() *Order {
	return &Order{
		PublicCode:    "ORD-a1b2c3d4",
		PaymentStatus: PaymentPending,
		Status:        OrderBooked,
	}
}

func TestApplyTransactionStatusSettlement(t *testing.T) {
	for _, txStatus := range []string{"settlement", "capture"} {
		order := pendingOrder()
		changed := order.ApplyTransactionStatus(txStatus)

		assert.True(t, changed, txStatus)
		assert.Equal(t, PaymentPaid, order.PaymentStatus)
		assert.Equal(t, OrderConfirmed, order.Status)
	}
}

func TestApplyTransactionStatusCancellation(t *testing.T) {
	for _, txStatus := range []string{"cancel", "deny", "expire"} {
		order := pendingOrder()
		changed := order.ApplyTransactionStatus(txStatus)

		assert.True(t, changed, txStatus)
		assert.Equal(t, PaymentCancelled, order.PaymentStatus)
		assert.Equal(t, OrderCancelled, order.Status)
	}
}

func TestApplyTransactionStatusPendingIsNoop(t *testing.T) {
	order := pendingOrder()
	changed := order.ApplyTransactionStatus("pending")

	assert.False(t, changed)
	assert.Equal(t, PaymentPending, order.PaymentStatus)
	assert.Equal(t, OrderBooked, order.Status)
}

func TestApplyTransactionStatusUnknownIsNoop(t *testing.T) {
	order := pendingOrder()
	assert.False(t, order.ApplyTransactionStatus("refund"))
	assert.False(t, order.ApplyTransactionStatus(""))
	assert.Equal(t, PaymentPending, order.PaymentStatus)
}

// Duplicate and late webhooks must never move an order out of a final
// payment state.
func TestApplyTransactionStatusTerminalGuard(t *testing.T) {
	paid := &Order{PaymentStatus: PaymentPaid, Status: OrderConfirmed}
	assert.False(t, paid.ApplyTransactionStatus("expire"))
	assert.Equal(t, PaymentPaid, paid.PaymentStatus)
	assert.Equal(t, OrderConfirmed, paid.Status)

	cancelled := &Order{PaymentStatus: PaymentCancelled, Status: OrderCancelled}
	assert.False(t, cancelled.ApplyTransactionStatus("settlement"))
	assert.Equal(t, PaymentCancelled, cancelled.PaymentStatus)

	refunded := &Order{PaymentStatus: PaymentRefunded, Status: OrderCancelled}
	assert.False(t, refunded.ApplyTransactionStatus("settlement"))
	assert.Equal(t, PaymentRefunded, refunded.PaymentStatus)
}

func TestPaymentTerminal(t *testing.T) {
	assert.False(t, (&Order{PaymentStatus: PaymentPending}).PaymentTerminal())
	assert.True(t, (&Order{PaymentStatus: PaymentPaid}).PaymentTerminal())
	assert.True(t, (&Order{PaymentStatus: PaymentCancelled}).PaymentTerminal())
	assert.True(t, (&Order{PaymentStatus: PaymentRefunded}).PaymentTerminal())
}

func TestItemQuantity(t *testing.T) {
	order := &Order{
		Items: []OrderItem{
			{ItemID: 3, Quantity: 2},
			{ItemID: 5, Quantity: 4},
		},
	}
	assert.Equal(t, 2, order.ItemQuantity(3))
	assert.Equal(t, 4, order.ItemQuantity(5))
	assert.Equal(t, 0, order.ItemQuantity(9))
}
