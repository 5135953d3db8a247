package model

import "time"

const (
	OrderTypeDestination = "destination"
	OrderTypeHotel       = "hotel"
	OrderTypeEvent       = "event"
)

const (
	PaymentPending   = "pending"
	PaymentPaid      = "paid"
	PaymentCancelled = "cancelled"
	PaymentRefunded  = "refunded"
)

const (
	OrderBooked    = "booked"
	OrderConfirmed = "confirmed"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

type OrderItem struct {
	DTO
	OrderID  uint   `json:"orderId"`
	ItemType string `json:"itemType"` // destination, hotel, room, event
	ItemID   uint   `json:"itemId"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"` // unit price captured at booking time
}

type Order struct {
	DTO
	PublicCode    string      `gorm:"unique;size:20" json:"publicCode"` // ORD-xxxxxxxx, also the gateway transaction key
	UserID        uint        `json:"userId"`
	User          *User       `json:"user,omitempty"`
	OrderType     string      `json:"orderType"` // destination, hotel, event
	Items         []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	TotalPrice    int64       `json:"totalPrice"`
	PaymentStatus string      `gorm:"default:pending" json:"paymentStatus"`
	PaymentMethod string      `json:"paymentMethod"` // transfer, credit_card, e-wallet
	PaymentUrl    string      `json:"paymentUrl,omitempty"`
	Status        string      `gorm:"default:booked" json:"status"`
	BookingDate   time.Time   `json:"bookingDate"`
	StartDate     time.Time   `json:"startDate"`
	EndDate       time.Time   `json:"endDate"`
	Notes         string      `json:"notes,omitempty"`
}

// PaymentTerminal reports whether the payment reached a final state.
// Terminal orders are never transitioned again, whatever the gateway says.
func (o *Order) PaymentTerminal() bool {
	return o.PaymentStatus == PaymentPaid ||
		o.PaymentStatus == PaymentCancelled ||
		o.PaymentStatus == PaymentRefunded
}

// ApplyTransactionStatus maps a Midtrans transaction_status onto the order
// and reports whether anything changed.
//
//	settlement, capture   -> paid / confirmed
//	cancel, deny, expire  -> cancelled / cancelled
//	pending               -> unchanged
func (o *Order) ApplyTransactionStatus(txStatus string) bool {
	if o.PaymentTerminal() {
		return false
	}
	switch txStatus {
	case "settlement", "capture":
		o.PaymentStatus = PaymentPaid
		o.Status = OrderConfirmed
		return true
	case "cancel", "deny", "expire":
		o.PaymentStatus = PaymentCancelled
		o.Status = OrderCancelled
		return true
	}
	return false
}

// ItemQuantity returns the booked quantity of the given catalog item
// in this order, 0 if the item is not part of it.
func (o *Order) ItemQuantity(itemID uint) int {
	for _, item := range o.Items {
		if item.ItemID == itemID {
			return item.Quantity
		}
	}
	return 0
}
