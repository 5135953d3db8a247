package handler

import (
	"errors"
	"fmt"
	"log"
	"santaratrip/constants"
	"santaratrip/database"
	"santaratrip/helper"
	"santaratrip/model"
	"santaratrip/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const bookingDateLayout = "2006-01-02"

// parseBookingDate accepts plain dates and RFC3339 timestamps, but a
// booking date is always a calendar day: the time of day is dropped so
// pricing, capacity queries, and date equality all see midnight UTC.
func parseBookingDate(s string) (time.Time, error) {
	t, err := time.Parse(bookingDateLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, err
		}
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func newOrderCode() string {
	return "ORD-" + uuid.New().String()[:8]
}

// formatOrder shapes an order for JSON responses. Destination and event
// orders are single-day, so the stored range collapses back to visitDate.
func formatOrder(order *model.Order) fiber.Map {
	out := fiber.Map{
		"id":            order.ID,
		"publicCode":    order.PublicCode,
		"userId":        order.UserID,
		"orderType":     order.OrderType,
		"items":         order.Items,
		"totalPrice":    order.TotalPrice,
		"paymentStatus": order.PaymentStatus,
		"paymentMethod": order.PaymentMethod,
		"paymentUrl":    order.PaymentUrl,
		"status":        order.Status,
		"bookingDate":   order.BookingDate,
		"notes":         order.Notes,
		"createdAt":     order.CreatedAt,
		"updatedAt":     order.UpdatedAt,
	}
	if order.OrderType == model.OrderTypeHotel {
		out["startDate"] = order.StartDate
		out["endDate"] = order.EndDate
	} else {
		out["visitDate"] = order.StartDate
	}
	return out
}

// itemNameForOrder resolves a human-readable name for the first line item,
// used on gateway receipts and e-tickets.
func itemNameForOrder(order *model.Order) string {
	if len(order.Items) == 0 {
		return "SantaraTrip Booking"
	}
	db := database.DB
	item := order.Items[0]
	switch item.ItemType {
	case "room":
		var room model.Room
		if err := db.Preload("Hotel").First(&room, item.ItemID).Error; err == nil {
			if room.Hotel != nil {
				return room.Hotel.Name + " - " + room.Type
			}
			return room.Name + " - " + room.Type
		}
	case "destination":
		var destination model.Destination
		if err := db.First(&destination, item.ItemID).Error; err == nil {
			return destination.Name
		}
	case "event":
		var event model.Event
		if err := db.First(&event, item.ItemID).Error; err == nil {
			return event.Name
		}
	}
	return "SantaraTrip Booking"
}

// generatePaymentToken asks the gateway for a checkout session and stores
// the redirect URL on the order. An already-stored URL is reused so repeat
// calls never open a second gateway transaction.
func generatePaymentToken(order *model.Order, user *model.User, itemName string) (string, error) {
	midtrans := NewMidtrans()

	snapReq := midtrans.BuildSnapRequest(order, user, itemName)
	snapResp, err := midtrans.CreateTransaction(snapReq)
	if err != nil {
		return "", err
	}

	if snapResp.RedirectURL != "" {
		order.PaymentUrl = snapResp.RedirectURL
		if err := database.DB.Model(order).Update("payment_url", snapResp.RedirectURL).Error; err != nil {
			log.Printf("Failed to store payment URL for order %s: %v", order.PublicCode, err)
		}
	}

	return snapResp.Token, nil
}

func sendTicketEmailForOrder(order *model.Order) {
	if order.User == nil {
		var user model.User
		if err := database.DB.First(&user, order.UserID).Error; err != nil {
			log.Printf("Cannot send ticket for order %s, user %d missing: %v", order.PublicCode, order.UserID, err)
			return
		}
		order.User = &user
	}

	quantity := 0
	if len(order.Items) > 0 {
		quantity = order.Items[0].Quantity
	}

	utils.SendTicketEmail(order.User.Email, utils.TicketEmailData{
		TicketNumber:  helper.TicketNumber(order.PublicCode, time.Now()),
		CustomerName:  order.User.Name,
		CustomerEmail: order.User.Email,
		OrderType:     order.OrderType,
		ItemName:      itemNameForOrder(order),
		StartDate:     order.StartDate.Format("02/01/2006"),
		EndDate:       order.EndDate.Format("02/01/2006"),
		Quantity:      quantity,
		TotalPrice:    order.TotalPrice,
	})
}

// bookingResponse finishes a booking: confirmation email, payment token,
// and the success envelope. A gateway failure is reported inside the 201
// body, never as a failed booking.
func bookingResponse(c *fiber.Ctx, order *model.Order, user *model.User, itemName string) error {
	invoiceNumber := helper.InvoiceNumber(order.PublicCode, time.Now())

	quantity := 0
	if len(order.Items) > 0 {
		quantity = order.Items[0].Quantity
	}
	utils.SendBookingConfirmationEmail(user.Email, utils.BookingConfirmationData{
		InvoiceNumber: invoiceNumber,
		OrderType:     order.OrderType,
		ItemName:      itemName,
		StartDate:     order.StartDate.Format("02/01/2006"),
		EndDate:       order.EndDate.Format("02/01/2006"),
		Quantity:      quantity,
		TotalPrice:    order.TotalPrice,
		PaymentMethod: order.PaymentMethod,
	})

	paymentToken, err := generatePaymentToken(order, user, itemName)
	if err != nil {
		log.Printf("Failed to create payment token for order %s: %v", order.PublicCode, err)
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success":       true,
			"data":          formatOrder(order),
			"invoiceNumber": invoiceNumber,
			"error":         constants.PAYMENT_TOKEN_FAILED,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":       true,
		"data":          formatOrder(order),
		"invoiceNumber": invoiceNumber,
		"paymentToken":  paymentToken,
	})
}

// POST /api/v1/order/hotel
func BookHotel(c *fiber.Ctx) error {
	input, ok := c.Locals("bookHotelInput").(model.BookHotelInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing validated input"))
	}

	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	startDate, err := parseBookingDate(input.StartDate)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE_FORMAT, err)
	}
	endDate, err := parseBookingDate(input.EndDate)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE_FORMAT, err)
	}
	if helper.DurationDays(startDate, endDate) <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE_RANGE, nil)
	}

	db := database.DB

	var hotel model.Hotel
	if err := db.First(&hotel, input.HotelId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.HOTEL_NOT_FOUND, err)
	}

	var order model.Order
	var itemName string

	// Lock the room row for the whole check-then-reserve step so two
	// concurrent bookings cannot both observe free capacity.
	txErr := db.Transaction(func(tx *gorm.DB) error {
		var room model.Room
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND hotel_id = ?", input.RoomId, hotel.ID).
			First(&room).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, constants.ROOM_NOT_FOUND)
		}
		if !room.Available {
			return fiber.NewError(fiber.StatusBadRequest, constants.ROOM_NOT_AVAILABLE)
		}

		booked, err := helper.CountBookedRooms(tx, room.ID, startDate, endDate)
		if err != nil {
			return err
		}
		if room.Capacity-booked < input.Quantity {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Only %d rooms available for this period", room.Capacity-booked))
		}

		totalPrice, err := helper.CalculateTotalPrice(model.OrderTypeHotel, room.Price, input.Quantity, startDate, endDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		order = model.Order{
			PublicCode:    newOrderCode(),
			UserID:        user.ID,
			OrderType:     model.OrderTypeHotel,
			Items: []model.OrderItem{{
				ItemType: "room",
				ItemID:   room.ID,
				Quantity: input.Quantity,
				Price:    room.Price,
			}},
			TotalPrice:    totalPrice,
			PaymentStatus: model.PaymentPending,
			PaymentMethod: input.PaymentMethod,
			Status:        model.OrderBooked,
			BookingDate:   time.Now(),
			StartDate:     startDate,
			EndDate:       endDate,
			Notes:         input.Notes,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		itemName = hotel.Name + " - " + room.Type
		return nil
	})
	if txErr != nil {
		var fiberErr *fiber.Error
		if errors.As(txErr, &fiberErr) {
			return utils.ErrorResponse(c, fiberErr.Code, fiberErr.Message, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, txErr)
	}

	BroadcastRoomAvailability(input.RoomId, startDate, endDate)

	return bookingResponse(c, &order, &user, itemName)
}

// POST /api/v1/order/wisata
func BookWisata(c *fiber.Ctx) error {
	input, ok := c.Locals("bookWisataInput").(model.BookWisataInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing validated input"))
	}

	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	visitDate, err := parseBookingDate(input.VisitDate)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE_FORMAT, err)
	}

	db := database.DB

	var destination model.Destination
	if err := db.First(&destination, input.DestinationId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DESTINATION_NOT_FOUND, err)
	}

	// Destinations have no capacity ceiling, any quantity is accepted.
	totalPrice, err := helper.CalculateTotalPrice(model.OrderTypeDestination, destination.Price, input.Quantity, visitDate, visitDate)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	order := model.Order{
		PublicCode:    newOrderCode(),
		UserID:        user.ID,
		OrderType:     model.OrderTypeDestination,
		Items: []model.OrderItem{{
			ItemType: "destination",
			ItemID:   destination.ID,
			Quantity: input.Quantity,
			Price:    destination.Price,
		}},
		TotalPrice:    totalPrice,
		PaymentStatus: model.PaymentPending,
		PaymentMethod: input.PaymentMethod,
		Status:        model.OrderBooked,
		BookingDate:   time.Now(),
		StartDate:     visitDate,
		EndDate:       visitDate,
		Notes:         input.Notes,
	}
	if err := db.Create(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return bookingResponse(c, &order, &user, destination.Name)
}

// POST /api/v1/order/event
func BookEvent(c *fiber.Ctx) error {
	input, ok := c.Locals("bookEventInput").(model.BookEventInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing validated input"))
	}

	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	visitDate, err := parseBookingDate(input.VisitDate)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE_FORMAT, err)
	}

	db := database.DB

	var order model.Order
	var eventName string

	txErr := db.Transaction(func(tx *gorm.DB) error {
		var event model.Event
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&event, input.EventId).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, constants.EVENT_NOT_FOUND)
		}
		if event.Status != model.EventActive {
			return fiber.NewError(fiber.StatusBadRequest, constants.EVENT_NOT_BOOKABLE)
		}
		if visitDate.Before(event.StartDate) || visitDate.After(event.EndDate) {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Visit date must be between %s and %s",
					event.StartDate.Format(bookingDateLayout), event.EndDate.Format(bookingDateLayout)))
		}

		booked, err := helper.CountBookedEventTickets(tx, event.ID, visitDate)
		if err != nil {
			return err
		}
		if booked+input.Quantity > event.Capacity {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Only %d tickets available for this date", event.Capacity-booked))
		}

		totalPrice, err := helper.CalculateTotalPrice(model.OrderTypeEvent, event.Price, input.Quantity, visitDate, visitDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		order = model.Order{
			PublicCode:    newOrderCode(),
			UserID:        user.ID,
			OrderType:     model.OrderTypeEvent,
			Items: []model.OrderItem{{
				ItemType: "event",
				ItemID:   event.ID,
				Quantity: input.Quantity,
				Price:    event.Price,
			}},
			TotalPrice:    totalPrice,
			PaymentStatus: model.PaymentPending,
			PaymentMethod: input.PaymentMethod,
			Status:        model.OrderBooked,
			BookingDate:   time.Now(),
			StartDate:     visitDate,
			EndDate:       visitDate,
			Notes:         input.Notes,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		eventName = event.Name
		return nil
	})
	if txErr != nil {
		var fiberErr *fiber.Error
		if errors.As(txErr, &fiberErr) {
			return utils.ErrorResponse(c, fiberErr.Code, fiberErr.Message, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, txErr)
	}

	return bookingResponse(c, &order, &user, eventName)
}

// GET /api/v1/order/user
func GetMyOrders(c *fiber.Ctx) error {
	claim, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	var orders []model.Order
	if err := database.DB.
		Preload("Items").
		Where("user_id = ?", claim.UserId).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	formatted := make([]fiber.Map, 0, len(orders))
	for i := range orders {
		formatted = append(formatted, formatOrder(&orders[i]))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(orders),
		"data":    formatted,
	})
}

// GET /api/v1/order/:code
//
// The transaction_status query parameter is advisory only: it is echoed
// back for the redirect landing page but never changes the order. State
// transitions come from the signed webhook or the authenticated poll.
func GetOrderDetail(c *fiber.Ctx) error {
	code := c.Params("code")
	transactionStatus := c.Query("transaction_status")

	claim, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	var order model.Order
	if err := database.DB.
		Preload("Items").
		Preload("User").
		Where("public_code = ?", code).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	isOwner := order.UserID == claim.UserId
	isAdmin := claim.Role == constants.ROLE_ADMIN
	if !isOwner && !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ORDER_OWNER, nil)
	}

	out := formatOrder(&order)
	if transactionStatus != "" {
		out["transactionStatus"] = transactionStatus
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    out,
	})
}

// POST /api/v1/order/:code/cancel
//
// Pending orders cancel outright. Paid orders refund on a sliding rule:
// full refund two days before the stay/visit, half one day before,
// nothing after that.
func CancelOrderByUser(c *fiber.Ctx) error {
	code := c.Params("code")

	claim, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	db := database.DB
	var order model.Order
	if err := db.
		Preload("Items").
		Where("public_code = ? AND user_id = ?", code, claim.UserId).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	if order.Status == model.OrderCancelled {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Order is already cancelled", nil)
	}
	if order.Status == model.OrderCompleted {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Order is already completed", nil)
	}

	var refundAmount int64
	switch order.PaymentStatus {
	case model.PaymentPending:
		order.PaymentStatus = model.PaymentCancelled
	case model.PaymentPaid:
		hoursBefore := time.Until(order.StartDate).Hours()
		var refundPercent float64
		if hoursBefore >= 48 {
			refundPercent = 1.0
		} else if hoursBefore >= 24 {
			refundPercent = 0.5
		} else {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Too late to cancel this order", nil)
		}
		refundAmount = int64(float64(order.TotalPrice) * refundPercent)
		order.PaymentStatus = model.PaymentRefunded
	default:
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Order cannot be cancelled", nil)
	}
	order.Status = model.OrderCancelled

	if err := db.Save(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	if order.OrderType == model.OrderTypeHotel && len(order.Items) > 0 {
		BroadcastRoomAvailability(order.Items[0].ItemID, order.StartDate, order.EndDate)
	}

	log.Printf("Order %s cancelled by user %d (refund %d)", order.PublicCode, claim.UserId, refundAmount)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":      "Order cancelled",
		"refundAmount": refundAmount,
	})
}

// GET /api/v1/ticket/email?orderId=ORD-xxxxxxxx
func ResendTicket(c *fiber.Ctx) error {
	code := c.Query("orderId")

	claim, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	var order model.Order
	if err := database.DB.
		Preload("Items").
		Preload("User").
		Where("public_code = ?", code).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	if order.UserID != claim.UserId && claim.Role != constants.ROLE_ADMIN {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ORDER_OWNER, nil)
	}
	if order.PaymentStatus != model.PaymentPaid {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.TICKET_NOT_PAID, nil)
	}

	sendTicketEmailForOrder(&order)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "E-ticket sent to your email",
	})
}
