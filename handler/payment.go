package handler

import (
	"log"
	"santaratrip/constants"
	"santaratrip/database"
	"santaratrip/helper"
	"santaratrip/model"
	"santaratrip/utils"

	"github.com/gofiber/fiber/v2"
)

// POST /api/v1/payment/midtrans-notify
//
// Gateway webhook. Unauthenticated by design, so the signature check is
// the only gate: reject anything not signed with our server key before
// touching the order.
func MidtransNotification(c *fiber.Ctx) error {
	var notification model.MidtransNotification
	if err := c.BodyParser(&notification); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot parse notification", err)
	}

	midtrans := NewMidtrans()
	if !midtrans.VerifySignature(notification) {
		log.Printf("Rejected webhook for %s: bad signature", notification.OrderID)
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.INVALID_SIGNATURE, nil)
	}

	db := database.DB
	var order model.Order
	if err := db.
		Preload("Items").
		Preload("User").
		Where("public_code = ?", notification.OrderID).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	changed := order.ApplyTransactionStatus(notification.TransactionStatus)
	if changed {
		if notification.PaymentType != "" {
			order.PaymentMethod = notification.PaymentType
		}
		if err := db.Save(&order).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
		}
		log.Printf("Order %s -> %s/%s via webhook (%s)",
			order.PublicCode, order.PaymentStatus, order.Status, notification.TransactionStatus)

		if order.PaymentStatus == model.PaymentPaid {
			sendTicketEmailForOrder(&order)
		}
		if order.PaymentStatus == model.PaymentCancelled && order.OrderType == model.OrderTypeHotel && len(order.Items) > 0 {
			BroadcastRoomAvailability(order.Items[0].ItemID, order.StartDate, order.EndDate)
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Notification processed",
	})
}

// GET /api/v1/payment/status/:orderId
//
// Authenticated poll fallback for when the webhook never arrived. The
// gateway is asked for the live status; if it cannot be reached the
// stored state is still returned with midtransStatus set to null.
func CheckPaymentStatus(c *fiber.Ctx) error {
	code := c.Params("orderId")

	claim, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	db := database.DB
	var order model.Order
	if err := db.
		Preload("Items").
		Preload("User").
		Where("public_code = ?", code).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	if order.UserID != claim.UserId && claim.Role != constants.ROLE_ADMIN {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ORDER_OWNER, nil)
	}

	midtrans := NewMidtrans()
	status, err := midtrans.TransactionStatus(order.PublicCode)
	if err != nil {
		log.Printf("Midtrans status check failed for %s: %v", order.PublicCode, err)
		return c.JSON(fiber.Map{
			"success":        true,
			"data":           formatOrder(&order),
			"midtransStatus": nil,
		})
	}

	changed := order.ApplyTransactionStatus(status.TransactionStatus)
	if changed {
		if status.PaymentType != "" {
			order.PaymentMethod = status.PaymentType
		}
		if err := db.Save(&order).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
		}
		if order.PaymentStatus == model.PaymentPaid {
			sendTicketEmailForOrder(&order)
		}
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"data":           formatOrder(&order),
		"midtransStatus": status.TransactionStatus,
	})
}

// GET /api/v1/payment/token/:orderId
//
// Returns a checkout session for a pending order. The stored redirect
// URL is reused when present so the customer always lands on the same
// gateway transaction.
func GetPaymentToken(c *fiber.Ctx) error {
	code := c.Params("orderId")

	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	var order model.Order
	if err := database.DB.
		Preload("Items").
		Where("public_code = ?", code).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	if order.UserID != claim.UserId && claim.Role != constants.ROLE_ADMIN {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ORDER_OWNER, nil)
	}
	if order.PaymentStatus != model.PaymentPending {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ORDER_NOT_PENDING, nil)
	}

	// Reuse keeps the same payload shape as a fresh mint; the token only
	// exists at creation time, so on reuse it comes back null.
	if order.PaymentUrl != "" {
		return utils.SuccessResponse(c, fiber.StatusOK, paymentTokenPayload("", order.PaymentUrl))
	}

	token, err := generatePaymentToken(&order, &user, itemNameForOrder(&order))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, constants.PAYMENT_TOKEN_FAILED, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, paymentTokenPayload(token, order.PaymentUrl))
}

func paymentTokenPayload(token, url string) fiber.Map {
	payload := fiber.Map{
		"paymentToken": nil,
		"paymentUrl":   url,
	}
	if token != "" {
		payload["paymentToken"] = token
	}
	return payload
}
