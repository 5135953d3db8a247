package handler

import (
	"errors"
	"santaratrip/constants"
	"santaratrip/database"
	"santaratrip/helper"
	"santaratrip/model"
	"santaratrip/utils"

	"github.com/gofiber/fiber/v2"
)

// POST /api/v1/order/review
//
// A review is tied to an order line: the caller must own the order, the
// order must be paid, and the item must actually be on it. One review
// per (user, order, item), enforced here and by the unique index.
func SubmitReview(c *fiber.Ctx) error {
	input, ok := c.Locals("submitReviewInput").(model.SubmitReviewInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing validated input"))
	}

	claim, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	db := database.DB

	var order model.Order
	if err := db.Preload("Items").
		Where("id = ? AND user_id = ?", input.OrderId, claim.UserId).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	if order.PaymentStatus != model.PaymentPaid {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Only paid orders can be reviewed", nil)
	}
	if order.ItemQuantity(input.ItemId) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ITEM_NOT_IN_ORDER, nil)
	}

	var existing int64
	db.Model(&model.Review{}).
		Where("user_id = ? AND order_id = ? AND item_id = ?", claim.UserId, order.ID, input.ItemId).
		Count(&existing)
	if existing > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.DUPLICATE_REVIEW, nil)
	}

	photos, err := uploadFormImages(c, "santaratrip/reviews")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
	}

	review := model.Review{
		UserID:   claim.UserId,
		OrderID:  order.ID,
		ItemID:   input.ItemId,
		ItemType: input.ItemType,
		Rating:   input.Rating,
		Comment:  input.Comment,
		Photos:   photos,
	}
	if err := db.Create(&review).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, review)
}

// GET /api/v1/review/:itemType/:itemId
//
// A hotel's rating aggregates the reviews of all its rooms, since the
// bookable (and so reviewable) unit is the room.
func GetReviews(c *fiber.Ctx) error {
	itemType := c.Params("itemType")
	itemId, err := c.ParamsInt("itemId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ITEM_NOT_IN_ORDER, err)
	}

	db := database.DB
	condition := db.Model(&model.Review{})

	if itemType == "hotel" {
		var roomIds []uint
		if err := db.Model(&model.Room{}).
			Where("hotel_id = ?", itemId).
			Pluck("id", &roomIds).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		condition = condition.Where("item_type = ? AND item_id IN ?", "room", roomIds)
	} else {
		condition = condition.Where("item_type = ? AND item_id = ?", itemType, itemId)
	}

	var reviews []model.Review
	if err := condition.Preload("User").Order("created_at desc").Find(&reviews).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var averageRating float64
	if len(reviews) > 0 {
		var sum int
		for _, review := range reviews {
			sum += review.Rating
		}
		averageRating = float64(sum) / float64(len(reviews))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"reviews":       reviews,
		"count":         len(reviews),
		"averageRating": averageRating,
	})
}
