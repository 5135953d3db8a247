package handler

import (
	"errors"
	"santaratrip/constants"
	"santaratrip/database"
	"santaratrip/helper"
	"santaratrip/model"
	"santaratrip/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

// GET /api/v1/event
func GetEvents(c *fiber.Ctx) error {
	filterInput := new(model.FilterCatalogInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INTERNAL_ERROR, err)
	}

	db := database.DB
	condition := db.Model(&model.Event{})

	if filterInput.Search != "" {
		condition = condition.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filterInput.Search)+"%")
	}
	if filterInput.Category != "" {
		condition = condition.Where("LOWER(category) = ?", strings.ToLower(filterInput.Category))
	}

	// Public listings only show bookable events, admins see everything
	if !helper.IsAdmin(c) {
		condition = condition.Where("status = ?", model.EventActive)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var events []model.Event
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := condition.Order("start_date asc").Find(&events).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       events,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

// GET /api/v1/event/:slug
func GetEventBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var event model.Event
	if err := database.DB.Where("slug = ?", slug).First(&event).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

// POST /api/v1/event (admin)
func CreateEvent(c *fiber.Ctx) error {
	input, ok := c.Locals("createEventInput").(model.CreateEventInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing validated input"))
	}

	startDate, err := parseBookingDate(input.StartDate)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE_FORMAT, err)
	}
	endDate, err := parseBookingDate(input.EndDate)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE_FORMAT, err)
	}
	if endDate.Before(startDate) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE_RANGE, nil)
	}

	db := database.DB

	var event model.Event
	copier.Copy(&event, &input)
	event.Slug = helper.GenerateUniqueEventSlug(db, input.Name)
	event.Status = model.EventActive
	event.StartDate = startDate
	event.EndDate = endDate

	urls, err := uploadFormImages(c, "santaratrip/events")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
	}
	event.Images = urls

	if err := db.Create(&event).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, event)
}

// PUT /api/v1/event/:id (admin)
func UpdateEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.EVENT_NOT_FOUND, err)
	}

	db := database.DB
	var event model.Event
	if err := db.First(&event, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
	}

	input, ok := c.Locals("createEventInput").(model.CreateEventInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing validated input"))
	}

	if input.Name != event.Name {
		event.Slug = helper.GenerateUniqueEventSlug(db, input.Name)
	}
	copier.CopyWithOption(&event, &input, copier.Option{IgnoreEmpty: true})

	if input.StartDate != "" {
		if event.StartDate, err = parseBookingDate(input.StartDate); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE_FORMAT, err)
		}
	}
	if input.EndDate != "" {
		if event.EndDate, err = parseBookingDate(input.EndDate); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE_FORMAT, err)
		}
	}

	urls, err := uploadFormImages(c, "santaratrip/events")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
	}
	if len(urls) > 0 {
		event.Images = append(event.Images, urls...)
	}

	if err := db.Save(&event).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

// DELETE /api/v1/event/:id (admin)
func DeleteEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.EVENT_NOT_FOUND, err)
	}

	result := database.DB.Delete(&model.Event{}, id)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Event deleted",
	})
}
