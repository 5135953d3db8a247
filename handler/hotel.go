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

// GET /api/v1/hotel
func GetHotels(c *fiber.Ctx) error {
	filterInput := new(model.FilterCatalogInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INTERNAL_ERROR, err)
	}

	db := database.DB
	condition := db.Model(&model.Hotel{})

	if filterInput.Search != "" {
		condition = condition.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filterInput.Search)+"%")
	}
	if filterInput.City != "" {
		condition = condition.Where("LOWER(city) = ?", strings.ToLower(filterInput.City))
	}

	var totalCount int64
	condition.Count(&totalCount)

	var hotels []model.Hotel
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := condition.Preload("Rooms").Order("id DESC").Find(&hotels).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       hotels,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

// GET /api/v1/hotel/:slug
func GetHotelBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var hotel model.Hotel
	if err := database.DB.Preload("Rooms").Where("slug = ?", slug).First(&hotel).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.HOTEL_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, hotel)
}

// POST /api/v1/hotel (admin)
func CreateHotel(c *fiber.Ctx) error {
	input, ok := c.Locals("createHotelInput").(model.CreateHotelInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing validated input"))
	}

	db := database.DB

	var hotel model.Hotel
	copier.Copy(&hotel, &input)
	hotel.Slug = helper.GenerateUniqueHotelSlug(db, input.Name)

	urls, err := uploadFormImages(c, "santaratrip/hotels")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
	}
	hotel.Images = urls

	if err := db.Create(&hotel).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, hotel)
}

// PUT /api/v1/hotel/:id (admin)
func UpdateHotel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.HOTEL_NOT_FOUND, err)
	}

	db := database.DB
	var hotel model.Hotel
	if err := db.First(&hotel, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.HOTEL_NOT_FOUND, err)
	}

	input, ok := c.Locals("createHotelInput").(model.CreateHotelInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing validated input"))
	}

	if input.Name != hotel.Name {
		hotel.Slug = helper.GenerateUniqueHotelSlug(db, input.Name)
	}
	copier.CopyWithOption(&hotel, &input, copier.Option{IgnoreEmpty: true})

	urls, err := uploadFormImages(c, "santaratrip/hotels")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
	}
	if len(urls) > 0 {
		hotel.Images = append(hotel.Images, urls...)
	}

	if err := db.Save(&hotel).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, hotel)
}

// DELETE /api/v1/hotel/:id (admin)
func DeleteHotel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.HOTEL_NOT_FOUND, err)
	}

	result := database.DB.Delete(&model.Hotel{}, id)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.HOTEL_NOT_FOUND, nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Hotel deleted",
	})
}
