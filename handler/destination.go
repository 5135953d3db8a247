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

// uploadFormImages pushes every "images" multipart file to Cloudinary
// and returns the hosted URLs. Missing form or zero files is not an
// error, catalog entries can be created text-first.
func uploadFormImages(c *fiber.Ctx, folder string) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, nil
	}

	files := form.File["images"]
	urls := make([]string, 0, len(files))
	for _, file := range files {
		url, err := helper.UploadImage(c.Context(), file, folder)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// GET /api/v1/destination
func GetDestinations(c *fiber.Ctx) error {
	filterInput := new(model.FilterCatalogInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INTERNAL_ERROR, err)
	}

	db := database.DB
	condition := db.Model(&model.Destination{})

	if filterInput.Search != "" {
		condition = condition.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filterInput.Search)+"%")
	}
	if filterInput.City != "" {
		condition = condition.Where("LOWER(city) = ?", strings.ToLower(filterInput.City))
	}
	if filterInput.Category != "" {
		condition = condition.Where("LOWER(category) = ?", strings.ToLower(filterInput.Category))
	}

	var totalCount int64
	condition.Count(&totalCount)

	var destinations []model.Destination
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := condition.Order("id DESC").Find(&destinations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       destinations,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

// GET /api/v1/destination/:slug
func GetDestinationBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var destination model.Destination
	if err := database.DB.Where("slug = ?", slug).First(&destination).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DESTINATION_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, destination)
}

// POST /api/v1/destination (admin)
func CreateDestination(c *fiber.Ctx) error {
	input, ok := c.Locals("createDestinationInput").(model.CreateDestinationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing validated input"))
	}

	db := database.DB

	var destination model.Destination
	copier.Copy(&destination, &input)
	destination.Slug = helper.GenerateUniqueDestinationSlug(db, input.Name)

	urls, err := uploadFormImages(c, "santaratrip/destinations")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
	}
	destination.Images = urls

	if err := db.Create(&destination).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, destination)
}

// PUT /api/v1/destination/:id (admin)
func UpdateDestination(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DESTINATION_NOT_FOUND, err)
	}

	db := database.DB
	var destination model.Destination
	if err := db.First(&destination, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DESTINATION_NOT_FOUND, err)
	}

	input, ok := c.Locals("createDestinationInput").(model.CreateDestinationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing validated input"))
	}

	if input.Name != destination.Name {
		destination.Slug = helper.GenerateUniqueDestinationSlug(db, input.Name)
	}
	copier.CopyWithOption(&destination, &input, copier.Option{IgnoreEmpty: true})

	urls, err := uploadFormImages(c, "santaratrip/destinations")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
	}
	if len(urls) > 0 {
		destination.Images = append(destination.Images, urls...)
	}

	if err := db.Save(&destination).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, destination)
}

// DELETE /api/v1/destination/:id (admin)
func DeleteDestination(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DESTINATION_NOT_FOUND, err)
	}

	result := database.DB.Delete(&model.Destination{}, id)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DESTINATION_NOT_FOUND, nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Destination deleted",
	})
}
