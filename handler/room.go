package handler

import (
	"errors"
	"santaratrip/constants"
	"santaratrip/database"
	"santaratrip/helper"
	"santaratrip/model"
	"santaratrip/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

// GET /api/v1/hotel/:slug/rooms
//
// With checkIn/checkOut query params the listing also reports how many
// rooms of each type are free for that period.
func GetHotelRooms(c *fiber.Ctx) error {
	slug := c.Params("slug")

	db := database.DB
	var hotel model.Hotel
	if err := db.Where("slug = ?", slug).First(&hotel).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.HOTEL_NOT_FOUND, err)
	}

	var rooms []model.Room
	if err := db.Where("hotel_id = ?", hotel.ID).Order("price asc").Find(&rooms).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	checkIn := c.Query("checkIn")
	checkOut := c.Query("checkOut")
	if checkIn == "" || checkOut == "" {
		return utils.SuccessResponse(c, fiber.StatusOK, rooms)
	}

	start, err := parseBookingDate(checkIn)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE_FORMAT, err)
	}
	end, err := parseBookingDate(checkOut)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE_FORMAT, err)
	}
	if !start.Before(end) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE_RANGE, nil)
	}

	type roomWithAvailability struct {
		model.Room
		Booked    int `json:"booked"`
		Remaining int `json:"remaining"`
	}

	out := make([]roomWithAvailability, 0, len(rooms))
	for _, room := range rooms {
		booked, err := helper.CountBookedRooms(db, room.ID, start, end)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		out = append(out, roomWithAvailability{
			Room:      room,
			Booked:    booked,
			Remaining: room.Capacity - booked,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, out)
}

// GET /api/v1/room/:id/availability?checkIn=&checkOut=
func GetRoomAvailability(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ROOM_NOT_FOUND, err)
	}

	var start, end time.Time
	if checkIn := c.Query("checkIn"); checkIn != "" {
		if start, err = parseBookingDate(checkIn); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE_FORMAT, err)
		}
	}
	if checkOut := c.Query("checkOut"); checkOut != "" {
		if end, err = parseBookingDate(checkOut); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE_FORMAT, err)
		}
	}

	availability, err := FetchRoomAvailability(uint(id), start, end)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, availability)
}

// POST /api/v1/room (admin)
func CreateRoom(c *fiber.Ctx) error {
	input, ok := c.Locals("createRoomInput").(model.CreateRoomInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing validated input"))
	}

	db := database.DB

	var hotel model.Hotel
	if err := db.First(&hotel, input.HotelId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.HOTEL_NOT_FOUND, err)
	}

	var room model.Room
	copier.Copy(&room, &input)
	room.HotelID = hotel.ID
	room.Available = true

	urls, err := uploadFormImages(c, "santaratrip/rooms")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
	}
	room.Images = urls

	if err := db.Create(&room).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, room)
}

// PUT /api/v1/room/:id (admin)
func UpdateRoom(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ROOM_NOT_FOUND, err)
	}

	db := database.DB
	var room model.Room
	if err := db.First(&room, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
	}

	input, ok := c.Locals("createRoomInput").(model.CreateRoomInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing validated input"))
	}

	copier.CopyWithOption(&room, &input, copier.Option{IgnoreEmpty: true})

	urls, err := uploadFormImages(c, "santaratrip/rooms")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
	}
	if len(urls) > 0 {
		room.Images = append(room.Images, urls...)
	}

	if err := db.Save(&room).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	BroadcastRoomAvailability(room.ID, time.Time{}, time.Time{})

	return utils.SuccessResponse(c, fiber.StatusOK, room)
}

// DELETE /api/v1/room/:id (admin)
func DeleteRoom(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ROOM_NOT_FOUND, err)
	}

	result := database.DB.Delete(&model.Room{}, id)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Room deleted",
	})
}
