package validate

import (
	"santaratrip/model"

	"github.com/gofiber/fiber/v2"
)

func CreateDestination() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateDestinationInput
		if !parseInto(c, &input) {
			return nil
		}

		c.Locals("createDestinationInput", input)
		return c.Next()
	}
}

func CreateHotel() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateHotelInput
		if !parseInto(c, &input) {
			return nil
		}

		c.Locals("createHotelInput", input)
		return c.Next()
	}
}

func CreateRoom() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateRoomInput
		if !parseInto(c, &input) {
			return nil
		}

		c.Locals("createRoomInput", input)
		return c.Next()
	}
}

func CreateEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateEventInput
		if !parseInto(c, &input) {
			return nil
		}

		c.Locals("createEventInput", input)
		return c.Next()
	}
}
