package validate

import (
	"santaratrip/model"

	"github.com/gofiber/fiber/v2"
)

func BookHotel() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.BookHotelInput
		if !parseInto(c, &input) {
			return nil
		}

		c.Locals("bookHotelInput", input)
		return c.Next()
	}
}

func BookWisata() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.BookWisataInput
		if !parseInto(c, &input) {
			return nil
		}

		c.Locals("bookWisataInput", input)
		return c.Next()
	}
}

func BookEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.BookEventInput
		if !parseInto(c, &input) {
			return nil
		}

		c.Locals("bookEventInput", input)
		return c.Next()
	}
}

func SubmitReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SubmitReviewInput
		if !parseInto(c, &input) {
			return nil
		}

		c.Locals("submitReviewInput", input)
		return c.Next()
	}
}
