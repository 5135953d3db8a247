package validate

import (
	"santaratrip/model"

	"github.com/gofiber/fiber/v2"
)

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RegisterInput
		if !parseInto(c, &input) {
			return nil
		}

		c.Locals("registerInput", input)
		return c.Next()
	}
}

func ForgotPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ForgotPasswordInput
		if !parseInto(c, &input) {
			return nil
		}

		c.Locals("forgotPasswordInput", input)
		return c.Next()
	}
}

func ResetPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ResetPasswordInput
		if !parseInto(c, &input) {
			return nil
		}

		c.Locals("resetPasswordInput", input)
		return c.Next()
	}
}
