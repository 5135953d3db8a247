package middleware

import (
	"errors"
	"os"
	"santaratrip/constants"
	"santaratrip/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			// check header Authorization: Bearer xxx
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, 401, "Missing token", errors.New("no token"))
		}

		jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, 401, "Invalid token", err)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// AdminOnly runs after Protected and rejects non-admin tokens.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := c.Locals("user")
		jwtToken, ok := u.(*jwt.Token)
		if !ok || jwtToken == nil {
			return utils.ErrorResponse(c, 401, constants.NOT_LOGGED_IN, errors.New("no token"))
		}
		claims, ok := jwtToken.Claims.(jwt.MapClaims)
		if !ok {
			return utils.ErrorResponse(c, 401, constants.NOT_LOGGED_IN, errors.New("bad claims"))
		}
		role, _ := claims["role"].(string)
		if role != constants.ROLE_ADMIN {
			return utils.ErrorResponse(c, 403, constants.NOT_ADMIN, errors.New("not admin"))
		}
		return c.Next()
	}
}
