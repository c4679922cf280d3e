package handler

import (
	"github.com/gofiber/fiber/v2"
)

const notAllowedText = "You are not allowed here"

// notAllowed is the authorization failure surface for HTML routes: a plain
// text body, never a redirect.
func notAllowed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).SendString(notAllowedText)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return 0, fiber.ErrNotFound
	}
	return uint(id), nil
}
