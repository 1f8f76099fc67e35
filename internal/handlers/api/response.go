package api

import (
	"github.com/gofiber/fiber/v3"
)

// failure returns the public submit-endpoint failure envelope.
func failure(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// adminError returns the admin-endpoint error envelope.
func adminError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}
