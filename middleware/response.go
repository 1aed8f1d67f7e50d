package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// Success writes a JSON payload with "success": true merged in.
func Success(c *fiber.Ctx, statusCode int, payload fiber.Map) error {
	if payload == nil {
		payload = fiber.Map{}
	}
	payload["success"] = true
	return c.Status(statusCode).JSON(payload)
}

// Error writes the generic {"error": message} failure shape.
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"error": message,
	})
}
