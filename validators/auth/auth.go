package authValidator

import (
	"pcl-backend/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// LoginRequest is the parsed /admin/login payload.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Username and password required")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Username and password required")
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
