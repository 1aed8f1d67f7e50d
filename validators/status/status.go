package statusValidator

import (
	"strings"

	"pcl-backend/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// StatusUpdateRequest is the parsed payload of the admin status endpoints.
type StatusUpdateRequest struct {
	Status        string `json:"status" form:"status"`
	TransactionID string `json:"transaction_id" form:"transaction_id"`
}

// StatusUpdate parses and validates a status change against the entity's
// allowed status values. An absent status defaults to pending.
func StatusUpdate(allowed ...string) fiber.Handler {
	rule := "oneof=" + strings.Join(allowed, " ")

	return func(c *fiber.Ctx) error {
		reqData := new(StatusUpdateRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if reqData.Status == "" {
			reqData.Status = "pending"
		}

		if err := validate.Var(reqData.Status, rule); err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Invalid status value")
		}

		c.Locals("validatedStatus", reqData)
		return c.Next()
	}
}
