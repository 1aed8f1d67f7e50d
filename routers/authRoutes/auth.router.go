package authRoutes

import (
	authController "pcl-backend/controllers/auth"
	authValidator "pcl-backend/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, ctl *authController.Controller) {
	app.Post("/admin/login", authValidator.Login(), ctl.Login)
}
