package leadRoutes

import (
	leadController "pcl-backend/controllers/leads"

	"github.com/gofiber/fiber/v2"
)

func SetupLeadRoutes(app *fiber.App, ctl *leadController.Controller) {
	app.Post("/enroll", ctl.Enroll)
	app.Post("/demo", ctl.Demo)
	app.Post("/inquire", ctl.Inquire)
	app.Post("/pclinfo", ctl.PclInfo)
	app.Post("/internship", ctl.Internship)
}
