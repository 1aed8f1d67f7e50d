package courseRoutes

import (
	courseController "pcl-backend/controllers/course"
	"pcl-backend/models"
	statusValidator "pcl-backend/validators/status"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App, ctl *courseController.Controller, protected fiber.Handler) {
	apiGroup := app.Group("/api")
	apiGroup.Get("/courses", ctl.PublicList)
	apiGroup.Get("/courses/:slug", ctl.PublicGet)
	apiGroup.Post("/payments", ctl.CreatePayment)

	adminGroup := app.Group("/admin")
	adminGroup.Get("/courses", protected, ctl.AdminList)
	adminGroup.Post("/courses", protected, ctl.Create)
	adminGroup.Put("/courses/:id", protected, ctl.Update)
	adminGroup.Delete("/courses/:id", protected, ctl.Delete)

	adminGroup.Get("/payments", protected, ctl.AdminListPayments)
	adminGroup.Put("/payments/:id/status", protected,
		statusValidator.StatusUpdate(models.PaymentPending, models.PaymentCompleted, models.PaymentFailed),
		ctl.UpdatePaymentStatus)
}
