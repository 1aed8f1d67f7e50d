package projectRoutes

import (
	projectController "pcl-backend/controllers/project"
	"pcl-backend/models"
	statusValidator "pcl-backend/validators/status"

	"github.com/gofiber/fiber/v2"
)

func SetupProjectRoutes(app *fiber.App, ctl *projectController.Controller, protected fiber.Handler) {
	apiGroup := app.Group("/api")
	apiGroup.Get("/projects", ctl.PublicList)
	apiGroup.Get("/projects/:slug", ctl.PublicGet)
	apiGroup.Post("/project-enrollments", ctl.CreateEnrollment)

	adminGroup := app.Group("/admin")
	adminGroup.Get("/projects", protected, ctl.AdminList)
	adminGroup.Post("/projects", protected, ctl.Create)
	adminGroup.Put("/projects/:id", protected, ctl.Update)
	adminGroup.Delete("/projects/:id", protected, ctl.Delete)

	adminGroup.Get("/project-enrollments", protected, ctl.AdminListEnrollments)
	adminGroup.Put("/project-enrollments/:id/status", protected,
		statusValidator.StatusUpdate(models.PaymentPending, models.PaymentCompleted, models.PaymentFailed),
		ctl.UpdateEnrollmentStatus)
}
