package internshipRoutes

import (
	internshipController "pcl-backend/controllers/internship"
	"pcl-backend/models"
	statusValidator "pcl-backend/validators/status"

	"github.com/gofiber/fiber/v2"
)

func SetupInternshipRoutes(app *fiber.App, ctl *internshipController.Controller, protected fiber.Handler) {
	apiGroup := app.Group("/api")
	apiGroup.Get("/internships", ctl.PublicList)
	apiGroup.Get("/internships/:slug", ctl.PublicGet)
	apiGroup.Post("/internship-applications", ctl.CreateApplication)

	adminGroup := app.Group("/admin")
	adminGroup.Get("/internships", protected, ctl.AdminList)
	adminGroup.Post("/internships", protected, ctl.Create)
	adminGroup.Put("/internships/:id", protected, ctl.Update)
	adminGroup.Delete("/internships/:id", protected, ctl.Delete)

	adminGroup.Get("/internship-applications", protected, ctl.AdminListApplications)
	adminGroup.Put("/internship-applications/:id/status", protected,
		statusValidator.StatusUpdate(models.ApplicationPending, models.ApplicationApproved, models.ApplicationRejected),
		ctl.UpdateApplicationStatus)
	adminGroup.Delete("/internship-applications/:id", protected, ctl.DeleteApplication)
}
