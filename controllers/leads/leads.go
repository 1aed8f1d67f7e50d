package leadController

import (
	"log"

	"pcl-backend/config"
	"pcl-backend/middleware"
	"pcl-backend/models"
	"pcl-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Controller handles the simple lead-capture forms. Records are insert-only
// and every submission triggers a best-effort notification.
type Controller struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Files  *utils.Uploader
	Mailer utils.EmailService
}

func NewController(db *gorm.DB, cfg *config.Config, files *utils.Uploader, mailer utils.EmailService) *Controller {
	return &Controller{DB: db, Cfg: cfg, Files: files, Mailer: mailer}
}

func fullName(data map[string]string) string {
	if data["fullName"] != "" {
		return data["fullName"]
	}
	return data["full_name"]
}

// Enroll records a course interest form.
func (ctl *Controller) Enroll(c *fiber.Ctx) error {
	data := utils.RequestData(c)
	ctl.Mailer.Notify(data, "")

	entry := models.CourseEnrollment{
		FullName: fullName(data),
		Email:    data["email"],
		Mobile:   data["mobile"],
		Type:     data["type"],
		Message:  data["message"],
	}
	if err := ctl.DB.Create(&entry).Error; err != nil {
		log.Printf("DB insert error /enroll: %v", err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Database insert failed")
	}

	return middleware.Success(c, fiber.StatusCreated, fiber.Map{"enrollment_id": entry.ID})
}

// Demo records a demo-session request.
func (ctl *Controller) Demo(c *fiber.Ctx) error {
	data := utils.RequestData(c)
	ctl.Mailer.Notify(data, "")

	entry := models.DemoRequest{
		FullName: fullName(data),
		Email:    data["email"],
		Type:     data["type"],
		Mobile:   data["mobile"],
	}
	if err := ctl.DB.Create(&entry).Error; err != nil {
		log.Printf("DB insert error /demo: %v", err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Database insert failed")
	}

	return middleware.Success(c, fiber.StatusCreated, fiber.Map{"id": entry.ID})
}

// Inquire records a general inquiry.
func (ctl *Controller) Inquire(c *fiber.Ctx) error {
	data := utils.RequestData(c)
	ctl.Mailer.Notify(data, "")

	entry := models.Inquiry{
		FullName: fullName(data),
		Email:    data["email"],
		Mobile:   data["mobile"],
		Type:     data["type"],
		Message:  data["message"],
	}
	if err := ctl.DB.Create(&entry).Error; err != nil {
		log.Printf("DB insert error /inquire: %v", err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Database insert failed")
	}

	return middleware.Success(c, fiber.StatusCreated, fiber.Map{"id": entry.ID})
}

// PclInfo records a contact form with an optional file attachment that is
// forwarded on the notification email.
func (ctl *Controller) PclInfo(c *fiber.Ctx) error {
	data := utils.RequestData(c)

	var attachmentPath string
	if file, err := c.FormFile("file"); err == nil {
		saved, err := ctl.Files.Save(file, utils.CategoryResumes)
		if err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, err.Error())
		}
		attachmentPath = ctl.Files.DiskPath(saved)
	}

	ctl.Mailer.Notify(data, attachmentPath)

	entry := models.PclInfo{
		Fname:   data["fname"],
		Lname:   data["lname"],
		Email:   data["email"],
		Mobile:  data["mobile"],
		Message: data["message"],
	}
	if err := ctl.DB.Create(&entry).Error; err != nil {
		log.Printf("DB insert error /pclinfo: %v", err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Database insert failed")
	}

	return middleware.Success(c, fiber.StatusCreated, fiber.Map{"id": entry.ID})
}

// Internship records the legacy free-form internship interest form with an
// optional CV upload.
func (ctl *Controller) Internship(c *fiber.Ctx) error {
	data := utils.RequestData(c)

	var cvPath string
	if file, err := c.FormFile("cv"); err == nil {
		saved, err := ctl.Files.Save(file, utils.CategoryResumes)
		if err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, err.Error())
		}
		cvPath = saved
	}

	ctl.Mailer.Notify(data, ctl.Files.DiskPath(cvPath))

	entry := models.Internship{
		Fname:      data["fname"],
		Lname:      data["lname"],
		Email:      data["email"],
		Mobile:     data["mobile"],
		Internship: data["internship"],
		Message:    data["message"],
		CvPath:     cvPath,
	}
	if err := ctl.DB.Create(&entry).Error; err != nil {
		log.Printf("DB insert error /internship: %v", err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Database insert failed")
	}

	return middleware.Success(c, fiber.StatusCreated, fiber.Map{"id": entry.ID})
}
