package projectController

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"pcl-backend/middleware"
	"pcl-backend/models"
	"pcl-backend/utils"
	statusValidator "pcl-backend/validators/status"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// enrollmentRow is an enrollment joined with its project's title and code
// for the admin listing.
type enrollmentRow struct {
	models.ProjectEnrollment
	ProjectTitle string
	ProjectCode  string
}

// CreateEnrollment records a public project enrollment. The payment
// screenshot is optional; when present it must be an image under the ceiling.
func (ctl *Controller) CreateEnrollment(c *fiber.Ctx) error {
	fields := utils.FormFields(c)

	if fields["project_slug"] == "" {
		return middleware.Error(c, fiber.StatusBadRequest, "Project slug is required")
	}

	var posting models.ProjectPosting
	err := ctl.DB.Where("slug = ?", fields["project_slug"]).First(&posting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.Error(c, fiber.StatusNotFound, "Project not found")
		}
		log.Printf("Error resolving project for enrollment: %v", err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to process enrollment request")
	}

	validationCode := strings.ToLower(strings.TrimSpace(fields["validation_code"]))
	if validationCode != strings.ToLower(ctl.Cfg.ValidationCode) {
		return middleware.Error(c, fiber.StatusBadRequest, "Invalid validation code")
	}

	var screenshotPath string
	if file, err := c.FormFile("payment_screenshot"); err == nil {
		saved, err := ctl.Files.Save(file, utils.CategoryPaymentScreenshots)
		if err != nil {
			switch {
			case errors.Is(err, utils.ErrInvalidFileType):
				return middleware.Error(c, fiber.StatusBadRequest, "Invalid screenshot format. Please upload JPG, PNG, GIF, or WebP")
			case errors.Is(err, utils.ErrFileTooLarge):
				return middleware.Error(c, fiber.StatusBadRequest, "Screenshot file size exceeds 5MB limit")
			default:
				log.Printf("Error saving screenshot: %v", err)
				return middleware.Error(c, fiber.StatusInternalServerError, "Failed to upload screenshot")
			}
		}
		screenshotPath = saved
	}

	enrollment := models.ProjectEnrollment{
		EnrollmentID:       utils.GenerateExternalID("PROJ_ENR_"),
		ProjectID:          posting.ID,
		StudentName:        fields["name"],
		Email:              fields["email"],
		Mobile:             fields["mobile"],
		GSTIN:              fields["gstin"],
		BillingAddress:     fields["billing_address"],
		Landmark:           fields["landmark"],
		District:           fields["district"],
		State:              fields["state"],
		PreferredStartDate: utils.ParseDate(fields["preferred_start_date"]),
		PreferredTime:      fields["preferred_time"],
		TeamSize:           fields["team_size"],
		PaymentMethod:      fields["payment_method"],
		PaymentStatus:      models.PaymentPending,
		ValidationCode:     validationCode,
		PaymentScreenshot:  screenshotPath,
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}
		return tx.Model(&models.ProjectPosting{}).
			Where("id = ?", posting.ID).
			UpdateColumn("total_enrollments", gorm.Expr("total_enrollments + ?", 1)).Error
	})
	if err != nil {
		log.Printf("Error creating project enrollment: %v", err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to process enrollment request")
	}

	ctl.Mailer.Notify(map[string]string{
		"fullName": fields["name"],
		"email":    fields["email"],
		"mobile":   fields["mobile"],
		"type":     "Project Enrollment",
		"message":  "Project: " + posting.Title + "\nEnrollment ID: " + enrollment.EnrollmentID,
	}, "")

	return middleware.Success(c, fiber.StatusCreated, fiber.Map{
		"enrollment_id": enrollment.EnrollmentID,
		"project":       posting.Title,
		"message":       "Enrollment submitted successfully",
	})
}

// AdminListEnrollments returns all enrollments joined with project details.
// Screenshot paths are absolutized for the dashboard.
func (ctl *Controller) AdminListEnrollments(c *fiber.Ctx) error {
	var rows []enrollmentRow
	err := ctl.DB.Table("project_enrollments").
		Select("project_enrollments.*, project_postings.title AS project_title, project_postings.project_code AS project_code").
		Joins("JOIN project_postings ON project_postings.id = project_enrollments.project_id").
		Where("project_enrollments.deleted_at IS NULL").
		Scan(&rows).Error
	if err != nil {
		log.Printf("Error fetching project enrollments: %v", err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}

	list := make([]fiber.Map, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		var startDate interface{}
		if row.PreferredStartDate != nil {
			startDate = row.PreferredStartDate.Format("2006-01-02")
		}
		var screenshot interface{}
		if row.PaymentScreenshot != "" {
			screenshot = utils.AbsoluteURL(ctl.Cfg.BaseURL, row.PaymentScreenshot)
		}
		list = append(list, fiber.Map{
			"id":                   row.ID,
			"enrollment_id":        row.EnrollmentID,
			"student_name":         row.StudentName,
			"email":                row.Email,
			"mobile":               row.Mobile,
			"project_title":        row.ProjectTitle,
			"project_code":         row.ProjectCode,
			"team_size":            row.TeamSize,
			"preferred_time":       row.PreferredTime,
			"preferred_start_date": startDate,
			"payment_method":       row.PaymentMethod,
			"payment_status":       row.PaymentStatus,
			"amount":               row.Amount,
			"district":             row.District,
			"state":                row.State,
			"payment_screenshot":   screenshot,
			"created_at":           row.CreatedAt.Format(time.RFC3339),
		})
	}
	return middleware.Success(c, fiber.StatusOK, fiber.Map{"enrollments": list})
}

// UpdateEnrollmentStatus sets the enrollment's status and transaction id.
func (ctl *Controller) UpdateEnrollmentStatus(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStatus").(*statusValidator.StatusUpdateRequest)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Enrollment not found")
	}

	var enrollment models.ProjectEnrollment
	if err := ctl.DB.First(&enrollment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.Error(c, fiber.StatusNotFound, "Enrollment not found")
		}
		log.Printf("Error loading enrollment %d: %v", id, err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to update enrollment status")
	}

	enrollment.PaymentStatus = reqData.Status
	enrollment.TransactionID = reqData.TransactionID
	if err := ctl.DB.Save(&enrollment).Error; err != nil {
		log.Printf("Error updating enrollment %d: %v", id, err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to update enrollment status")
	}

	return middleware.Success(c, fiber.StatusOK, fiber.Map{"message": "Enrollment status updated"})
}
