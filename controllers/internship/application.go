package internshipController

import (
	"errors"
	"log"
	"os"
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

// applicationRow is an application joined with its posting's title, slug and
// code for the admin listing.
type applicationRow struct {
	models.InternshipApplication
	InternshipTitle string
	InternshipSlug  string
	InternshipCode  string
}

var requiredApplicationFields = []string{"fname", "lname", "email", "mobile", "motivation"}

// CreateApplication records a public internship application. The posting is
// resolved by slug and must be active; the resume upload is mandatory.
func (ctl *Controller) CreateApplication(c *fiber.Ctx) error {
	fields := utils.FormFields(c)

	if fields["internship_slug"] == "" {
		return middleware.Error(c, fiber.StatusBadRequest, "Internship slug is required")
	}

	var posting models.InternshipPosting
	err := ctl.DB.Where("slug = ? AND is_active = ?", fields["internship_slug"], true).First(&posting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.Error(c, fiber.StatusNotFound, "Internship not found")
		}
		log.Printf("Error resolving internship for application: %v", err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to submit application. Please try again.")
	}

	validationCode := strings.ToLower(strings.TrimSpace(fields["validation_code"]))
	if validationCode != strings.ToLower(ctl.Cfg.ValidationCode) {
		return middleware.Error(c, fiber.StatusBadRequest, "Invalid validation code")
	}

	var missing []string
	for _, field := range requiredApplicationFields {
		if strings.TrimSpace(fields[field]) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return middleware.Error(c, fiber.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
	}

	resumeFile, err := c.FormFile("resume")
	if err != nil || resumeFile == nil || resumeFile.Filename == "" {
		return middleware.Error(c, fiber.StatusBadRequest, "Resume is required")
	}
	resumePath, err := ctl.Files.Save(resumeFile, utils.CategoryResumes)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidFileType):
			return middleware.Error(c, fiber.StatusBadRequest, "Invalid resume format. Please upload PDF, DOC, or DOCX")
		case errors.Is(err, utils.ErrFileTooLarge):
			return middleware.Error(c, fiber.StatusBadRequest, "Resume file size exceeds 5MB limit")
		default:
			log.Printf("Error saving resume: %v", err)
			return middleware.Error(c, fiber.StatusInternalServerError, "Failed to upload resume")
		}
	}

	application := models.InternshipApplication{
		EnrollmentID:       utils.GenerateExternalID("INT_APP_"),
		InternshipID:       posting.ID,
		Fname:              strings.TrimSpace(fields["fname"]),
		Lname:              strings.TrimSpace(fields["lname"]),
		Email:              strings.TrimSpace(fields["email"]),
		Mobile:             strings.TrimSpace(fields["mobile"]),
		ExperienceLevel:    stringOr(fields["experience_level"], "Fresher"),
		PortfolioURL:       strings.TrimSpace(fields["portfolio_url"]),
		GithubURL:          strings.TrimSpace(fields["github_url"]),
		Motivation:         strings.TrimSpace(fields["motivation"]),
		ResumePath:         resumePath,
		GSTIN:              strings.TrimSpace(fields["gstin"]),
		BillingAddress:     strings.TrimSpace(fields["billing_address"]),
		Landmark:           strings.TrimSpace(fields["landmark"]),
		District:           strings.TrimSpace(fields["district"]),
		State:              strings.TrimSpace(fields["state"]),
		PreferredStartDate: utils.ParseDate(fields["preferred_start_date"]),
		PreferredTime:      stringOr(fields["preferred_time"], "Full-Time"),
		Availability:       stringOr(fields["availability"], "Immediate"),
		PaymentStatus:      models.ApplicationPending,
		ValidationCode:     validationCode,
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&application).Error; err != nil {
			return err
		}
		return tx.Model(&models.InternshipPosting{}).
			Where("id = ?", posting.ID).
			UpdateColumn("total_applications", gorm.Expr("total_applications + ?", 1)).Error
	})
	if err != nil {
		log.Printf("Error creating internship application: %v", err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to submit application. Please try again.")
	}

	ctl.Mailer.Notify(map[string]string{
		"fname":      application.Fname,
		"lname":      application.Lname,
		"email":      application.Email,
		"mobile":     application.Mobile,
		"internship": posting.Title,
		"message":    "Enrollment ID: " + application.EnrollmentID + "\nExperience Level: " + application.ExperienceLevel,
	}, "")

	return middleware.Success(c, fiber.StatusCreated, fiber.Map{
		"enrollment_id": application.EnrollmentID,
		"internship":    posting.Title,
		"message":       "Application submitted successfully",
	})
}

// AdminListApplications returns all applications joined with posting details.
func (ctl *Controller) AdminListApplications(c *fiber.Ctx) error {
	var rows []applicationRow
	err := ctl.DB.Table("internship_applications").
		Select("internship_applications.*, internship_postings.title AS internship_title, internship_postings.slug AS internship_slug, internship_postings.internship_code AS internship_code").
		Joins("JOIN internship_postings ON internship_postings.id = internship_applications.internship_id").
		Where("internship_applications.deleted_at IS NULL").
		Scan(&rows).Error
	if err != nil {
		log.Printf("Error fetching internship applications: %v", err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to fetch applications")
	}

	list := make([]fiber.Map, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		var startDate interface{}
		if row.PreferredStartDate != nil {
			startDate = row.PreferredStartDate.Format("2006-01-02")
		}
		list = append(list, fiber.Map{
			"id":                   row.ID,
			"enrollment_id":        row.EnrollmentID,
			"fname":                row.Fname,
			"lname":                row.Lname,
			"email":                row.Email,
			"mobile":               row.Mobile,
			"internship_title":     row.InternshipTitle,
			"internship_slug":      row.InternshipSlug,
			"internship_code":      row.InternshipCode,
			"experience_level":     row.ExperienceLevel,
			"portfolio_url":        row.PortfolioURL,
			"github_url":           row.GithubURL,
			"motivation":           row.Motivation,
			"resume_path":          row.ResumePath,
			"gstin":                row.GSTIN,
			"billing_address":      row.BillingAddress,
			"district":             row.District,
			"state":                row.State,
			"preferred_start_date": startDate,
			"preferred_time":       row.PreferredTime,
			"availability":         row.Availability,
			"payment_status":       row.PaymentStatus,
			"date":                 row.CreatedAt.Format(time.RFC3339),
			"updated_at":           row.UpdatedAt.Format(time.RFC3339),
		})
	}
	return middleware.Success(c, fiber.StatusOK, fiber.Map{"applications": list})
}

// UpdateApplicationStatus moves an application's review status.
func (ctl *Controller) UpdateApplicationStatus(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStatus").(*statusValidator.StatusUpdateRequest)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Application not found")
	}

	var application models.InternshipApplication
	if err := ctl.DB.First(&application, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.Error(c, fiber.StatusNotFound, "Application not found")
		}
		log.Printf("Error loading application %d: %v", id, err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to update application status")
	}

	application.PaymentStatus = reqData.Status
	if err := ctl.DB.Save(&application).Error; err != nil {
		log.Printf("Error updating application %d: %v", id, err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to update application status")
	}

	return middleware.Success(c, fiber.StatusOK, fiber.Map{"message": "Application status updated"})
}

// DeleteApplication removes the row permanently along with its resume file.
func (ctl *Controller) DeleteApplication(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Application not found")
	}

	var application models.InternshipApplication
	if err := ctl.DB.First(&application, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.Error(c, fiber.StatusNotFound, "Application not found")
		}
		log.Printf("Error loading application %d: %v", id, err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to delete application")
	}

	if application.ResumePath != "" {
		if err := os.Remove(ctl.Files.DiskPath(application.ResumePath)); err != nil && !os.IsNotExist(err) {
			log.Printf("Failed to delete resume file %s: %v", application.ResumePath, err)
		}
	}

	if err := ctl.DB.Unscoped().Delete(&application).Error; err != nil {
		log.Printf("Error deleting application %d: %v", id, err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to delete application")
	}

	return middleware.Success(c, fiber.StatusOK, fiber.Map{"message": "Application deleted"})
}

func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
