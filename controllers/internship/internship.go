package internshipController

import (
	"time"

	"pcl-backend/config"
	"pcl-backend/models"
	"pcl-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Controller struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Files  *utils.Uploader
	Mailer utils.EmailService
}

func NewController(db *gorm.DB, cfg *config.Config, files *utils.Uploader, mailer utils.EmailService) *Controller {
	return &Controller{DB: db, Cfg: cfg, Files: files, Mailer: mailer}
}

// summaryJSON is the compact shape for the public listing page.
func (ctl *Controller) summaryJSON(posting *models.InternshipPosting) fiber.Map {
	return fiber.Map{
		"id":              posting.ID,
		"title":           posting.Title,
		"description":     posting.Description,
		"category":        posting.Category,
		"duration":        posting.Duration,
		"internship_type": posting.InternshipType,
		"location":        posting.Location,
		"image_url":       utils.AbsoluteURL(ctl.Cfg.BaseURL, posting.ImageURL),
		"slug":            posting.Slug,
		"internship_code": posting.InternshipCode,
	}
}

// detailJSON is the full shape for the public detail page.
func (ctl *Controller) detailJSON(posting *models.InternshipPosting) fiber.Map {
	detail := ctl.summaryJSON(posting)
	detail["detailed_description"] = posting.DetailedDescription
	detail["skills"] = posting.Skills
	detail["eligibility"] = posting.Eligibility
	detail["perks"] = posting.Perks
	return detail
}

func adminPostingJSON(posting *models.InternshipPosting) fiber.Map {
	return fiber.Map{
		"id":                   posting.ID,
		"title":                posting.Title,
		"description":          posting.Description,
		"detailed_description": posting.DetailedDescription,
		"category":             posting.Category,
		"duration":             posting.Duration,
		"internship_type":      posting.InternshipType,
		"location":             posting.Location,
		"skills":               posting.Skills,
		"eligibility":          posting.Eligibility,
		"perks":                posting.Perks,
		"image_url":            posting.ImageURL,
		"internship_code":      posting.InternshipCode,
		"slug":                 posting.Slug,
		"is_active":            posting.IsActive,
		"total_applications":   posting.TotalApplications,
		"created_at":           posting.CreatedAt.Format(time.RFC3339),
		"updated_at":           posting.UpdatedAt.Format(time.RFC3339),
	}
}
