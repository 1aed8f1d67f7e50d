package projectController

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
func (ctl *Controller) summaryJSON(posting *models.ProjectPosting) fiber.Map {
	return fiber.Map{
		"id":                posting.ID,
		"title":             posting.Title,
		"description":       posting.Description,
		"category":          posting.Category,
		"duration":          posting.Duration,
		"project_type":      posting.ProjectType,
		"difficulty_level":  posting.DifficultyLevel,
		"technologies":      posting.Technologies,
		"image_url":         utils.AbsoluteURL(ctl.Cfg.BaseURL, posting.ImageURL),
		"slug":              posting.Slug,
		"project_code":      posting.ProjectCode,
		"total_enrollments": posting.TotalEnrollments,
	}
}

// detailJSON is the full shape for the public detail page, pricing included.
func (ctl *Controller) detailJSON(posting *models.ProjectPosting) fiber.Map {
	detail := ctl.summaryJSON(posting)
	detail["detailed_description"] = posting.DetailedDescription
	detail["prerequisites"] = posting.Prerequisites
	detail["learning_outcomes"] = posting.LearningOutcomes
	detail["price"] = posting.Price
	detail["original_price"] = posting.OriginalPrice
	detail["course_fees"] = posting.CourseFees
	detail["total_amount"] = posting.TotalAmount
	detail["discount"] = posting.Discount
	detail["level"] = posting.Level
	detail["rating"] = posting.Rating
	detail["students_count"] = posting.StudentsCount
	return detail
}

func adminPostingJSON(posting *models.ProjectPosting) fiber.Map {
	return fiber.Map{
		"id":                   posting.ID,
		"title":                posting.Title,
		"description":          posting.Description,
		"detailed_description": posting.DetailedDescription,
		"category":             posting.Category,
		"duration":             posting.Duration,
		"project_type":         posting.ProjectType,
		"technologies":         posting.Technologies,
		"difficulty_level":     posting.DifficultyLevel,
		"prerequisites":        posting.Prerequisites,
		"learning_outcomes":    posting.LearningOutcomes,
		"image_url":            posting.ImageURL,
		"project_code":         posting.ProjectCode,
		"slug":                 posting.Slug,
		"is_active":            posting.IsActive,
		"total_enrollments":    posting.TotalEnrollments,
		"price":                posting.Price,
		"original_price":       posting.OriginalPrice,
		"course_fees":          posting.CourseFees,
		"total_amount":         posting.TotalAmount,
		"discount":             posting.Discount,
		"level":                posting.Level,
		"rating":               posting.Rating,
		"students_count":       posting.StudentsCount,
		"created_at":           posting.CreatedAt.Format(time.RFC3339),
		"updated_at":           posting.UpdatedAt.Format(time.RFC3339),
	}
}
