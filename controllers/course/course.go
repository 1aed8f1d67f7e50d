package courseController

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

// courseJSON serializes a course for the public listings. Relative image
// paths are rewritten against the configured public origin.
func (ctl *Controller) courseJSON(course *models.Course) fiber.Map {
	return fiber.Map{
		"id":                   course.ID,
		"title":                course.Title,
		"description":          course.Description,
		"detailed_description": course.DetailedDescription,
		"level":                course.Level,
		"rating":               course.Rating,
		"students":             course.Students,
		"duration":             course.Duration,
		"price":                course.Price,
		"original_price":       course.OriginalPrice,
		"discount":             course.Discount,
		"image_url":            utils.AbsoluteURL(ctl.Cfg.BaseURL, course.ImageURL),
		"category":             course.Category,
		"instructor":           course.Instructor,
		"slug":                 course.Slug,
		"course_fees":          course.CourseFees,
		"course_code":          course.CourseCode,
		"total_amount":         course.TotalAmount,
		"features":             course.Features,
	}
}

// adminCourseJSON serializes a course for the admin dashboard, including the
// lifecycle fields and the raw stored image path.
func adminCourseJSON(course *models.Course) fiber.Map {
	return fiber.Map{
		"id":                   course.ID,
		"title":                course.Title,
		"description":          course.Description,
		"detailed_description": course.DetailedDescription,
		"level":                course.Level,
		"rating":               course.Rating,
		"students":             course.Students,
		"duration":             course.Duration,
		"price":                course.Price,
		"original_price":       course.OriginalPrice,
		"discount":             course.Discount,
		"image_url":            course.ImageURL,
		"category":             course.Category,
		"instructor":           course.Instructor,
		"slug":                 course.Slug,
		"course_fees":          course.CourseFees,
		"course_code":          course.CourseCode,
		"total_amount":         course.TotalAmount,
		"features":             course.Features,
		"is_active":            course.IsActive,
		"created_at":           course.CreatedAt.Format(time.RFC3339),
		"updated_at":           course.UpdatedAt.Format(time.RFC3339),
	}
}
