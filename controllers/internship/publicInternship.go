package internshipController

import (
	"errors"
	"log"

	"pcl-backend/middleware"
	"pcl-backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PublicList returns every active internship posting in summary form.
func (ctl *Controller) PublicList(c *fiber.Ctx) error {
	var postings []models.InternshipPosting
	if err := ctl.DB.Where("is_active = ?", true).Find(&postings).Error; err != nil {
		log.Printf("Error fetching public internships: %v", err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to fetch internships")
	}

	list := make([]fiber.Map, 0, len(postings))
	for i := range postings {
		list = append(list, ctl.summaryJSON(&postings[i]))
	}
	return middleware.Success(c, fiber.StatusOK, fiber.Map{"internships": list})
}

// PublicGet returns one active posting by slug with full detail.
func (ctl *Controller) PublicGet(c *fiber.Ctx) error {
	var posting models.InternshipPosting
	err := ctl.DB.Where("slug = ? AND is_active = ?", c.Params("slug"), true).First(&posting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.Error(c, fiber.StatusNotFound, "Internship not found")
		}
		log.Printf("Error fetching internship %s: %v", c.Params("slug"), err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to fetch internship")
	}

	return middleware.Success(c, fiber.StatusOK, fiber.Map{"internship": ctl.detailJSON(&posting)})
}
