package projectController

import (
	"errors"
	"log"

	"pcl-backend/middleware"
	"pcl-backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PublicList returns every active project posting in summary form.
func (ctl *Controller) PublicList(c *fiber.Ctx) error {
	var postings []models.ProjectPosting
	if err := ctl.DB.Where("is_active = ?", true).Find(&postings).Error; err != nil {
		log.Printf("Error fetching public projects: %v", err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to fetch projects")
	}

	list := make([]fiber.Map, 0, len(postings))
	for i := range postings {
		list = append(list, ctl.summaryJSON(&postings[i]))
	}
	return middleware.Success(c, fiber.StatusOK, fiber.Map{"projects": list})
}

// PublicGet returns one active posting by slug with full detail.
func (ctl *Controller) PublicGet(c *fiber.Ctx) error {
	var posting models.ProjectPosting
	err := ctl.DB.Where("slug = ? AND is_active = ?", c.Params("slug"), true).First(&posting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.Error(c, fiber.StatusNotFound, "Project not found")
		}
		log.Printf("Error fetching project %s: %v", c.Params("slug"), err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to fetch project")
	}

	return middleware.Success(c, fiber.StatusOK, fiber.Map{"project": ctl.detailJSON(&posting)})
}
