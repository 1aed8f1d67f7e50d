package courseController

import (
	"errors"
	"log"

	"pcl-backend/middleware"
	"pcl-backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PublicList returns every active course with absolute image URLs.
func (ctl *Controller) PublicList(c *fiber.Ctx) error {
	var courses []models.Course
	if err := ctl.DB.Where("is_active = ?", true).Find(&courses).Error; err != nil {
		log.Printf("Error fetching public courses: %v", err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}

	list := make([]fiber.Map, 0, len(courses))
	for i := range courses {
		list = append(list, ctl.courseJSON(&courses[i]))
	}
	return middleware.Success(c, fiber.StatusOK, fiber.Map{"courses": list})
}

// PublicGet returns one active course by slug.
func (ctl *Controller) PublicGet(c *fiber.Ctx) error {
	var course models.Course
	err := ctl.DB.Where("slug = ? AND is_active = ?", c.Params("slug"), true).First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.Error(c, fiber.StatusNotFound, "Course not found")
		}
		log.Printf("Error fetching course %s: %v", c.Params("slug"), err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}

	return middleware.Success(c, fiber.StatusOK, fiber.Map{"course": ctl.courseJSON(&course)})
}
