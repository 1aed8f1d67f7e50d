package projectController

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"pcl-backend/middleware"
	"pcl-backend/models"
	"pcl-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const slugRetries = 5

// AdminList returns every project posting, inactive ones included.
func (ctl *Controller) AdminList(c *fiber.Ctx) error {
	var postings []models.ProjectPosting
	if err := ctl.DB.Find(&postings).Error; err != nil {
		log.Printf("Error fetching projects: %v", err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to fetch projects")
	}

	list := make([]fiber.Map, 0, len(postings))
	for i := range postings {
		list = append(list, adminPostingJSON(&postings[i]))
	}
	return middleware.Success(c, fiber.StatusOK, fiber.Map{"projects": list})
}

// Create adds a new project posting from a multipart form.
func (ctl *Controller) Create(c *fiber.Ctx) error {
	var imageURL string
	if file, err := c.FormFile("image"); err == nil {
		saved, err := ctl.Files.Save(file, utils.CategoryProjects)
		if err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, err.Error())
		}
		imageURL = saved
	}

	fields := utils.FormFields(c)

	if fields["title"] == "" {
		return middleware.Error(c, fiber.StatusBadRequest, "Title is required")
	}

	projectCode := fields["project_code"]
	if projectCode == "" {
		projectCode = utils.GenerateCode("PROJ")
	}

	finalImageURL := imageURL
	if finalImageURL == "" {
		finalImageURL = fields["image_url"]
	}

	isActive := true
	if value, ok := fields["is_active"]; ok {
		isActive = strings.EqualFold(value, "true")
	}

	rating := 4.5
	if parsed := utils.FloatPtr(fields, "rating"); parsed != nil {
		rating = *parsed
	}

	posting := models.ProjectPosting{
		Title:               fields["title"],
		Description:         fields["description"],
		DetailedDescription: fields["detailed_description"],
		Category:            fields["category"],
		Duration:            stringOr(fields["duration"], "4 Weeks"),
		ProjectType:         stringOr(fields["project_type"], "individual"),
		Technologies:        datatypes.NewJSONSlice(utils.ParseStringList(fields["technologies"])),
		DifficultyLevel:     stringOr(fields["difficulty_level"], "Intermediate"),
		Prerequisites:       datatypes.NewJSONSlice(utils.ParseStringList(fields["prerequisites"])),
		LearningOutcomes:    datatypes.NewJSONSlice(utils.ParseStringList(fields["learning_outcomes"])),
		ImageURL:            finalImageURL,
		ProjectCode:         projectCode,
		IsActive:            isActive,
		Price:               fields["price"],
		OriginalPrice:       fields["original_price"],
		CourseFees:          fields["course_fees"],
		TotalAmount:         fields["total_amount"],
		Discount:            fields["discount"],
		Level:               fields["level"],
		Rating:              rating,
		StudentsCount:       stringOr(fields["students_count"], "0"),
	}

	var err error
	for attempt := 0; attempt < slugRetries; attempt++ {
		posting.Slug = utils.NextFreeSlug(ctl.DB, &models.ProjectPosting{}, posting.Title)
		err = ctl.DB.Create(&posting).Error
		if !utils.IsDuplicateKey(err) {
			break
		}
		posting.ID = 0
	}
	if err != nil {
		log.Printf("Error creating project: %v", err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to create project")
	}

	return middleware.Success(c, fiber.StatusCreated, fiber.Map{
		"project_id": posting.ID,
		"slug":       posting.Slug,
		"image_url":  finalImageURL,
		"message":    "Project created successfully",
	})
}

// Update applies a partial update to a posting.
func (ctl *Controller) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Project not found")
	}

	var posting models.ProjectPosting
	if err := ctl.DB.First(&posting, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.Error(c, fiber.StatusNotFound, "Project not found")
		}
		log.Printf("Error loading project %d: %v", id, err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to update project")
	}

	fields := utils.FormFields(c)

	patch := models.ProjectPostingPatch{
		Title:               utils.StrPtr(fields, "title"),
		Description:         utils.StrPtr(fields, "description"),
		DetailedDescription: utils.StrPtr(fields, "detailed_description"),
		Category:            utils.StrPtr(fields, "category"),
		Duration:            utils.StrPtr(fields, "duration"),
		ProjectType:         utils.StrPtr(fields, "project_type"),
		Technologies:        utils.ListPtr(fields, "technologies"),
		DifficultyLevel:     utils.StrPtr(fields, "difficulty_level"),
		Prerequisites:       utils.ListPtr(fields, "prerequisites"),
		LearningOutcomes:    utils.ListPtr(fields, "learning_outcomes"),
		IsActive:            utils.BoolPtr(fields, "is_active"),
		Price:               utils.StrPtr(fields, "price"),
		OriginalPrice:       utils.StrPtr(fields, "original_price"),
		CourseFees:          utils.StrPtr(fields, "course_fees"),
		TotalAmount:         utils.StrPtr(fields, "total_amount"),
		Discount:            utils.StrPtr(fields, "discount"),
		Level:               utils.StrPtr(fields, "level"),
		Rating:              utils.FloatPtr(fields, "rating"),
		StudentsCount:       utils.StrPtr(fields, "students_count"),
	}

	if file, err := c.FormFile("image"); err == nil {
		saved, err := ctl.Files.Save(file, utils.CategoryProjects)
		if err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, err.Error())
		}
		if saved != "" {
			patch.ImageURL = &saved
		}
	}
	if patch.ImageURL == nil {
		patch.ImageURL = utils.StrPtr(fields, "image_url")
	}

	patch.Apply(&posting)

	if err := ctl.DB.Save(&posting).Error; err != nil {
		log.Printf("Error updating project %d: %v", id, err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to update project")
	}

	return middleware.Success(c, fiber.StatusOK, fiber.Map{
		"message":   "Project updated successfully",
		"image_url": posting.ImageURL,
	})
}

// Delete marks the posting inactive.
func (ctl *Controller) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Project not found")
	}

	var posting models.ProjectPosting
	if err := ctl.DB.First(&posting, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.Error(c, fiber.StatusNotFound, "Project not found")
		}
		log.Printf("Error loading project %d: %v", id, err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to delete project")
	}

	posting.IsActive = false
	if err := ctl.DB.Save(&posting).Error; err != nil {
		log.Printf("Error deleting project %d: %v", id, err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to delete project")
	}

	return middleware.Success(c, fiber.StatusOK, fiber.Map{"message": "Project deleted successfully"})
}

func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
