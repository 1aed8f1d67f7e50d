package internshipController

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

// AdminList returns every internship posting, inactive ones included.
func (ctl *Controller) AdminList(c *fiber.Ctx) error {
	var postings []models.InternshipPosting
	if err := ctl.DB.Find(&postings).Error; err != nil {
		log.Printf("Error fetching internships: %v", err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to fetch internships")
	}

	list := make([]fiber.Map, 0, len(postings))
	for i := range postings {
		list = append(list, adminPostingJSON(&postings[i]))
	}
	return middleware.Success(c, fiber.StatusOK, fiber.Map{"internships": list})
}

// Create adds a new internship posting from a multipart form.
func (ctl *Controller) Create(c *fiber.Ctx) error {
	var imageURL string
	if file, err := c.FormFile("image"); err == nil {
		saved, err := ctl.Files.Save(file, utils.CategoryInternships)
		if err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, err.Error())
		}
		imageURL = saved
	}

	fields := utils.FormFields(c)

	if fields["title"] == "" {
		return middleware.Error(c, fiber.StatusBadRequest, "Title is required")
	}

	internshipCode := fields["internship_code"]
	if internshipCode == "" {
		internshipCode = utils.GenerateCode("INT")
	}

	finalImageURL := imageURL
	if finalImageURL == "" {
		finalImageURL = fields["image_url"]
	}

	isActive := true
	if value, ok := fields["is_active"]; ok {
		isActive = strings.EqualFold(value, "true")
	}

	duration := fields["duration"]
	if duration == "" {
		duration = "3 Months"
	}
	internshipType := fields["internship_type"]
	if internshipType == "" {
		internshipType = "remote"
	}

	posting := models.InternshipPosting{
		Title:               fields["title"],
		Description:         fields["description"],
		DetailedDescription: fields["detailed_description"],
		Category:            fields["category"],
		Duration:            duration,
		InternshipType:      internshipType,
		Location:            fields["location"],
		Skills:              datatypes.NewJSONSlice(utils.ParseStringList(fields["skills"])),
		Eligibility:         fields["eligibility"],
		Perks:               datatypes.NewJSONSlice(utils.ParseStringList(fields["perks"])),
		ImageURL:            finalImageURL,
		InternshipCode:      internshipCode,
		IsActive:            isActive,
	}

	var err error
	for attempt := 0; attempt < slugRetries; attempt++ {
		posting.Slug = utils.NextFreeSlug(ctl.DB, &models.InternshipPosting{}, posting.Title)
		err = ctl.DB.Create(&posting).Error
		if !utils.IsDuplicateKey(err) {
			break
		}
		posting.ID = 0
	}
	if err != nil {
		log.Printf("Error creating internship: %v", err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to create internship")
	}

	return middleware.Success(c, fiber.StatusCreated, fiber.Map{
		"internship_id": posting.ID,
		"slug":          posting.Slug,
		"image_url":     finalImageURL,
		"message":       "Internship created successfully",
	})
}

// Update applies a partial update to a posting.
func (ctl *Controller) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Internship not found")
	}

	var posting models.InternshipPosting
	if err := ctl.DB.First(&posting, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.Error(c, fiber.StatusNotFound, "Internship not found")
		}
		log.Printf("Error loading internship %d: %v", id, err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to update internship")
	}

	fields := utils.FormFields(c)

	patch := models.InternshipPostingPatch{
		Title:               utils.StrPtr(fields, "title"),
		Description:         utils.StrPtr(fields, "description"),
		DetailedDescription: utils.StrPtr(fields, "detailed_description"),
		Category:            utils.StrPtr(fields, "category"),
		Duration:            utils.StrPtr(fields, "duration"),
		InternshipType:      utils.StrPtr(fields, "internship_type"),
		Location:            utils.StrPtr(fields, "location"),
		Skills:              utils.ListPtr(fields, "skills"),
		Eligibility:         utils.StrPtr(fields, "eligibility"),
		Perks:               utils.ListPtr(fields, "perks"),
		IsActive:            utils.BoolPtr(fields, "is_active"),
	}

	if file, err := c.FormFile("image"); err == nil {
		saved, err := ctl.Files.Save(file, utils.CategoryInternships)
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
		log.Printf("Error updating internship %d: %v", id, err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to update internship")
	}

	return middleware.Success(c, fiber.StatusOK, fiber.Map{
		"message":   "Internship updated successfully",
		"image_url": posting.ImageURL,
	})
}

// Delete marks the posting inactive.
func (ctl *Controller) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Internship not found")
	}

	var posting models.InternshipPosting
	if err := ctl.DB.First(&posting, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.Error(c, fiber.StatusNotFound, "Internship not found")
		}
		log.Printf("Error loading internship %d: %v", id, err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to delete internship")
	}

	posting.IsActive = false
	if err := ctl.DB.Save(&posting).Error; err != nil {
		log.Printf("Error deleting internship %d: %v", id, err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to delete internship")
	}

	return middleware.Success(c, fiber.StatusOK, fiber.Map{"message": "Internship deleted successfully"})
}
