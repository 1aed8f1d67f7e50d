package courseController

import (
	"errors"
	"log"
	"strconv"

	"pcl-backend/middleware"
	"pcl-backend/models"
	"pcl-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// slugRetries bounds the create loop when a concurrent insert takes the
// probed slug first.
const slugRetries = 5

// AdminList returns every course, inactive ones included.
func (ctl *Controller) AdminList(c *fiber.Ctx) error {
	var courses []models.Course
	if err := ctl.DB.Find(&courses).Error; err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}

	list := make([]fiber.Map, 0, len(courses))
	for i := range courses {
		list = append(list, adminCourseJSON(&courses[i]))
	}
	return middleware.Success(c, fiber.StatusOK, fiber.Map{"courses": list})
}

// Create adds a new course from a multipart form. The slug is derived from
// the title and the course code is generated when not supplied.
func (ctl *Controller) Create(c *fiber.Ctx) error {
	var imageURL string
	if file, err := c.FormFile("image"); err == nil {
		saved, err := ctl.Files.Save(file, utils.CategoryCourses)
		if err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, err.Error())
		}
		imageURL = saved
	}

	fields := utils.FormFields(c)

	if fields["title"] == "" {
		return middleware.Error(c, fiber.StatusBadRequest, "Title is required")
	}

	courseCode := fields["course_code"]
	if courseCode == "" {
		courseCode = utils.GenerateCode("PCL")
	}

	finalImageURL := imageURL
	if finalImageURL == "" {
		finalImageURL = fields["image_url"]
	}

	rating := 4.5
	if parsed := utils.FloatPtr(fields, "rating"); parsed != nil {
		rating = *parsed
	}

	course := models.Course{
		Title:               fields["title"],
		Description:         fields["description"],
		DetailedDescription: fields["detailed_description"],
		Level:               stringOr(fields["level"], "Beginner"),
		Rating:              rating,
		Students:            stringOr(fields["students"], "0"),
		Duration:            fields["duration"],
		Price:               stringOr(fields["price"], "0"),
		OriginalPrice:       stringOr(fields["original_price"], "0"),
		Discount:            fields["discount"],
		ImageURL:            finalImageURL,
		Category:            fields["category"],
		Instructor:          fields["instructor"],
		CourseFees:          stringOr(fields["course_fees"], "0"),
		CourseCode:          courseCode,
		TotalAmount:         stringOr(fields["total_amount"], "0"),
		Features:            datatypes.NewJSONSlice(utils.ParseStringList(fields["features"])),
	}

	// The unique index is the real guard on the slug; retry when a
	// concurrent create wins the probe.
	var err error
	for attempt := 0; attempt < slugRetries; attempt++ {
		course.Slug = utils.NextFreeSlug(ctl.DB, &models.Course{}, course.Title)
		err = ctl.DB.Create(&course).Error
		if !utils.IsDuplicateKey(err) {
			break
		}
		course.ID = 0
	}
	if err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to create course")
	}

	return middleware.Success(c, fiber.StatusCreated, fiber.Map{
		"course_id": course.ID,
		"slug":      course.Slug,
		"image_url": finalImageURL,
		"message":   "Course created successfully",
	})
}

// Update applies a partial update. Fields absent from the form stay
// unchanged; a new image upload takes precedence over an image_url value.
func (ctl *Controller) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Course not found")
	}

	var course models.Course
	if err := ctl.DB.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.Error(c, fiber.StatusNotFound, "Course not found")
		}
		log.Printf("Error loading course %d: %v", id, err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to update course")
	}

	fields := utils.FormFields(c)

	patch := models.CoursePatch{
		Title:               utils.StrPtr(fields, "title"),
		Description:         utils.StrPtr(fields, "description"),
		DetailedDescription: utils.StrPtr(fields, "detailed_description"),
		Level:               utils.StrPtr(fields, "level"),
		Rating:              utils.FloatPtr(fields, "rating"),
		Students:            utils.StrPtr(fields, "students"),
		Duration:            utils.StrPtr(fields, "duration"),
		Price:               utils.StrPtr(fields, "price"),
		OriginalPrice:       utils.StrPtr(fields, "original_price"),
		Discount:            utils.StrPtr(fields, "discount"),
		Category:            utils.StrPtr(fields, "category"),
		Instructor:          utils.StrPtr(fields, "instructor"),
		CourseFees:          utils.StrPtr(fields, "course_fees"),
		TotalAmount:         utils.StrPtr(fields, "total_amount"),
		Features:            utils.ListPtr(fields, "features"),
	}

	if file, err := c.FormFile("image"); err == nil {
		saved, err := ctl.Files.Save(file, utils.CategoryCourses)
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

	patch.Apply(&course)

	if err := ctl.DB.Save(&course).Error; err != nil {
		log.Printf("Error updating course %d: %v", id, err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to update course")
	}

	return middleware.Success(c, fiber.StatusOK, fiber.Map{
		"message":   "Course updated successfully",
		"image_url": course.ImageURL,
	})
}

// Delete marks the course inactive. The row stays for referential history.
func (ctl *Controller) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Course not found")
	}

	var course models.Course
	if err := ctl.DB.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.Error(c, fiber.StatusNotFound, "Course not found")
		}
		log.Printf("Error loading course %d: %v", id, err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to delete course")
	}

	course.IsActive = false
	if err := ctl.DB.Save(&course).Error; err != nil {
		log.Printf("Error deleting course %d: %v", id, err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to delete course")
	}

	return middleware.Success(c, fiber.StatusOK, fiber.Map{"message": "Course deleted successfully"})
}

func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
