package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course is a public course listing. Pricing fields are free-form strings
// coming straight from the admin dashboard.
type Course struct {
	gorm.Model
	Title               string                      `json:"title" gorm:"not null"`
	Description         string                      `json:"description"`
	DetailedDescription string                      `json:"detailed_description"`
	Level               string                      `json:"level"`
	Rating              float64                     `json:"rating" gorm:"default:4.5"`
	Students            string                      `json:"students" gorm:"default:'0'"`
	Duration            string                      `json:"duration"`
	Price               string                      `json:"price"`
	OriginalPrice       string                      `json:"original_price"`
	Discount            string                      `json:"discount"`
	ImageURL            string                      `json:"image_url"`
	Category            string                      `json:"category"`
	Instructor          string                      `json:"instructor"`
	Slug                string                      `json:"slug" gorm:"uniqueIndex;not null"`
	CourseFees          string                      `json:"course_fees"`
	CourseCode          string                      `json:"course_code" gorm:"uniqueIndex"`
	TotalAmount         string                      `json:"total_amount"`
	Features            datatypes.JSONSlice[string] `json:"features"`
	IsActive            bool                        `json:"is_active" gorm:"default:true"`
}

// CoursePatch carries the fields of a partial course update. Nil means the
// field was absent from the request and stays unchanged.
type CoursePatch struct {
	Title               *string
	Description         *string
	DetailedDescription *string
	Level               *string
	Rating              *float64
	Students            *string
	Duration            *string
	Price               *string
	OriginalPrice       *string
	Discount            *string
	Category            *string
	Instructor          *string
	CourseFees          *string
	TotalAmount         *string
	Features            *[]string
	ImageURL            *string
}

func (p CoursePatch) Apply(course *Course) {
	if p.Title != nil {
		course.Title = *p.Title
	}
	if p.Description != nil {
		course.Description = *p.Description
	}
	if p.DetailedDescription != nil {
		course.DetailedDescription = *p.DetailedDescription
	}
	if p.Level != nil {
		course.Level = *p.Level
	}
	if p.Rating != nil {
		course.Rating = *p.Rating
	}
	if p.Students != nil {
		course.Students = *p.Students
	}
	if p.Duration != nil {
		course.Duration = *p.Duration
	}
	if p.Price != nil {
		course.Price = *p.Price
	}
	if p.OriginalPrice != nil {
		course.OriginalPrice = *p.OriginalPrice
	}
	if p.Discount != nil {
		course.Discount = *p.Discount
	}
	if p.Category != nil {
		course.Category = *p.Category
	}
	if p.Instructor != nil {
		course.Instructor = *p.Instructor
	}
	if p.CourseFees != nil {
		course.CourseFees = *p.CourseFees
	}
	if p.TotalAmount != nil {
		course.TotalAmount = *p.TotalAmount
	}
	if p.Features != nil {
		course.Features = datatypes.NewJSONSlice(*p.Features)
	}
	if p.ImageURL != nil {
		course.ImageURL = *p.ImageURL
	}
}
