package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProjectPosting is a public guided-project listing.
type ProjectPosting struct {
	gorm.Model
	Title               string                      `json:"title" gorm:"not null"`
	Description         string                      `json:"description"`
	DetailedDescription string                      `json:"detailed_description"`
	Category            string                      `json:"category"`
	Duration            string                      `json:"duration"`
	ProjectType         string                      `json:"project_type"` // individual, team
	Technologies        datatypes.JSONSlice[string] `json:"technologies"`
	DifficultyLevel     string                      `json:"difficulty_level"`
	Prerequisites       datatypes.JSONSlice[string] `json:"prerequisites"`
	LearningOutcomes    datatypes.JSONSlice[string] `json:"learning_outcomes"`
	ImageURL            string                      `json:"image_url"`
	ProjectCode         string                      `json:"project_code" gorm:"uniqueIndex"`
	Slug                string                      `json:"slug" gorm:"uniqueIndex;not null"`
	IsActive            bool                        `json:"is_active" gorm:"default:true"`
	TotalEnrollments    int                         `json:"total_enrollments" gorm:"default:0"`

	Price         string  `json:"price"`
	OriginalPrice string  `json:"original_price"`
	CourseFees    string  `json:"course_fees"`
	TotalAmount   string  `json:"total_amount"`
	Discount      string  `json:"discount"`
	Level         string  `json:"level"`
	Rating        float64 `json:"rating" gorm:"default:4.5"`
	StudentsCount string  `json:"students_count" gorm:"default:'0'"`
}

// ProjectEnrollment is a submitted enrollment against a project posting.
// EnrollmentID is the external-facing identifier (PROJ_ENR_...).
type ProjectEnrollment struct {
	gorm.Model
	EnrollmentID       string     `json:"enrollment_id" gorm:"uniqueIndex;not null"`
	ProjectID          uint       `json:"project_id" gorm:"index;not null"`
	StudentName        string     `json:"student_name"`
	Email              string     `json:"email"`
	Mobile             string     `json:"mobile"`
	GSTIN              string     `json:"gstin"`
	BillingAddress     string     `json:"billing_address"`
	Landmark           string     `json:"landmark"`
	District           string     `json:"district"`
	State              string     `json:"state"`
	PreferredStartDate *time.Time `json:"preferred_start_date" gorm:"type:date"`
	PreferredTime      string     `json:"preferred_time"`
	TeamSize           string     `json:"team_size"`
	PaymentMethod      string     `json:"payment_method"`
	PaymentStatus      string     `json:"payment_status" gorm:"default:'pending'"`
	Amount             float64    `json:"amount"`
	TransactionID      string     `json:"transaction_id"`
	ValidationCode     string     `json:"-"`
	PaymentScreenshot  string     `json:"payment_screenshot"`
}

// ProjectPostingPatch carries the fields of a partial posting update.
type ProjectPostingPatch struct {
	Title               *string
	Description         *string
	DetailedDescription *string
	Category            *string
	Duration            *string
	ProjectType         *string
	Technologies        *[]string
	DifficultyLevel     *string
	Prerequisites       *[]string
	LearningOutcomes    *[]string
	ImageURL            *string
	IsActive            *bool
	Price               *string
	OriginalPrice       *string
	CourseFees          *string
	TotalAmount         *string
	Discount            *string
	Level               *string
	Rating              *float64
	StudentsCount       *string
}

func (p ProjectPostingPatch) Apply(posting *ProjectPosting) {
	if p.Title != nil {
		posting.Title = *p.Title
	}
	if p.Description != nil {
		posting.Description = *p.Description
	}
	if p.DetailedDescription != nil {
		posting.DetailedDescription = *p.DetailedDescription
	}
	if p.Category != nil {
		posting.Category = *p.Category
	}
	if p.Duration != nil {
		posting.Duration = *p.Duration
	}
	if p.ProjectType != nil {
		posting.ProjectType = *p.ProjectType
	}
	if p.Technologies != nil {
		posting.Technologies = datatypes.NewJSONSlice(*p.Technologies)
	}
	if p.DifficultyLevel != nil {
		posting.DifficultyLevel = *p.DifficultyLevel
	}
	if p.Prerequisites != nil {
		posting.Prerequisites = datatypes.NewJSONSlice(*p.Prerequisites)
	}
	if p.LearningOutcomes != nil {
		posting.LearningOutcomes = datatypes.NewJSONSlice(*p.LearningOutcomes)
	}
	if p.ImageURL != nil {
		posting.ImageURL = *p.ImageURL
	}
	if p.IsActive != nil {
		posting.IsActive = *p.IsActive
	}
	if p.Price != nil {
		posting.Price = *p.Price
	}
	if p.OriginalPrice != nil {
		posting.OriginalPrice = *p.OriginalPrice
	}
	if p.CourseFees != nil {
		posting.CourseFees = *p.CourseFees
	}
	if p.TotalAmount != nil {
		posting.TotalAmount = *p.TotalAmount
	}
	if p.Discount != nil {
		posting.Discount = *p.Discount
	}
	if p.Level != nil {
		posting.Level = *p.Level
	}
	if p.Rating != nil {
		posting.Rating = *p.Rating
	}
	if p.StudentsCount != nil {
		posting.StudentsCount = *p.StudentsCount
	}
}
