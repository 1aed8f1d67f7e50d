package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Application review statuses move pending -> approved | rejected.
const (
	ApplicationPending  = "pending"
	ApplicationApproved = "approved"
	ApplicationRejected = "rejected"
)

// InternshipPosting is a public internship listing.
type InternshipPosting struct {
	gorm.Model
	Title               string                      `json:"title" gorm:"not null"`
	Description         string                      `json:"description"`
	DetailedDescription string                      `json:"detailed_description"`
	Category            string                      `json:"category"`
	Duration            string                      `json:"duration"`
	InternshipType      string                      `json:"internship_type"` // remote, onsite, hybrid
	Location            string                      `json:"location"`
	Skills              datatypes.JSONSlice[string] `json:"skills"`
	Eligibility         string                      `json:"eligibility"`
	Perks               datatypes.JSONSlice[string] `json:"perks"`
	ImageURL            string                      `json:"image_url"`
	InternshipCode      string                      `json:"internship_code" gorm:"uniqueIndex"`
	Slug                string                      `json:"slug" gorm:"uniqueIndex"`
	IsActive            bool                        `json:"is_active" gorm:"default:true"`
	TotalApplications   int                         `json:"total_applications" gorm:"default:0"`
}

// InternshipApplication is a submitted application against a posting.
// EnrollmentID is the external-facing identifier (INT_APP_...).
type InternshipApplication struct {
	gorm.Model
	EnrollmentID       string     `json:"enrollment_id" gorm:"uniqueIndex;not null"`
	InternshipID       uint       `json:"internship_id" gorm:"index;not null"`
	Fname              string     `json:"fname" gorm:"not null"`
	Lname              string     `json:"lname" gorm:"not null"`
	Email              string     `json:"email" gorm:"not null"`
	Mobile             string     `json:"mobile" gorm:"not null"`
	ExperienceLevel    string     `json:"experience_level" gorm:"default:'Fresher'"`
	PortfolioURL       string     `json:"portfolio_url"`
	GithubURL          string     `json:"github_url"`
	Motivation         string     `json:"motivation" gorm:"not null"`
	ResumePath         string     `json:"resume_path"`
	GSTIN              string     `json:"gstin"`
	BillingAddress     string     `json:"billing_address"`
	Landmark           string     `json:"landmark"`
	District           string     `json:"district"`
	State              string     `json:"state"`
	PreferredStartDate *time.Time `json:"preferred_start_date" gorm:"type:date"`
	PreferredTime      string     `json:"preferred_time" gorm:"default:'Full-Time'"`
	Availability       string     `json:"availability" gorm:"default:'Immediate'"`
	PaymentStatus      string     `json:"payment_status" gorm:"default:'pending'"`
	ValidationCode     string     `json:"-"`
}

// InternshipPostingPatch carries the fields of a partial posting update.
type InternshipPostingPatch struct {
	Title               *string
	Description         *string
	DetailedDescription *string
	Category            *string
	Duration            *string
	InternshipType      *string
	Location            *string
	Skills              *[]string
	Eligibility         *string
	Perks               *[]string
	ImageURL            *string
	IsActive            *bool
}

func (p InternshipPostingPatch) Apply(posting *InternshipPosting) {
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
	if p.InternshipType != nil {
		posting.InternshipType = *p.InternshipType
	}
	if p.Location != nil {
		posting.Location = *p.Location
	}
	if p.Skills != nil {
		posting.Skills = datatypes.NewJSONSlice(*p.Skills)
	}
	if p.Eligibility != nil {
		posting.Eligibility = *p.Eligibility
	}
	if p.Perks != nil {
		posting.Perks = datatypes.NewJSONSlice(*p.Perks)
	}
	if p.ImageURL != nil {
		posting.ImageURL = *p.ImageURL
	}
	if p.IsActive != nil {
		posting.IsActive = *p.IsActive
	}
}
