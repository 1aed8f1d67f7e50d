package models

import (
	"gorm.io/gorm"
)

// Lead-capture records. Insert-only, no lifecycle beyond creation.

type CourseEnrollment struct {
	gorm.Model
	FullName string `json:"full_name" gorm:"not null"`
	Email    string `json:"email" gorm:"not null"`
	Mobile   string `json:"mobile" gorm:"not null"`
	Type     string `json:"type"`
	Message  string `json:"message"`
}

type DemoRequest struct {
	gorm.Model
	FullName string `json:"full_name" gorm:"not null"`
	Email    string `json:"email" gorm:"not null"`
	Type     string `json:"type"`
	Mobile   string `json:"mobile" gorm:"not null"`
}

type Inquiry struct {
	gorm.Model
	FullName string `json:"full_name" gorm:"not null"`
	Email    string `json:"email" gorm:"not null"`
	Mobile   string `json:"mobile" gorm:"not null"`
	Type     string `json:"type"`
	Message  string `json:"message"`
}

type PclInfo struct {
	gorm.Model
	Fname   string `json:"fname" gorm:"not null"`
	Lname   string `json:"lname" gorm:"not null"`
	Email   string `json:"email" gorm:"not null"`
	Mobile  string `json:"mobile" gorm:"not null"`
	Message string `json:"message"`
}

// Internship is the legacy free-form internship interest record, kept for the
// old /internship form. New applications go through InternshipApplication.
type Internship struct {
	gorm.Model
	Fname      string `json:"fname" gorm:"not null"`
	Lname      string `json:"lname" gorm:"not null"`
	Email      string `json:"email" gorm:"not null"`
	Mobile     string `json:"mobile" gorm:"not null"`
	Internship string `json:"internship" gorm:"not null"`
	Message    string `json:"message"`
	CvPath     string `json:"cv_path"`
}
