package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment statuses move pending -> completed | failed.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Payment is a course payment-intake record submitted from the public
// checkout form. PaymentID is the external-facing identifier (PAY_...).
type Payment struct {
	gorm.Model
	PaymentID          string     `json:"payment_id" gorm:"uniqueIndex;not null"`
	CourseID           uint       `json:"course_id" gorm:"index;not null"`
	StudentName        string     `json:"student_name"`
	Email              string     `json:"email"`
	Mobile             string     `json:"mobile"`
	GSTIN              string     `json:"gstin"`
	BillingAddress     string     `json:"billing_address"`
	Landmark           string     `json:"landmark"`
	District           string     `json:"district"`
	State              string     `json:"state"`
	PreferredStartDate *time.Time `json:"preferred_start_date" gorm:"type:date"`
	TrainingMode       string     `json:"training_mode"`
	BatchPreference    string     `json:"batch_preference"` // weekdays or weekend
	PaymentMethod      string     `json:"payment_method"`   // neft, gpay, razorpay
	PaymentStatus      string     `json:"payment_status" gorm:"default:'pending'"`
	Amount             float64    `json:"amount"`
	TransactionID      string     `json:"transaction_id"`
	PaymentScreenshot  string     `json:"payment_screenshot"`
}
