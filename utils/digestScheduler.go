package utils

import (
	"fmt"
	"log"

	"pcl-backend/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// InitializeDigestScheduler starts the daily pending-submissions digest.
func InitializeDigestScheduler(db *gorm.DB, mailer EmailService) *cron.Cron {
	log.Println("[DIGEST-SCHEDULER] Initializing digest scheduler...")

	c := cron.New()

	// Run daily at 8 AM
	c.AddFunc("0 8 * * *", func() {
		log.Println("[DIGEST-SCHEDULER] Running daily pending-submissions digest...")
		SendPendingDigest(db, mailer)
	})

	c.Start()
	log.Println("[DIGEST-SCHEDULER] Digest scheduler started - runs daily at 8 AM")
	return c
}

// SendPendingDigest mails the counts of submissions still awaiting review.
// Nothing is sent when no submission is pending.
func SendPendingDigest(db *gorm.DB, mailer EmailService) {
	var payments, applications, enrollments int64

	if err := db.Model(&models.Payment{}).Where("payment_status = ?", models.PaymentPending).Count(&payments).Error; err != nil {
		log.Printf("[DIGEST-SCHEDULER] Error counting pending payments: %v", err)
		return
	}
	if err := db.Model(&models.InternshipApplication{}).Where("payment_status = ?", models.ApplicationPending).Count(&applications).Error; err != nil {
		log.Printf("[DIGEST-SCHEDULER] Error counting pending applications: %v", err)
		return
	}
	if err := db.Model(&models.ProjectEnrollment{}).Where("payment_status = ?", models.PaymentPending).Count(&enrollments).Error; err != nil {
		log.Printf("[DIGEST-SCHEDULER] Error counting pending enrollments: %v", err)
		return
	}

	total := payments + applications + enrollments
	if total == 0 {
		log.Println("[DIGEST-SCHEDULER] Nothing pending, skipping digest")
		return
	}

	message := fmt.Sprintf(
		"Pending submissions awaiting review:\n\nCourse payments: %d\nInternship applications: %d\nProject enrollments: %d",
		payments, applications, enrollments,
	)

	sent := mailer.Notify(map[string]string{
		"fullName": "Admin Dashboard",
		"type":     "Daily Digest",
		"message":  message,
	}, "")
	if !sent {
		log.Println("[DIGEST-SCHEDULER] Digest email failed to send")
	}
}
