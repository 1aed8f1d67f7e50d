package courseController

import (
	"errors"
	"log"
	"strconv"
	"time"

	"pcl-backend/middleware"
	"pcl-backend/models"
	"pcl-backend/utils"
	statusValidator "pcl-backend/validators/status"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// paymentRow is a payment joined with its course's title and code for the
// admin listing.
type paymentRow struct {
	models.Payment
	CourseTitle string
	CourseCode  string
}

// CreatePayment records a course payment intake. The amount is taken from
// the course's total, never from the client.
func (ctl *Controller) CreatePayment(c *fiber.Ctx) error {
	data := utils.RequestData(c)

	var course models.Course
	err := ctl.DB.Where("slug = ?", data["course_slug"]).First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.Error(c, fiber.StatusNotFound, "Course not found")
		}
		log.Printf("Error resolving course for payment: %v", err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to process payment request")
	}

	amount, _ := strconv.ParseFloat(course.TotalAmount, 64)

	payment := models.Payment{
		PaymentID:          utils.GenerateExternalID("PAY_"),
		CourseID:           course.ID,
		StudentName:        data["name"],
		Email:              data["email"],
		Mobile:             data["mobile"],
		GSTIN:              data["gstin"],
		BillingAddress:     data["billing_address"],
		Landmark:           data["landmark"],
		District:           data["district"],
		State:              data["state"],
		PreferredStartDate: utils.ParseDate(data["start_date"]),
		TrainingMode:       data["training_mode"],
		BatchPreference:    data["batch_preference"],
		PaymentMethod:      data["payment_method"],
		PaymentStatus:      models.PaymentPending,
		Amount:             amount,
	}

	if err := ctl.DB.Create(&payment).Error; err != nil {
		log.Printf("Error creating payment: %v", err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to process payment request")
	}

	ctl.Mailer.Notify(map[string]string{
		"fullName": data["name"],
		"email":    data["email"],
		"mobile":   data["mobile"],
		"type":     "Course Payment",
		"message":  "Course: " + course.Title + "\nPayment ID: " + payment.PaymentID + "\nAmount: " + course.TotalAmount,
	}, "")

	return middleware.Success(c, fiber.StatusCreated, fiber.Map{
		"payment_id": payment.PaymentID,
		"course":     course.Title,
		"amount":     course.TotalAmount,
	})
}

// AdminListPayments returns all payments joined with course title and code.
func (ctl *Controller) AdminListPayments(c *fiber.Ctx) error {
	var rows []paymentRow
	err := ctl.DB.Table("payments").
		Select("payments.*, courses.title AS course_title, courses.course_code AS course_code").
		Joins("JOIN courses ON courses.id = payments.course_id").
		Where("payments.deleted_at IS NULL").
		Scan(&rows).Error
	if err != nil {
		log.Printf("Error fetching payments: %v", err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	list := make([]fiber.Map, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		var startDate interface{}
		if row.PreferredStartDate != nil {
			startDate = row.PreferredStartDate.Format("2006-01-02")
		}
		list = append(list, fiber.Map{
			"id":                   row.ID,
			"payment_id":           row.PaymentID,
			"student_name":         row.StudentName,
			"email":                row.Email,
			"mobile":               row.Mobile,
			"course_title":         row.CourseTitle,
			"course_code":          row.CourseCode,
			"payment_method":       row.PaymentMethod,
			"payment_status":       row.PaymentStatus,
			"amount":               row.Amount,
			"training_mode":        row.TrainingMode,
			"preferred_start_date": startDate,
			"created_at":           row.CreatedAt.Format(time.RFC3339),
		})
	}
	return middleware.Success(c, fiber.StatusOK, fiber.Map{"payments": list})
}

// UpdatePaymentStatus sets the payment's status and transaction id.
func (ctl *Controller) UpdatePaymentStatus(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStatus").(*statusValidator.StatusUpdateRequest)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Payment not found")
	}

	var payment models.Payment
	if err := ctl.DB.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.Error(c, fiber.StatusNotFound, "Payment not found")
		}
		log.Printf("Error loading payment %d: %v", id, err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to update payment status")
	}

	payment.PaymentStatus = reqData.Status
	payment.TransactionID = reqData.TransactionID
	if err := ctl.DB.Save(&payment).Error; err != nil {
		log.Printf("Error updating payment %d: %v", id, err)
		return middleware.Error(c, fiber.StatusInternalServerError, "Failed to update payment status")
	}

	return middleware.Success(c, fiber.StatusOK, fiber.Map{"message": "Payment status updated"})
}
