package courseController

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"pcl-backend/config"
	"pcl-backend/database"
	"pcl-backend/middleware"
	"pcl-backend/models"
	"pcl-backend/utils"
	statusValidator "pcl-backend/validators/status"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type recordingMailer struct {
	sent []map[string]string
}

func (m *recordingMailer) Notify(data map[string]string, attachmentPath string) bool {
	m.sent = append(m.sent, data)
	return true
}

type testEnv struct {
	app    *fiber.App
	db     *gorm.DB
	mailer *recordingMailer
	token  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTKey:         "test-secret",
		BaseURL:        "http://localhost:7000",
		ValidationCode: "m2nz",
	}
	mailer := &recordingMailer{}
	ctl := NewController(db, cfg, utils.NewUploader(t.TempDir()), mailer)

	protected := middleware.Protected(cfg.JWTKey)

	app := fiber.New()
	app.Get("/api/courses", ctl.PublicList)
	app.Get("/api/courses/:slug", ctl.PublicGet)
	app.Post("/api/payments", ctl.CreatePayment)
	app.Get("/admin/courses", protected, ctl.AdminList)
	app.Post("/admin/courses", protected, ctl.Create)
	app.Put("/admin/courses/:id", protected, ctl.Update)
	app.Delete("/admin/courses/:id", protected, ctl.Delete)
	app.Get("/admin/payments", protected, ctl.AdminListPayments)
	app.Put("/admin/payments/:id/status", protected,
		statusValidator.StatusUpdate(models.PaymentPending, models.PaymentCompleted, models.PaymentFailed),
		ctl.UpdatePaymentStatus)

	token, err := middleware.GenerateJWT(cfg.JWTKey, 1, "admin")
	require.NoError(t, err)

	return &testEnv{app: app, db: db, mailer: mailer, token: token}
}

func multipartBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return decoded
}

func (env *testEnv) request(t *testing.T, method, path string, body io.Reader, contentType string, authed bool) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+env.token)
	}
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	return resp
}

func (env *testEnv) createCourse(t *testing.T, fields map[string]string) map[string]interface{} {
	t.Helper()
	body, contentType := multipartBody(t, fields)
	resp := env.request(t, http.MethodPost, "/admin/courses", body, contentType, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeBody(t, resp)
}

func TestCreateCourseGeneratesSlugAndCode(t *testing.T) {
	env := newTestEnv(t)

	body := env.createCourse(t, map[string]string{
		"title":    "Data Science Bootcamp",
		"features": `["Live classes","Projects"]`,
	})

	assert.Equal(t, "data-science-bootcamp", body["slug"])
	assert.Equal(t, "Course created successfully", body["message"])

	var course models.Course
	require.NoError(t, env.db.First(&course, uint(body["course_id"].(float64))).Error)
	assert.Regexp(t, `^PCL-`, course.CourseCode)
	assert.Equal(t, []string{"Live classes", "Projects"}, []string(course.Features))
	assert.True(t, course.IsActive)
}

func TestCreateCourseSlugSequence(t *testing.T) {
	env := newTestEnv(t)

	first := env.createCourse(t, map[string]string{"title": "Data Science Bootcamp"})
	second := env.createCourse(t, map[string]string{"title": "Data Science Bootcamp"})
	third := env.createCourse(t, map[string]string{"title": "Data Science Bootcamp"})

	assert.Equal(t, "data-science-bootcamp", first["slug"])
	assert.Equal(t, "data-science-bootcamp-1", second["slug"])
	assert.Equal(t, "data-science-bootcamp-2", third["slug"])
}

func TestCreateCourseRequiresTitle(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := multipartBody(t, map[string]string{"description": "no title"})
	resp := env.request(t, http.MethodPost, "/admin/courses", body, contentType, true)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Title is required", decodeBody(t, resp)["error"])
}

func TestCreateCourseRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := multipartBody(t, map[string]string{"title": "Go"})
	resp := env.request(t, http.MethodPost, "/admin/courses", body, contentType, false)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPublicListExcludesInactive(t *testing.T) {
	env := newTestEnv(t)

	env.createCourse(t, map[string]string{"title": "Visible Course"})
	hidden := env.createCourse(t, map[string]string{"title": "Hidden Course"})

	resp := env.request(t, http.MethodDelete, "/admin/courses/"+jsonID(hidden["course_id"]), nil, "", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.request(t, http.MethodGet, "/api/courses", nil, "", false)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	courses := decodeBody(t, resp)["courses"].([]interface{})
	require.Len(t, courses, 1)
	assert.Equal(t, "Visible Course", courses[0].(map[string]interface{})["title"])

	// admin listing still shows the soft-deleted course
	resp = env.request(t, http.MethodGet, "/admin/courses", nil, "", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeBody(t, resp)["courses"].([]interface{}), 2)
}

func TestPublicGetAbsolutizesImageURL(t *testing.T) {
	env := newTestEnv(t)

	env.createCourse(t, map[string]string{
		"title":     "Go Bootcamp",
		"image_url": "/uploads/courses/banner.jpg",
	})

	resp := env.request(t, http.MethodGet, "/api/courses/go-bootcamp", nil, "", false)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	course := decodeBody(t, resp)["course"].(map[string]interface{})
	assert.Equal(t, "http://localhost:7000/uploads/courses/banner.jpg", course["image_url"])
}

func TestPublicGetInactiveReturns404(t *testing.T) {
	env := newTestEnv(t)

	created := env.createCourse(t, map[string]string{"title": "Go Bootcamp"})
	resp := env.request(t, http.MethodDelete, "/admin/courses/"+jsonID(created["course_id"]), nil, "", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.request(t, http.MethodGet, "/api/courses/go-bootcamp", nil, "", false)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Course not found", decodeBody(t, resp)["error"])
}

func TestUpdateCoursePartial(t *testing.T) {
	env := newTestEnv(t)

	created := env.createCourse(t, map[string]string{
		"title":       "Go Bootcamp",
		"description": "Original description",
		"price":       "9999",
	})

	body, contentType := multipartBody(t, map[string]string{
		"price":    "7999",
		"features": "Mock interviews, Career support",
	})
	resp := env.request(t, http.MethodPut, "/admin/courses/"+jsonID(created["course_id"]), body, contentType, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var course models.Course
	require.NoError(t, env.db.First(&course, uint(created["course_id"].(float64))).Error)
	assert.Equal(t, "7999", course.Price)
	assert.Equal(t, "Original description", course.Description)
	assert.Equal(t, "Go Bootcamp", course.Title)
	assert.Equal(t, []string{"Mock interviews", "Career support"}, []string(course.Features))
}

func TestUpdateCourseNotFound(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := multipartBody(t, map[string]string{"price": "1"})
	resp := env.request(t, http.MethodPut, "/admin/courses/999", body, contentType, true)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Course not found", decodeBody(t, resp)["error"])
}

func TestCreatePayment(t *testing.T) {
	env := newTestEnv(t)

	env.createCourse(t, map[string]string{"title": "Go Bootcamp", "total_amount": "15000"})

	payload, err := json.Marshal(map[string]string{
		"course_slug": "go-bootcamp",
		"name":        "Asha Nair",
		"email":       "asha@example.com",
		"mobile":      "9876543210",
		"start_date":  "2026-09-15",
	})
	require.NoError(t, err)

	resp := env.request(t, http.MethodPost, "/api/payments", bytes.NewReader(payload), fiber.MIMEApplicationJSON, false)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Regexp(t, `^PAY_`, body["payment_id"])
	assert.Equal(t, "Go Bootcamp", body["course"])
	assert.Equal(t, "15000", body["amount"])

	var payment models.Payment
	require.NoError(t, env.db.Where("payment_id = ?", body["payment_id"]).First(&payment).Error)
	assert.Equal(t, float64(15000), payment.Amount)
	assert.Equal(t, models.PaymentPending, payment.PaymentStatus)
	require.NotNil(t, payment.PreferredStartDate)
	assert.Equal(t, "2026-09-15", payment.PreferredStartDate.Format("2006-01-02"))

	require.Len(t, env.mailer.sent, 1)
}

func TestCreatePaymentUnknownCourse(t *testing.T) {
	env := newTestEnv(t)

	payload, _ := json.Marshal(map[string]string{"course_slug": "missing"})
	resp := env.request(t, http.MethodPost, "/api/payments", bytes.NewReader(payload), fiber.MIMEApplicationJSON, false)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Course not found", decodeBody(t, resp)["error"])
	assert.Empty(t, env.mailer.sent)
}

func TestUpdatePaymentStatus(t *testing.T) {
	env := newTestEnv(t)

	env.createCourse(t, map[string]string{"title": "Go Bootcamp", "total_amount": "100"})
	payload, _ := json.Marshal(map[string]string{"course_slug": "go-bootcamp", "name": "A"})
	resp := env.request(t, http.MethodPost, "/api/payments", bytes.NewReader(payload), fiber.MIMEApplicationJSON, false)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var payment models.Payment
	require.NoError(t, env.db.First(&payment).Error)

	update, _ := json.Marshal(map[string]string{"status": "completed", "transaction_id": "TXN-1"})
	resp = env.request(t, http.MethodPut, "/admin/payments/"+jsonID(float64(payment.ID))+"/status", bytes.NewReader(update), fiber.MIMEApplicationJSON, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, env.db.First(&payment, payment.ID).Error)
	assert.Equal(t, models.PaymentCompleted, payment.PaymentStatus)
	assert.Equal(t, "TXN-1", payment.TransactionID)
}

func TestUpdatePaymentStatusRejectsUnknownValue(t *testing.T) {
	env := newTestEnv(t)

	update, _ := json.Marshal(map[string]string{"status": "refunded"})
	resp := env.request(t, http.MethodPut, "/admin/payments/1/status", bytes.NewReader(update), fiber.MIMEApplicationJSON, true)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid status value", decodeBody(t, resp)["error"])
}

func TestAdminListPaymentsJoinsCourse(t *testing.T) {
	env := newTestEnv(t)

	env.createCourse(t, map[string]string{"title": "Go Bootcamp", "total_amount": "100"})
	payload, _ := json.Marshal(map[string]string{"course_slug": "go-bootcamp", "name": "Asha"})
	resp := env.request(t, http.MethodPost, "/api/payments", bytes.NewReader(payload), fiber.MIMEApplicationJSON, false)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.request(t, http.MethodGet, "/admin/payments", nil, "", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	payments := decodeBody(t, resp)["payments"].([]interface{})
	require.Len(t, payments, 1)
	row := payments[0].(map[string]interface{})
	assert.Equal(t, "Go Bootcamp", row["course_title"])
	assert.Equal(t, "Asha", row["student_name"])
	assert.NotEmpty(t, row["course_code"])
}

// jsonID renders a decoded JSON id (float64) as a path segment.
func jsonID(id interface{}) string {
	return strconv.Itoa(int(id.(float64)))
}
