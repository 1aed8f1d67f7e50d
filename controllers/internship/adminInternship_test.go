package internshipController

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"strconv"
	"testing"

	"pcl-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postingForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func TestCreateInternshipDefaults(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := postingForm(t, map[string]string{
		"title":  "Backend Internship",
		"skills": "Go, SQL\nDocker",
	})
	resp := env.request(t, http.MethodPost, "/admin/internships", body, contentType, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.Equal(t, "backend-internship", result["slug"])

	var posting models.InternshipPosting
	require.NoError(t, env.db.First(&posting, uint(result["internship_id"].(float64))).Error)
	assert.Equal(t, "3 Months", posting.Duration)
	assert.Equal(t, "remote", posting.InternshipType)
	assert.Regexp(t, `^INT-`, posting.InternshipCode)
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, []string(posting.Skills))
	assert.True(t, posting.IsActive)
}

func TestCreateInternshipInactiveFlag(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := postingForm(t, map[string]string{
		"title":     "Hidden Internship",
		"is_active": "false",
	})
	resp := env.request(t, http.MethodPost, "/admin/internships", body, contentType, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var posting models.InternshipPosting
	require.NoError(t, env.db.Where("slug = ?", "hidden-internship").First(&posting).Error)
	assert.False(t, posting.IsActive)

	resp = env.request(t, http.MethodGet, "/api/internships", nil, "", false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody(t, resp)["internships"])
}

func TestUpdateInternshipPartial(t *testing.T) {
	env := newTestEnv(t)
	posting := env.seedPosting(t, "Backend Internship", true)

	body, contentType := postingForm(t, map[string]string{
		"location": "Kochi",
		"perks":    `["Certificate","Stipend"]`,
	})
	resp := env.request(t, http.MethodPut, "/admin/internships/"+strconv.Itoa(int(posting.ID)), body, contentType, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.InternshipPosting
	require.NoError(t, env.db.First(&updated, posting.ID).Error)
	assert.Equal(t, "Kochi", updated.Location)
	assert.Equal(t, "Backend Internship", updated.Title)
	assert.Equal(t, []string{"Certificate", "Stipend"}, []string(updated.Perks))
}

func TestPublicGetInternshipDetail(t *testing.T) {
	env := newTestEnv(t)
	env.seedPosting(t, "Backend Internship", true)

	resp := env.request(t, http.MethodGet, "/api/internships/backend-internship", nil, "", false)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	detail := decodeBody(t, resp)["internship"].(map[string]interface{})
	assert.Equal(t, "Backend Internship", detail["title"])
	assert.Contains(t, detail, "skills")
	assert.Contains(t, detail, "perks")
	assert.Contains(t, detail, "eligibility")
}

func TestDeleteInternshipSoftDeletes(t *testing.T) {
	env := newTestEnv(t)
	posting := env.seedPosting(t, "Backend Internship", true)

	resp := env.request(t, http.MethodDelete, "/admin/internships/"+strconv.Itoa(int(posting.ID)), nil, "", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.InternshipPosting
	require.NoError(t, env.db.First(&updated, posting.ID).Error)
	assert.False(t, updated.IsActive)

	resp = env.request(t, http.MethodGet, "/api/internships/backend-internship", nil, "", false)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
