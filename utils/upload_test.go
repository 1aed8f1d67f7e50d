package utils

import (
	"bytes"
	"image"
	"image/jpeg"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a real multipart.FileHeader the way Fiber hands one to
// the upload path.
func fileHeader(t *testing.T, fieldName, fileName string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File[fieldName][0]
}

func jpegBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestSaveNilFileIsNoOp(t *testing.T) {
	u := NewUploader(t.TempDir())

	path, err := u.Save(nil, CategoryCourses)
	assert.NoError(t, err)
	assert.Empty(t, path)
}

func TestSaveRejectsInvalidImageType(t *testing.T) {
	u := NewUploader(t.TempDir())
	file := fileHeader(t, "image", "notes.txt", []byte("hello"))

	_, err := u.Save(file, CategoryCourses)
	assert.ErrorIs(t, err, ErrInvalidFileType)
}

func TestSaveRejectsImageAsResume(t *testing.T) {
	u := NewUploader(t.TempDir())
	file := fileHeader(t, "resume", "photo.jpg", jpegBytes(t, 10, 10))

	_, err := u.Save(file, CategoryResumes)
	assert.ErrorIs(t, err, ErrInvalidFileType)
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	u := NewUploader(t.TempDir())
	file := fileHeader(t, "resume", "cv.pdf", bytes.Repeat([]byte("a"), MaxUploadSize+1))

	_, err := u.Save(file, CategoryResumes)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestSaveImage(t *testing.T) {
	root := t.TempDir()
	u := NewUploader(root)
	file := fileHeader(t, "image", "banner.jpg", jpegBytes(t, 100, 80))

	path, err := u.Save(file, CategoryCourses)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "/uploads/courses/"))
	assert.True(t, strings.HasSuffix(path, ".jpg"))

	_, err = os.Stat(u.DiskPath(path))
	assert.NoError(t, err)
}

func TestSaveImageDownscalesWideImages(t *testing.T) {
	root := t.TempDir()
	u := NewUploader(root)
	file := fileHeader(t, "image", "wide.jpg", jpegBytes(t, 2400, 600))

	path, err := u.Save(file, CategoryCourses)
	require.NoError(t, err)

	f, err := os.Open(u.DiskPath(path))
	require.NoError(t, err)
	defer f.Close()

	decoded, _, err := image.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, maxImageWidth, decoded.Bounds().Dx())
	assert.Equal(t, 300, decoded.Bounds().Dy())
}

func TestSaveResumeKeepsOriginalName(t *testing.T) {
	root := t.TempDir()
	u := NewUploader(root)
	file := fileHeader(t, "resume", "my resume.pdf", []byte("%PDF-1.4"))

	path, err := u.Save(file, CategoryResumes)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "/uploads/resumes/"))
	assert.True(t, strings.HasSuffix(path, "_my_resume.pdf"))
}

func TestSecureFilename(t *testing.T) {
	assert.Equal(t, "cv.pdf", secureFilename("../../etc/cv.pdf"))
	assert.Equal(t, "r_sum_.pdf", secureFilename("r$sum%.pdf"))
}

func TestDiskPath(t *testing.T) {
	u := NewUploader("/data/uploads")

	assert.Equal(t, filepath.Join("/data/uploads", "courses", "a.jpg"), u.DiskPath("/uploads/courses/a.jpg"))
	assert.Equal(t, "", u.DiskPath(""))
}
