package utils

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/webp"
)

// Upload categories. Each maps to a subdirectory under the upload root.
const (
	CategoryCourses            = "courses"
	CategoryInternships        = "internships"
	CategoryProjects           = "projects"
	CategoryPaymentScreenshots = "payment_screenshots"
	CategoryResumes            = "resumes"
)

const (
	// MaxUploadSize is the fixed ceiling for any uploaded file.
	MaxUploadSize = 5 * 1024 * 1024

	maxImageWidth = 1200
	jpegQuality   = 85
)

var (
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileTooLarge    = errors.New("file size exceeds 5MB limit")
)

var imageExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true,
}

var documentExtensions = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// Uploader validates and stores uploaded files under a per-category
// subdirectory of the upload root.
type Uploader struct {
	Root string
}

func NewUploader(root string) *Uploader {
	return &Uploader{Root: root}
}

// Save validates the file against the category's extension allow-list and the
// size ceiling, writes it under <root>/<category>/ with a collision-resistant
// name and returns the public path /uploads/<category>/<name>. A nil file or
// empty filename is a no-op returning an empty path.
func (u *Uploader) Save(file *multipart.FileHeader, category string) (string, error) {
	if file == nil || file.Filename == "" {
		return "", nil
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowed := imageExtensions
	if category == CategoryResumes {
		allowed = documentExtensions
	}
	if !allowed[ext] {
		return "", ErrInvalidFileType
	}

	if file.Size > MaxUploadSize {
		return "", ErrFileTooLarge
	}

	destDir := filepath.Join(u.Root, category)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	var name string
	if category == CategoryResumes {
		// keep the original name visible for reviewers
		name = time.Now().UTC().Format("20060102150405") + "_" + secureFilename(file.Filename)
	} else {
		name = strings.ReplaceAll(uuid.New().String(), "-", "") + ext
	}
	destPath := filepath.Join(destDir, name)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", err
	}
	dst.Close()

	if category != CategoryResumes {
		if err := optimizeImage(destPath, ext); err != nil {
			// non-fatal: the original saved file stays usable
			log.Printf("Image optimization failed for %s: %v", destPath, err)
		}
	}

	return fmt.Sprintf("/uploads/%s/%s", category, name), nil
}

// DiskPath maps a public /uploads/... path back to its location on disk.
func (u *Uploader) DiskPath(publicPath string) string {
	if publicPath == "" {
		return ""
	}
	return filepath.Join(u.Root, strings.TrimPrefix(publicPath, "/uploads/"))
}

// secureFilename strips any path components and unsafe characters.
func secureFilename(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	return unsafeFilenameChars.ReplaceAllString(base, "_")
}

// optimizeImage re-encodes the saved image: color mode normalized to RGBA,
// downscaled proportionally when wider than maxImageWidth, fixed JPEG quality.
// WebP has no encoder in the toolchain so those files are kept as saved.
func optimizeImage(path, ext string) error {
	if ext == ".webp" {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	src, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return err
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width > maxImageWidth {
		ratio := float64(maxImageWidth) / float64(width)
		height = int(float64(height) * ratio)
		width = maxImageWidth
	}

	normalized := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(normalized, normalized.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	switch ext {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(&buf, normalized, &jpeg.Options{Quality: jpegQuality})
	case ".png":
		err = png.Encode(&buf, normalized)
	case ".gif":
		err = gif.Encode(&buf, normalized, nil)
	default:
		return nil
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0644)
}
