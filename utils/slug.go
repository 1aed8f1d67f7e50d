package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Slugify derives the base slug candidate: lowercased, spaces to hyphens.
func Slugify(title string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(title)), " ", "-")
}

// NextFreeSlug probes the model's table for the first unused slug candidate,
// appending -1, -2, ... to the base until a free value is found. The unique
// index on the slug column is the real guard; callers retry the insert on
// gorm.ErrDuplicatedKey when a concurrent create wins the probe.
func NextFreeSlug(db *gorm.DB, model interface{}, title string) string {
	base := Slugify(title)
	slug := base
	for counter := 1; ; counter++ {
		var count int64
		db.Model(model).Where("slug = ?", slug).Count(&count)
		if count == 0 {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}

// IsDuplicateKey reports whether err is a unique-index violation.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// GenerateCode builds a posting code: category prefix plus the first 8
// characters of a random UUID, uppercased. No uniqueness probe; the collision
// probability is negligible and the unique index rejects the rest.
func GenerateCode(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(uuid.New().String()[:8]))
}

// GenerateExternalID builds an external-facing submission identifier such as
// PAY_ or INT_APP_ plus the first 12 characters of a random UUID, uppercased.
func GenerateExternalID(prefix string) string {
	return fmt.Sprintf("%s%s", prefix, strings.ToUpper(uuid.New().String()[:12]))
}
