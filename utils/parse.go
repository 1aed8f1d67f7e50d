package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ParseStringList normalizes a list-valued form field to an ordered []string.
// The value may arrive as a JSON-encoded array or as comma/newline-delimited
// text; structured decode wins, the delimiter split is the fallback.
func ParseStringList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}

	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err == nil {
		return items
	}

	// JSON array of mixed primitives
	var anyItems []interface{}
	if err := json.Unmarshal([]byte(raw), &anyItems); err == nil {
		items = make([]string, 0, len(anyItems))
		for _, item := range anyItems {
			items = append(items, fmt.Sprint(item))
		}
		return items
	}

	// Delimited text: newlines count as commas
	items = []string{}
	for _, part := range strings.Split(strings.ReplaceAll(raw, "\n", ","), ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

// FormFields flattens the request's form values into a map. Multipart and
// urlencoded bodies are both supported; only a field's first value is kept.
func FormFields(c *fiber.Ctx) map[string]string {
	fields := make(map[string]string)

	if form, err := c.MultipartForm(); err == nil && form != nil {
		for key, values := range form.Value {
			if len(values) > 0 {
				fields[key] = values[0]
			}
		}
		return fields
	}

	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		fields[string(key)] = string(value)
	})
	return fields
}

// RequestData flattens a JSON or form body into a string map, mirroring how
// the lead-capture forms submit either encoding interchangeably.
func RequestData(c *fiber.Ctx) map[string]string {
	if strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEApplicationJSON) {
		var raw map[string]interface{}
		if err := json.Unmarshal(c.Body(), &raw); err == nil {
			fields := make(map[string]string, len(raw))
			for key, value := range raw {
				if value == nil {
					continue
				}
				if s, ok := value.(string); ok {
					fields[key] = s
				} else {
					fields[key] = fmt.Sprint(value)
				}
			}
			return fields
		}
	}
	return FormFields(c)
}

// StrPtr returns a pointer to the field's value when present in the form.
func StrPtr(fields map[string]string, key string) *string {
	if value, ok := fields[key]; ok {
		return &value
	}
	return nil
}

// FloatPtr returns a pointer to the field's numeric value when present and
// parseable.
func FloatPtr(fields map[string]string, key string) *float64 {
	value, ok := fields[key]
	if !ok {
		return nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &parsed
}

// BoolPtr returns a pointer to the field's boolean value when present.
// Anything other than "true" (case-insensitive) reads as false.
func BoolPtr(fields map[string]string, key string) *bool {
	value, ok := fields[key]
	if !ok {
		return nil
	}
	parsed := strings.EqualFold(value, "true")
	return &parsed
}

// ListPtr returns a pointer to the field's parsed string list when present.
func ListPtr(fields map[string]string, key string) *[]string {
	value, ok := fields[key]
	if !ok {
		return nil
	}
	parsed := ParseStringList(value)
	return &parsed
}

// ParseDate parses a YYYY-MM-DD form value. Invalid or empty input yields
// nil rather than an error; submissions proceed without the date.
func ParseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &parsed
}

// AbsoluteURL rewrites a relative upload path to a full URL against the
// configured public origin. Already-absolute URLs pass through.
func AbsoluteURL(baseURL, path string) string {
	if path == "" || strings.HasPrefix(path, "http") {
		return path
	}
	return baseURL + path
}
