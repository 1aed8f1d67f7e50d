package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStringListJSON(t *testing.T) {
	assert.Equal(t, []string{"Go", "SQL"}, ParseStringList(`["Go","SQL"]`))
}

func TestParseStringListMixedJSON(t *testing.T) {
	assert.Equal(t, []string{"Go", "2"}, ParseStringList(`["Go",2]`))
}

func TestParseStringListDelimited(t *testing.T) {
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, ParseStringList("Go, SQL, Docker"))
}

func TestParseStringListNewlines(t *testing.T) {
	assert.Equal(t, []string{"Go", "SQL"}, ParseStringList("Go\nSQL"))
}

func TestParseStringListEmpty(t *testing.T) {
	assert.Empty(t, ParseStringList(""))
	assert.Empty(t, ParseStringList("   "))
}

func TestParseStringListDropsBlankEntries(t *testing.T) {
	assert.Equal(t, []string{"Go"}, ParseStringList("Go,, ,"))
}

func TestStrPtr(t *testing.T) {
	fields := map[string]string{"title": "Go Bootcamp", "empty": ""}

	if assert.NotNil(t, StrPtr(fields, "title")) {
		assert.Equal(t, "Go Bootcamp", *StrPtr(fields, "title"))
	}
	// present but empty still counts as provided
	assert.NotNil(t, StrPtr(fields, "empty"))
	assert.Nil(t, StrPtr(fields, "missing"))
}

func TestFloatPtr(t *testing.T) {
	fields := map[string]string{"rating": "4.8", "bad": "abc"}

	if assert.NotNil(t, FloatPtr(fields, "rating")) {
		assert.Equal(t, 4.8, *FloatPtr(fields, "rating"))
	}
	assert.Nil(t, FloatPtr(fields, "bad"))
	assert.Nil(t, FloatPtr(fields, "missing"))
}

func TestBoolPtr(t *testing.T) {
	fields := map[string]string{"on": "TRUE", "off": "no"}

	if assert.NotNil(t, BoolPtr(fields, "on")) {
		assert.True(t, *BoolPtr(fields, "on"))
	}
	if assert.NotNil(t, BoolPtr(fields, "off")) {
		assert.False(t, *BoolPtr(fields, "off"))
	}
	assert.Nil(t, BoolPtr(fields, "missing"))
}

func TestListPtr(t *testing.T) {
	fields := map[string]string{"skills": `["Go","SQL"]`}

	if assert.NotNil(t, ListPtr(fields, "skills")) {
		assert.Equal(t, []string{"Go", "SQL"}, *ListPtr(fields, "skills"))
	}
	assert.Nil(t, ListPtr(fields, "missing"))
}

func TestParseDate(t *testing.T) {
	parsed := ParseDate("2026-09-15")
	if assert.NotNil(t, parsed) {
		assert.Equal(t, 2026, parsed.Year())
		assert.Equal(t, 15, parsed.Day())
	}

	assert.Nil(t, ParseDate(""))
	assert.Nil(t, ParseDate("15/09/2026"))
}

func TestAbsoluteURL(t *testing.T) {
	base := "http://localhost:7000"

	assert.Equal(t, "http://localhost:7000/uploads/courses/a.jpg", AbsoluteURL(base, "/uploads/courses/a.jpg"))
	assert.Equal(t, "https://cdn.example.com/a.jpg", AbsoluteURL(base, "https://cdn.example.com/a.jpg"))
	assert.Equal(t, "", AbsoluteURL(base, ""))
}
