package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInlineViewURL(t *testing.T) {
	assert.Equal(t,
		"https://res.cloudinary.com/demo/raw/upload/fl_attachment:false/resumes/abc123.pdf",
		inlineViewURL("https://res.cloudinary.com/demo/raw/upload/resumes/abc123.pdf"))

	// Bare public ids get the suffix appended.
	assert.Equal(t,
		"https://res.cloudinary.com/demo/raw/upload/fl_attachment:false/resumes/abc123.pdf",
		inlineViewURL("https://res.cloudinary.com/demo/raw/upload/resumes/abc123"))

	// URLs without the delivery segment pass through untouched except for
	// the suffix.
	assert.Equal(t, "https://example.com/file.pdf", inlineViewURL("https://example.com/file.pdf"))
	assert.Equal(t, "https://example.com/file.pdf", inlineViewURL("https://example.com/file"))
}

func TestNewCloudinaryUploaderRequiresURL(t *testing.T) {
	_, err := NewCloudinaryUploader("", "resumes")
	assert.Error(t, err)
}
