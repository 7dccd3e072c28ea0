package controllers

import (
	"testing"

	"lms/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCourseRequest() *createCourseRequest {
	return &createCourseRequest{
		Title:       "Practical PostgreSQL",
		Description: "Schema design, indexing and query tuning from scratch.",
		Category:    "databases",
		Level:       "intermediate",
		Price:       29.99,
		Duration:    8,
		Chapters: []chapterInput{
			{Title: "Welcome", ContentType: "TEXT", Body: "What this course covers."},
		},
	}
}

func formWithFields(fields map[string]string) *utils.MultipartForm {
	return &utils.MultipartForm{Fields: fields}
}

func TestCourseRequestFromFormParsesNumericFields(t *testing.T) {
	reqData, errs := courseRequestFromForm(formWithFields(map[string]string{
		"title":    "Practical PostgreSQL",
		"price":    "29.99",
		"duration": "8",
	}))

	require.Empty(t, errs)
	assert.Equal(t, 29.99, reqData.Price)
	assert.Equal(t, int64(8), reqData.Duration)
}

func TestCourseRequestFromFormRejectsMalformedPrice(t *testing.T) {
	// A typo'd price must surface as a field error, not enter the
	// pipeline as a zero-price (free) course.
	_, errs := courseRequestFromForm(formWithFields(map[string]string{
		"price": "twenty",
	}))

	require.Contains(t, errs, "price")
}

func TestCourseRequestFromFormRejectsMalformedDuration(t *testing.T) {
	_, errs := courseRequestFromForm(formWithFields(map[string]string{
		"duration": "8h",
	}))

	require.Contains(t, errs, "duration")
}

func TestCourseRequestFromFormRejectsBadChaptersJSON(t *testing.T) {
	_, errs := courseRequestFromForm(formWithFields(map[string]string{
		"chapters": "{not json",
	}))

	require.Contains(t, errs, "chapters")
}

func TestValidateCourseInputAcceptsValidRequest(t *testing.T) {
	errs := validateCourseInput(validCourseRequest(), nil)
	assert.Empty(t, errs)
}

func TestValidateCourseInputTitleBounds(t *testing.T) {
	reqData := validCourseRequest()
	reqData.Title = "Go"
	errs := validateCourseInput(reqData, nil)
	require.Contains(t, errs, "title")

	reqData.Title = string(make([]byte, 101))
	errs = validateCourseInput(reqData, nil)
	assert.Contains(t, errs, "title")
}

func TestValidateCourseInputShortDescription(t *testing.T) {
	reqData := validCourseRequest()
	reqData.Description = "too short"
	errs := validateCourseInput(reqData, nil)
	assert.Contains(t, errs, "description")
}

func TestValidateCourseInputRejectsBadLevelAndPrice(t *testing.T) {
	reqData := validCourseRequest()
	reqData.Level = "expert"
	reqData.Price = -5
	reqData.Duration = 0

	errs := validateCourseInput(reqData, nil)
	assert.Contains(t, errs, "level")
	assert.Contains(t, errs, "price")
	assert.Contains(t, errs, "duration")
}

func TestValidateCourseInputVideoChapterNeedsFile(t *testing.T) {
	reqData := validCourseRequest()
	reqData.Chapters = []chapterInput{
		{Title: "Demo Session", ContentType: "VIDEO"},
	}

	errs := validateCourseInput(reqData, nil)
	assert.Contains(t, errs, "chapterFile_0")
}

func TestValidateCourseInputTextChapterNeedsBody(t *testing.T) {
	reqData := validCourseRequest()
	reqData.Chapters = []chapterInput{
		{Title: "Empty", ContentType: "TEXT"},
	}

	errs := validateCourseInput(reqData, nil)
	assert.Contains(t, errs, "chapters[0]")
}

func TestValidateCourseInputUnknownChapterType(t *testing.T) {
	reqData := validCourseRequest()
	reqData.Chapters = []chapterInput{
		{Title: "Quiz", ContentType: "MCQ"},
	}

	errs := validateCourseInput(reqData, nil)
	assert.Contains(t, errs, "chapters[0]")
}
