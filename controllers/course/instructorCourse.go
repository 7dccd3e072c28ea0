package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type chapterInput struct {
	Title         string   `json:"title"`
	ContentType   string   `json:"contentType"` // TEXT, VIDEO, PDF
	Body          string   `json:"body"`
	ResourceLinks []string `json:"resourceLinks"`
}

type createCourseRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Level       string         `json:"level"`
	Price       float64        `json:"price"`
	Duration    int64          `json:"duration"`
	Chapters    []chapterInput `json:"chapters"`
}

// courseRequestFromForm maps the multipart text fields onto the request
// struct. Malformed numeric fields are reported as field errors, never
// silently defaulted: "price: twenty" must not create a free course.
func courseRequestFromForm(form *utils.MultipartForm) (*createCourseRequest, map[string]string) {
	reqData := new(createCourseRequest)
	errs := make(map[string]string)

	reqData.Title = form.Fields["title"]
	reqData.Description = form.Fields["description"]
	reqData.Category = form.Fields["category"]
	reqData.Level = form.Fields["level"]

	if raw := form.Fields["price"]; raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			errs["price"] = "Price must be a number!"
		}
		reqData.Price = price
	}
	if raw := form.Fields["duration"]; raw != "" {
		duration, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errs["duration"] = "Duration must be a whole number!"
		}
		reqData.Duration = duration
	}
	if chaptersJSON := form.Fields["chapters"]; chaptersJSON != "" {
		if err := json.Unmarshal([]byte(chaptersJSON), &reqData.Chapters); err != nil {
			errs["chapters"] = "Invalid chapters JSON!"
		}
	}

	return reqData, errs
}

// CreateCourse submits a new course for moderation. The request arrives
// as multipart/form-data: text fields plus an optional `image` thumbnail
// and one `chapterFile_{n}` per video/pdf chapter. Files are committed to
// disk only after the course row is created. Every course starts PENDING.
func CreateCourse(c *fiber.Ctx) error {
	user, ok := c.Locals("authUser").(models.User)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.KindUnauthorized, "Unauthorized!")
	}

	if user.Role == models.RoleInstructor && user.ApprovalStatus != models.ApprovalApproved {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, middleware.KindForbidden, "Instructor account is not approved yet!")
	}

	form, err := utils.ParseMultipartForm(c.Body(), c.Get("Content-Type"))
	if err != nil {
		var verr *utils.ValidationError
		if errors.As(err, &verr) {
			return middleware.ValidationErrorResponse(c, map[string]string{verr.Field: verr.Message})
		}
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, err.Error())
	}

	reqData := new(createCourseRequest)
	if form != nil {
		var formErrs map[string]string
		reqData, formErrs = courseRequestFromForm(form)
		if len(formErrs) > 0 {
			utils.DiscardFiles(form)
			return middleware.ValidationErrorResponse(c, formErrs)
		}
	} else if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request body!")
	}

	if errs := validateCourseInput(reqData, form); len(errs) > 0 {
		utils.DiscardFiles(form)
		return middleware.ValidationErrorResponse(c, errs)
	}

	course := courseModels.Course{
		InstructorID: user.ID,
		Title:        strings.TrimSpace(reqData.Title),
		Description:  strings.TrimSpace(reqData.Description),
		Category:     reqData.Category,
		Level:        reqData.Level,
		Price:        reqData.Price,
		Duration:     reqData.Duration,
		Status:       courseModels.StatusPending,
	}

	for i, ch := range reqData.Chapters {
		links := ""
		if len(ch.ResourceLinks) > 0 {
			if raw, err := json.Marshal(ch.ResourceLinks); err == nil {
				links = string(raw)
			}
		}
		course.Chapters = append(course.Chapters, courseModels.Chapter{
			Title:         strings.TrimSpace(ch.Title),
			ContentType:   ch.ContentType,
			Body:          ch.Body,
			OrderIndex:    i,
			ResourceLinks: links,
		})
	}

	db := database.Database.Db

	// Create runs in gorm's own transaction, chapters included
	if err := db.Create(&course).Error; err != nil {
		utils.DiscardFiles(form)
		log.Printf("Error creating course: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindExternalService, "Failed to create course!")
	}

	// Primary write succeeded, persist uploaded files and link them
	if form != nil && len(form.Files) > 0 {
		if err := utils.CommitFiles(form); err != nil {
			log.Printf("Error storing files for course %d: %v", course.ID, err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindExternalService, "Failed to store uploaded files!")
		}

		if img := form.File("image"); img != nil {
			course.Thumbnail = img.Path
			db.Model(&courseModels.Course{}).Where("id = ?", course.ID).Update("thumbnail", img.Path)
		}

		for i := range course.Chapters {
			if f := form.File(fmt.Sprintf("chapterFile_%d", i)); f != nil {
				course.Chapters[i].FilePath = f.Path
				db.Model(&courseModels.Chapter{}).Where("id = ?", course.Chapters[i].ID).Update("file_path", f.Path)
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course submitted for moderation!", course)
}

// validateCourseInput enforces the full course contract. No bypass path:
// title 5-100, description >= 20, price >= 0, duration >= 1, known level,
// and each non-text chapter backed by an uploaded file of matching type.
func validateCourseInput(reqData *createCourseRequest, form *utils.MultipartForm) map[string]string {
	errs := make(map[string]string)

	if l := len(strings.TrimSpace(reqData.Title)); l < 5 || l > 100 {
		errs["title"] = "Title must be between 5 and 100 characters!"
	}
	if len(strings.TrimSpace(reqData.Description)) < 20 {
		errs["description"] = "Description must be at least 20 characters long!"
	}
	if reqData.Level != courseModels.LevelBeginner &&
		reqData.Level != courseModels.LevelIntermediate &&
		reqData.Level != courseModels.LevelAdvanced {
		errs["level"] = "Level must be beginner, intermediate or advanced!"
	}
	if reqData.Price < 0 {
		errs["price"] = "Price cannot be negative!"
	}
	if reqData.Duration < 1 {
		errs["duration"] = "Duration must be at least 1 hour!"
	}

	for i, ch := range reqData.Chapters {
		field := fmt.Sprintf("chapterFile_%d", i)
		switch ch.ContentType {
		case courseModels.ChapterText:
			if strings.TrimSpace(ch.Body) == "" {
				errs[fmt.Sprintf("chapters[%d]", i)] = "Text chapter requires a body!"
			}
		case courseModels.ChapterVideo:
			if form == nil || form.File(field) == nil || form.File(field).Kind != utils.FileKindVideo {
				errs[field] = "Video chapter requires a video file upload!"
			}
		case courseModels.ChapterPdf:
			if form == nil || form.File(field) == nil || form.File(field).Kind != utils.FileKindPdf {
				errs[field] = "PDF chapter requires a pdf file upload!"
			}
		default:
			errs[fmt.Sprintf("chapters[%d]", i)] = "Chapter content type must be TEXT, VIDEO or PDF!"
		}
		if strings.TrimSpace(ch.Title) == "" {
			errs[fmt.Sprintf("chapters[%d]", i)] = "Chapter title is required!"
		}
	}

	return errs
}

// UpdateCourse updates an existing course. Admin or owning instructor only.
func UpdateCourse(c *fiber.Ctx) error {
	user, ok := c.Locals("authUser").(models.User)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.KindUnauthorized, "Unauthorized!")
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.KindNotFound, "Course not found!")
	}

	if user.Role != models.RoleAdmin && course.InstructorID != user.ID {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, middleware.KindForbidden, "You do not own this course!")
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Category    string   `json:"category"`
		Level       string   `json:"level"`
		Price       *float64 `json:"price"`
		Duration    *int64   `json:"duration"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request data!")
	}

	// Update only provided fields
	if reqData.Title != "" {
		course.Title = strings.TrimSpace(reqData.Title)
	}
	if reqData.Description != "" {
		course.Description = strings.TrimSpace(reqData.Description)
	}
	if reqData.Category != "" {
		course.Category = reqData.Category
	}
	if reqData.Level != "" {
		course.Level = reqData.Level
	}
	if reqData.Price != nil {
		course.Price = *reqData.Price
	}
	if reqData.Duration != nil {
		course.Duration = *reqData.Duration
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindExternalService, "Failed to update course!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse removes a course and all of its chapters. Admin or owning
// instructor only. Chapters go first so no orphan rows survive.
func DeleteCourse(c *fiber.Ctx) error {
	user, ok := c.Locals("authUser").(models.User)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.KindUnauthorized, "Unauthorized!")
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.KindNotFound, "Course not found!")
	}

	if user.Role != models.RoleAdmin && course.InstructorID != user.ID {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, middleware.KindForbidden, "You do not own this course!")
	}

	tx := database.Database.Db.Begin()
	if err := tx.Unscoped().Where("course_id = ?", course.ID).Delete(&courseModels.Chapter{}).Error; err != nil {
		tx.Rollback()
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindExternalService, "Failed to delete course chapters!")
	}
	if err := tx.Unscoped().Delete(&course).Error; err != nil {
		tx.Rollback()
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindExternalService, "Failed to delete course!")
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
