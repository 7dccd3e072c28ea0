package controllers

import (
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetEnrollments lists the caller's enrollments, newest first.
func GetEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.KindUnauthorized, "Unauthorized!")
	}

	reqData, ok := c.Locals("validatedList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	page := 1
	limit := 10
	if ok && reqData.Page != nil {
		page = *reqData.Page
	}
	if ok && reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&courseModels.Enrollment{}).Where("user_id = ?", userID)

	var total int64
	db.Count(&total)

	var enrollments []courseModels.Enrollment
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindExternalService, "Failed to fetch enrollments!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// UpdateProgress recalculates progress from the lesson position and
// derives the enrollment status from the result.
func UpdateProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.KindUnauthorized, "Unauthorized!")
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedProgress").(*struct {
		LessonIndex  *int `json:"lessonIndex"`
		TotalLessons *int `json:"totalLessons"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request data!")
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.KindNotFound, "Enrollment not found!")
	}

	progress, valid := courseModels.ComputeProgress(*reqData.LessonIndex, *reqData.TotalLessons)
	if !valid {
		return middleware.ErrorResponse(c, fiber.StatusUnprocessableEntity, middleware.KindInvalidArgument, "Invalid lesson position!")
	}

	enrollment.Progress = progress
	enrollment.Status = courseModels.DeriveStatus(progress)
	enrollment.LastActivityAt = time.Now()

	if err := database.Database.Db.Save(&enrollment).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindExternalService, "Failed to update progress!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", enrollment)
}

// CompleteCourse is the explicit override path: progress jumps to 100 and
// the enrollment completes regardless of previous progress.
func CompleteCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.KindUnauthorized, "Unauthorized!")
	}

	courseID := c.Locals("courseID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.KindNotFound, "Enrollment not found!")
	}

	enrollment.Progress = 100
	enrollment.Status = courseModels.EnrollmentCompleted
	enrollment.LastActivityAt = time.Now()

	if err := database.Database.Db.Save(&enrollment).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindExternalService, "Failed to complete course!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course marked as completed!", enrollment)
}
