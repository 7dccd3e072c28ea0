package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ListPendingCourses lists courses awaiting moderation.
func ListPendingCourses(c *fiber.Ctx) error {
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

	db := database.Database.Db.Model(&courseModels.Course{}).Where("status = ?", courseModels.StatusPending)

	var total int64
	db.Count(&total)

	var courses []courseModels.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at asc").Find(&courses).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindExternalService, "Failed to fetch pending courses!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending courses fetched!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// ApproveCourse moves a course to APPROVED and notifies the instructor.
// Re-approving an approved course succeeds without re-firing the side
// effects.
func ApproveCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.KindNotFound, "Course not found!")
	}

	if course.Status == courseModels.StatusApproved {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Course is already approved.", course)
	}

	now := time.Now()
	course.Status = courseModels.StatusApproved
	course.ApprovedAt = &now

	if err := db.Save(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindExternalService, "Failed to approve course!")
	}

	// Side effects are best-effort: the approval stands even if mail or
	// the notification store fails.
	var instructor models.User
	if err := db.Where("id = ?", course.InstructorID).First(&instructor).Error; err == nil {
		utils.SendCourseApprovedEmail(instructor.Email, instructor.Name, course.Title)
		utils.Notify(instructor.ID, "Course approved",
			"Your course \""+course.Title+"\" has been approved and is now live.",
			models.SeveritySuccess,
			map[string]interface{}{"courseId": course.ID})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course approved successfully!", course)
}

// RejectCourse removes a rejected course entirely. The reason is required
// and travels to the instructor via email and internal notification; no
// course history is kept.
func RejectCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedReject").(*struct {
		Reason string `json:"reason"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request data!")
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.KindNotFound, "Course not found!")
	}

	var instructor models.User
	hasInstructor := db.Where("id = ?", course.InstructorID).First(&instructor).Error == nil

	tx := db.Begin()
	if err := tx.Unscoped().Where("course_id = ?", course.ID).Delete(&courseModels.Chapter{}).Error; err != nil {
		tx.Rollback()
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindExternalService, "Failed to reject course!")
	}
	if err := tx.Unscoped().Delete(&course).Error; err != nil {
		tx.Rollback()
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindExternalService, "Failed to reject course!")
	}
	tx.Commit()

	if hasInstructor {
		utils.SendCourseRejectedEmail(instructor.Email, instructor.Name, course.Title, reqData.Reason)
		utils.Notify(instructor.ID, "Course rejected",
			"Your course \""+course.Title+"\" was rejected. Reason: "+reqData.Reason,
			models.SeverityError,
			map[string]interface{}{"reason": reqData.Reason})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course rejected!", nil)
}
