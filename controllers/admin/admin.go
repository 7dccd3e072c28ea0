package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// ListUsers lists accounts for the admin panel, optionally filtered by role.
func ListUsers(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUserList").(*struct {
		Page  *int   `json:"page"`
		Limit *int   `json:"limit"`
		Role  string `json:"role"`
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

	db := database.Database.Db.Model(&models.User{}).Where("is_deleted = false")
	if ok && reqData.Role != "" {
		db = db.Where("role = ?", reqData.Role)
	}

	var total int64
	db.Count(&total)

	var users []models.User
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindExternalService, "Failed to fetch users!")
	}

	for i := range users {
		users[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// SuspendUser suspends an account. Protected accounts cannot be touched.
func SuspendUser(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(int)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", targetID).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.KindNotFound, "User not found!")
	}

	if user.IsProtected {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, middleware.KindForbidden, "This account is protected and cannot be suspended!")
	}

	if user.Status != models.UserSuspended {
		user.Status = models.UserSuspended
		if err := database.Database.Db.Save(&user).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindExternalService, "Failed to suspend user!")
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User suspended successfully!", nil)
}

// ReactivateUser lifts a suspension.
func ReactivateUser(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(int)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", targetID).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.KindNotFound, "User not found!")
	}

	if user.Status != models.UserActive {
		user.Status = models.UserActive
		if err := database.Database.Db.Save(&user).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindExternalService, "Failed to reactivate user!")
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User reactivated successfully!", nil)
}

// ListPendingInstructors lists instructor accounts awaiting approval.
func ListPendingInstructors(c *fiber.Ctx) error {
	var instructors []models.User
	if err := database.Database.Db.
		Where("role = ? AND approval_status = ? AND is_deleted = false", models.RoleInstructor, models.ApprovalPending).
		Order("created_at asc").
		Find(&instructors).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindExternalService, "Failed to fetch pending instructors!")
	}

	for i := range instructors {
		instructors[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending instructors fetched!", instructors)
}

// ApproveInstructor approves a pending instructor account and notifies
// them. Idempotent: re-approval succeeds without duplicate side effects.
func ApproveInstructor(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(int)

	var user models.User
	if err := database.Database.Db.
		Where("id = ? AND role = ? AND is_deleted = false", targetID, models.RoleInstructor).
		First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.KindNotFound, "Instructor not found!")
	}

	if user.ApprovalStatus == models.ApprovalApproved {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructor is already approved.", nil)
	}

	user.ApprovalStatus = models.ApprovalApproved
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindExternalService, "Failed to approve instructor!")
	}

	utils.SendInstructorApprovedEmail(user.Email, user.Name)
	utils.Notify(user.ID, "Instructor account approved",
		"Your instructor account has been approved. You can now create courses.",
		models.SeveritySuccess, nil)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructor approved successfully!", nil)
}
