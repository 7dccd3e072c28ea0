package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// notification list size cap
const maxNotifications = 50

// GetNotifications lists the caller's notifications, most recent first,
// capped at 50.
func GetNotifications(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.KindUnauthorized, "Unauthorized!")
	}

	var notifications []models.Notification
	if err := database.Database.Db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(maxNotifications).
		Find(&notifications).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindExternalService, "Failed to fetch notifications!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications fetched successfully!", notifications)
}

// GetUnreadCount returns the caller's unread notification count.
func GetUnreadCount(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.KindUnauthorized, "Unauthorized!")
	}

	var count int64
	if err := database.Database.Db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Count(&count).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindExternalService, "Failed to count notifications!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Unread count fetched!", fiber.Map{"unread": count})
}

// MarkRead marks one owned notification as read. Idempotent.
func MarkRead(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.KindUnauthorized, "Unauthorized!")
	}

	notificationID := c.Locals("notificationID").(int)

	var notification models.Notification
	if err := database.Database.Db.
		Where("id = ? AND user_id = ?", notificationID, userID).
		First(&notification).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.KindNotFound, "Notification not found!")
	}

	if !notification.IsRead {
		notification.IsRead = true
		if err := database.Database.Db.Save(&notification).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindExternalService, "Failed to update notification!")
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification marked as read.", notification)
}

// MarkAllRead marks every unread notification of the caller as read.
// Idempotent and scoped to the caller.
func MarkAllRead(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.KindUnauthorized, "Unauthorized!")
	}

	if err := database.Database.Db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Update("is_read", true).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindExternalService, "Failed to update notifications!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "All notifications marked as read.", nil)
}
