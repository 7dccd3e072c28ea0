package notificationValidator

import (
	"lms/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// NotificationIDParam validates the :id route parameter.
func NotificationIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Notification ID is required!")
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid Notification ID!")
		}

		c.Locals("notificationID", id)
		return c.Next()
	}
}
