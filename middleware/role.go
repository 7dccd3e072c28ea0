package middleware

import (
	"lms/database"
	"lms/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireRole returns a middleware that loads the authenticated user and
// checks their role against the allowed set. The loaded user is stashed
// in c.Locals("authUser") so controllers do not re-fetch it.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return ErrorResponse(c, fiber.StatusUnauthorized, KindUnauthorized, "Unauthorized: User ID not found")
		}

		var user models.User
		err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrorResponse(c, fiber.StatusUnauthorized, KindUnauthorized, "User not found!")
			}
			return ErrorResponse(c, fiber.StatusInternalServerError, KindExternalService, "Server error while checking role!")
		}

		if user.Status == models.UserSuspended {
			return ErrorResponse(c, fiber.StatusForbidden, KindForbidden, "Account is suspended!")
		}

		for _, role := range roles {
			if user.Role == role {
				c.Locals("authUser", user)
				return c.Next()
			}
		}

		return ErrorResponse(c, fiber.StatusForbidden, KindForbidden, "You do not have permission to access this resource!")
	}
}
