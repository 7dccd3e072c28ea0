package adminValidator

import (
	"lms/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// UserIDParam validates the :id route parameter.
func UserIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "User ID is required!")
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid User ID!")
		}

		c.Locals("targetUserID", id)
		return c.Next()
	}
}

// UserList validates optional pagination and role filter.
func UserList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int   `json:"page"`
			Limit *int   `json:"limit"`
			Role  string `json:"role"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid query parameters!")
		}

		if reqData.Page != nil && *reqData.Page < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{"page": "Page must be greater than 0!"})
		}
		if reqData.Limit != nil && *reqData.Limit < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{"limit": "Limit must be greater than 0!"})
		}

		c.Locals("validatedUserList", reqData)
		return c.Next()
	}
}
