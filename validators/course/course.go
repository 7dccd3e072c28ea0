package courseValidator

import (
	"lms/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CourseIDParam validates the :id route parameter and stashes it as int.
func CourseIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Course ID is required!")
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid Course ID!")
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// CourseList validates optional pagination query parameters.
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
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

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

// UpdateCourse validates the JSON body for a course update. All fields
// are optional; present ones must satisfy the creation rules.
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string  `json:"title"`
			Description string  `json:"description"`
			Category    string  `json:"category"`
			Level       string  `json:"level"`
			Price       *float64 `json:"price"`
			Duration    *int64  `json:"duration"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request body!")
		}

		errors := make(map[string]string)

		if reqData.Title != "" {
			if l := len(strings.TrimSpace(reqData.Title)); l < 5 || l > 100 {
				errors["title"] = "Title must be between 5 and 100 characters!"
			}
		}
		if reqData.Description != "" && len(strings.TrimSpace(reqData.Description)) < 20 {
			errors["description"] = "Description must be at least 20 characters long!"
		}
		if reqData.Level != "" && !validLevel(reqData.Level) {
			errors["level"] = "Level must be beginner, intermediate or advanced!"
		}
		if reqData.Price != nil && *reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}
		if reqData.Duration != nil && *reqData.Duration < 1 {
			errors["duration"] = "Duration must be at least 1 hour!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// RejectCourse requires a non-blank rejection reason.
func RejectCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Reason string `json:"reason"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request body!")
		}

		if strings.TrimSpace(reqData.Reason) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"reason": "Rejection reason is required!"})
		}

		c.Locals("validatedReject", reqData)
		return c.Next()
	}
}

func validLevel(level string) bool {
	return level == "beginner" || level == "intermediate" || level == "advanced"
}
