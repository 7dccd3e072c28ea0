package courseValidator

import (
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// UpdateProgress validates a progress update. totalLessons must be
// positive: a zero value would divide by zero downstream.
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			LessonIndex  *int `json:"lessonIndex"`
			TotalLessons *int `json:"totalLessons"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request body!")
		}

		if reqData.LessonIndex == nil || reqData.TotalLessons == nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"body": "lessonIndex and totalLessons are required!",
			})
		}

		if *reqData.TotalLessons <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusUnprocessableEntity, middleware.KindInvalidArgument, "totalLessons must be greater than 0!")
		}
		if *reqData.LessonIndex < 0 {
			return middleware.ErrorResponse(c, fiber.StatusUnprocessableEntity, middleware.KindInvalidArgument, "lessonIndex cannot be negative!")
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
