package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up the moderation routes (admin only)
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin))

	adminGroup.Get("/pending", validators.CourseList(), controllers.ListPendingCourses)
	adminGroup.Post("/:id/approve", validators.CourseIDParam(), controllers.ApproveCourse)
	adminGroup.Post("/:id/reject", validators.CourseIDParam(), validators.RejectCourse(), controllers.RejectCourse)
}
