package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up catalogue, course management and enrollment
// progress routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Catalogue (approved courses only for non-admin)
	courseGroup.Get("/list", middleware.JWTMiddleware, validators.CourseList(), controllers.GetAllCourses)

	// Course management (instructor or admin)
	courseGroup.Post("/",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleInstructor, models.RoleAdmin),
		controllers.CreateCourse)
	courseGroup.Put("/:id",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleInstructor, models.RoleAdmin),
		validators.CourseIDParam(), validators.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Delete("/:id",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleInstructor, models.RoleAdmin),
		validators.CourseIDParam(), controllers.DeleteCourse)

	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseIDParam(), controllers.GetCourseDetails)

	// Progress tracking
	courseGroup.Put("/:id/progress", middleware.JWTMiddleware, validators.CourseIDParam(), validators.UpdateProgress(), controllers.UpdateProgress)
	courseGroup.Post("/:id/complete", middleware.JWTMiddleware, validators.CourseIDParam(), controllers.CompleteCourse)

	// Caller's enrollments
	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, validators.CourseList(), controllers.GetEnrollments)
}
