package adminRoutes

import (
	controllers "lms/controllers/admin"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up user administration routes (admin only)
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin))

	adminGroup.Get("/users", validators.UserList(), controllers.ListUsers)
	adminGroup.Put("/users/:id/suspend", validators.UserIDParam(), controllers.SuspendUser)
	adminGroup.Put("/users/:id/reactivate", validators.UserIDParam(), controllers.ReactivateUser)

	adminGroup.Get("/instructors/pending", controllers.ListPendingInstructors)
	adminGroup.Post("/instructors/:id/approve", validators.UserIDParam(), controllers.ApproveInstructor)
}
