package notificationRoutes

import (
	controllers "lms/controllers/notification"
	"lms/middleware"
	validators "lms/validators/notification"

	"github.com/gofiber/fiber/v2"
)

// SetupNotificationRoutes sets up the notification read-side routes
func SetupNotificationRoutes(app *fiber.App) {
	notificationGroup := app.Group("/notifications", middleware.JWTMiddleware)

	notificationGroup.Get("/", controllers.GetNotifications)
	notificationGroup.Get("/unread-count", controllers.GetUnreadCount)
	notificationGroup.Put("/read-all", controllers.MarkAllRead)
	notificationGroup.Put("/:id/read", validators.NotificationIDParam(), controllers.MarkRead)
}
