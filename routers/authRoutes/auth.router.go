package authRoutes

import (
	controllers "lms/controllers/auth"
	"lms/middleware"
	validators "lms/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up signup, login and SMS verification routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", controllers.Signup)
	authGroup.Post("/login", validators.Login(), controllers.Login)

	// Course SMS verification
	authGroup.Post("/sms/send", middleware.JWTMiddleware, validators.SendSmsCode(), controllers.SendSmsCode)
	authGroup.Post("/sms/verify", middleware.JWTMiddleware, validators.VerifySmsCode(), controllers.VerifySmsCode)
}
