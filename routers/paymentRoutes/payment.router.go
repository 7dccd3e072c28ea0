package paymentRoutes

import (
	controllers "lms/controllers/payment"
	"lms/middleware"
	validators "lms/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes sets up payment and enrollment-creation routes
func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/payment", middleware.JWTMiddleware)

	paymentGroup.Post("/free-enroll", validators.FreeEnroll(), controllers.FreeEnroll)
	paymentGroup.Post("/card", validators.CardPayment(), controllers.CardPayment)
	paymentGroup.Post("/gateway/verify", validators.GatewayVerify(), controllers.GatewayVerify)
}
