package paymentValidator

import (
	"lms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type FreeEnrollRequest struct {
	CourseID uint `json:"courseId" validate:"required"`
}

type CardPaymentRequest struct {
	CourseID   uint   `json:"courseId" validate:"required"`
	CardNumber string `json:"cardNumber" validate:"required,min=12,max=19,numeric"`
	CardHolder string `json:"cardHolder" validate:"required,min=2"`
	Expiry     string `json:"expiry" validate:"required,len=5"` // MM/YY
	CVV        string `json:"cvv" validate:"required,min=3,max=4,numeric"`
}

type GatewayVerifyRequest struct {
	CourseID  uint   `json:"courseId" validate:"required"`
	OrderID   string `json:"orderId" validate:"required"`
	PaymentID string `json:"paymentId" validate:"required"`
}

func FreeEnroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(FreeEnrollRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request body!")
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("validatedFreeEnroll", reqData)
		return c.Next()
	}
}

func CardPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CardPaymentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request body!")
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("validatedCardPayment", reqData)
		return c.Next()
	}
}

func GatewayVerify() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(GatewayVerifyRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request body!")
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("validatedGatewayVerify", reqData)
		return c.Next()
	}
}

func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, ve := range verrs {
			errors[ve.Field()] = "failed on the '" + ve.Tag() + "' rule"
		}
	} else {
		errors["request"] = err.Error()
	}
	return errors
}
