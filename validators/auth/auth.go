package authValidator

import (
	"lms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type SendSmsRequest struct {
	CourseID uint   `json:"courseId" validate:"required"`
	Mobile   string `json:"mobile" validate:"required,min=10,max=15"`
}

type VerifySmsRequest struct {
	Mobile string `json:"mobile" validate:"required,min=10,max=15"`
	Code   string `json:"code" validate:"required,len=6,numeric"`
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request body!")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

func SendSmsCode() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SendSmsRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request body!")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedSendSms", reqData)
		return c.Next()
	}
}

func VerifySmsCode() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(VerifySmsRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request body!")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedVerifySms", reqData)
		return c.Next()
	}
}

// fieldErrors flattens validator violations into the field->message map
// used by the validation envelope.
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
