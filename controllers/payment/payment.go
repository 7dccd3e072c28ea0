package controllers

import (
	"errors"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"
	paymentValidator "lms/validators/payment"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FreeEnroll creates an enrollment in a zero-price course.
func FreeEnroll(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.KindUnauthorized, "Unauthorized!")
	}

	reqData, ok := c.Locals("validatedFreeEnroll").(*paymentValidator.FreeEnrollRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request data!")
	}

	course, errResp := findEnrollableCourse(c, reqData.CourseID)
	if course == nil {
		return errResp
	}

	if course.Price != 0 {
		return middleware.ErrorResponse(c, fiber.StatusUnprocessableEntity, middleware.KindValidationError, "Course is not free!")
	}

	return createEnrollment(c, userID, course, courseModels.PaymentMethodFree, "", 0)
}

// CardPayment simulates a card charge and enrolls on success.
func CardPayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.KindUnauthorized, "Unauthorized!")
	}

	reqData, ok := c.Locals("validatedCardPayment").(*paymentValidator.CardPaymentRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request data!")
	}

	course, errResp := findEnrollableCourse(c, reqData.CourseID)
	if course == nil {
		return errResp
	}

	// Simulated charge: a transaction id stands in for the processor's
	transactionID := "card_" + uuid.NewString()

	return createEnrollment(c, userID, course, courseModels.PaymentMethodCard, transactionID, course.Price)
}

// GatewayVerify checks an externally initiated payment with the gateway
// and enrolls only when the order was captured. Gateway failures never
// create an enrollment.
func GatewayVerify(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.KindUnauthorized, "Unauthorized!")
	}

	reqData, ok := c.Locals("validatedGatewayVerify").(*paymentValidator.GatewayVerifyRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request data!")
	}

	course, errResp := findEnrollableCourse(c, reqData.CourseID)
	if course == nil {
		return errResp
	}

	verifyResp, err := utils.VerifyGatewayPayment(reqData.OrderID, reqData.PaymentID)
	if err != nil {
		log.Printf("Gateway verification failed for order %s: %v", reqData.OrderID, err)
		return middleware.ErrorResponse(c, fiber.StatusBadGateway, middleware.KindExternalService, "Payment gateway verification failed!")
	}

	if verifyResp.Data.State != "CAPTURED" {
		return middleware.ErrorResponse(c, fiber.StatusPaymentRequired, middleware.KindValidationError, "Payment was not captured!")
	}

	return createEnrollment(c, userID, course, courseModels.PaymentMethodGateway, reqData.PaymentID, verifyResp.Data.Amount)
}

// findEnrollableCourse loads an approved course or writes the failure
// response and returns nil.
func findEnrollableCourse(c *fiber.Ctx, courseID uint) (*courseModels.Course, error) {
	var course courseModels.Course
	if err := database.Database.Db.
		Where("id = ? AND status = ?", courseID, courseModels.StatusApproved).
		First(&course).Error; err != nil {
		return nil, middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.KindNotFound, "Course not found or not open for enrollment!")
	}
	return &course, nil
}

// enrollmentCreateError maps a failed enrollment insert onto the error
// envelope. The composite unique index on (user_id, course_id) turns a
// lost duplicate race into gorm.ErrDuplicatedKey, which must surface as
// a 409 conflict, never a second row or a server fault.
func enrollmentCreateError(err error) (status int, kind, message string) {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fiber.StatusConflict, middleware.KindDuplicateEnrollment, "Already enrolled in this course!"
	}
	return fiber.StatusInternalServerError, middleware.KindExternalService, "Failed to enroll in course!"
}

// createEnrollment persists the enrollment and bumps the course's
// enrolled count. The composite unique index resolves races: a concurrent
// duplicate surfaces as gorm.ErrDuplicatedKey, never a second row.
func createEnrollment(c *fiber.Ctx, userID uint, course *courseModels.Course, method, transactionID string, amount float64) error {
	db := database.Database.Db

	// Fast-path duplicate check; the unique index is the backstop
	var existing courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", userID, course.ID).First(&existing).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusConflict, middleware.KindDuplicateEnrollment, "Already enrolled in this course!")
	}

	now := time.Now()
	enrollment := courseModels.Enrollment{
		UserID:         userID,
		CourseID:       course.ID,
		Status:         courseModels.EnrollmentInProgress,
		Progress:       0,
		PaymentMethod:  method,
		PaymentStatus:  courseModels.PaymentPaid,
		TransactionID:  transactionID,
		AmountPaid:     amount,
		EnrolledAt:     now,
		LastActivityAt: now,
	}

	tx := db.Begin()
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		status, kind, message := enrollmentCreateError(err)
		if status == fiber.StatusInternalServerError {
			log.Printf("Error creating enrollment: %v", err)
		}
		return middleware.ErrorResponse(c, status, kind, message)
	}

	// Set semantics: the unique index above guarantees this runs at most
	// once per (student, course) pair.
	if err := tx.Model(&courseModels.Course{}).Where("id = ?", course.ID).
		UpdateColumn("enrolled_count", gorm.Expr("enrolled_count + 1")).Error; err != nil {
		tx.Rollback()
		log.Printf("Error updating enrolled count: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindExternalService, "Failed to enroll in course!")
	}
	tx.Commit()

	// Confirmation mail is best-effort
	var student models.User
	if err := db.Where("id = ?", userID).First(&student).Error; err == nil {
		utils.SendEnrollmentEmail(student.Email, student.Name, course.Title)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}
