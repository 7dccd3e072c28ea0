package controllers

import (
	"errors"
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"
	"lms/validators/auth"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

var validate = validator.New()

type signupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Mobile   string `json:"mobile" validate:"omitempty,min=10,max=15"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=STUDENT INSTRUCTOR"`
}

// Signup registers a student or an instructor. Instructor signup arrives
// as multipart/form-data carrying a `cv` PDF; the CV is committed to disk
// only after the user row is created.
func Signup(c *fiber.Ctx) error {
	db := database.Database.Db

	form, err := utils.ParseMultipartForm(c.Body(), c.Get("Content-Type"))
	if err != nil {
		var verr *utils.ValidationError
		if errors.As(err, &verr) {
			return middleware.ValidationErrorResponse(c, map[string]string{verr.Field: verr.Message})
		}
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, err.Error())
	}

	reqData := new(signupRequest)
	if form != nil {
		reqData.Name = form.Fields["name"]
		reqData.Email = form.Fields["email"]
		reqData.Mobile = form.Fields["mobile"]
		reqData.Password = form.Fields["password"]
		reqData.Role = form.Fields["role"]
	} else if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request body!")
	}

	if reqData.Role == "" {
		reqData.Role = models.RoleStudent
	}

	if err := validate.Struct(reqData); err != nil {
		errs := make(map[string]string)
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, ve := range verrs {
				errs[ve.Field()] = "failed on the '" + ve.Tag() + "' rule"
			}
		}
		return middleware.ValidationErrorResponse(c, errs)
	}

	// Instructors must attach a CV; the parser already enforced PDF + size
	var cvFile *utils.FormFile
	if reqData.Role == models.RoleInstructor {
		if form == nil || form.File("cv") == nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"cv": "CV file is required for instructor accounts!"})
		}
		cvFile = form.File("cv")
	}

	// Check if email already exists
	if err := db.Where("email = ? AND is_deleted = false", reqData.Email).First(&models.User{}).Error; err == nil {
		utils.DiscardFiles(form)
		return middleware.ErrorResponse(c, fiber.StatusConflict, middleware.KindValidationError, "Email is already registered!")
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindExternalService, "Failed to process your request!")
	}

	approval := models.ApprovalApproved
	if reqData.Role == models.RoleInstructor {
		approval = models.ApprovalPending
	}

	newUser := models.User{
		Name:           reqData.Name,
		Email:          reqData.Email,
		Mobile:         reqData.Mobile,
		Password:       string(hashedPassword),
		Role:           reqData.Role,
		Status:         models.UserActive,
		ApprovalStatus: approval,
	}

	if err := db.Create(&newUser).Error; err != nil {
		utils.DiscardFiles(form)
		log.Printf("Error saving user to database: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindExternalService, "Failed to Signup user!")
	}

	// Primary write succeeded, commit the CV to disk
	if cvFile != nil {
		if err := utils.CommitFiles(form); err != nil {
			log.Printf("Error storing CV for user %d: %v", newUser.ID, err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindExternalService, "Failed to store uploaded CV!")
		}
		newUser.CVFile = cvFile.Path
		if err := db.Save(&newUser).Error; err != nil {
			log.Printf("Error linking CV for user %d: %v", newUser.ID, err)
		}
	}

	utils.SendWelcomeEmail(newUser.Email, newUser.Name)

	newUser.Password = ""
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", newUser)
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request data!")
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = false", reqData.Email).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.KindUnauthorized, "Invalid email or password!")
	}

	if user.Status == models.UserSuspended {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, middleware.KindForbidden, "Account is suspended!")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.KindUnauthorized, "Invalid email or password!")
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindExternalService, "Failed to login!")
	}

	now := time.Now()
	user.LastLogin = &now
	db.Save(&user)

	user.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// SendSmsCode issues a 6-digit verification code for a course action.
// Only one unverified code stays active per (mobile, user) pair.
func SendSmsCode(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedSendSms").(*authValidator.SendSmsRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request data!")
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ?", reqData.CourseID).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.KindNotFound, "Course not found!")
	}

	// Invalidate earlier unverified codes before issuing a new one
	db.Unscoped().
		Where("mobile = ? AND user_id = ? AND verified = false", reqData.Mobile, userID).
		Delete(&models.SmsVerificationCode{})

	code := utils.GenerateVerificationCode()

	if err := utils.SendCodeToMobile(reqData.Mobile, code); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadGateway, middleware.KindExternalService, "Failed to send SMS code!")
	}

	record := models.SmsVerificationCode{
		UserID:    userID,
		CourseID:  reqData.CourseID,
		Mobile:    reqData.Mobile,
		Code:      code,
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}

	if err := db.Create(&record).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindExternalService, "Failed to create verification code!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "SMS code sent successfully.", nil)
}

func VerifySmsCode(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedVerifySms").(*authValidator.VerifySmsRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.KindValidationError, "Invalid request data!")
	}

	db := database.Database.Db

	var record models.SmsVerificationCode
	if err := db.Where("mobile = ? AND user_id = ? AND code = ? AND verified = false",
		reqData.Mobile, userID, reqData.Code).First(&record).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.KindValidationError, "Invalid verification code!")
	}

	if record.ExpiresAt.Before(time.Now()) {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.KindValidationError, "Verification code has expired!")
	}

	record.Verified = true
	if err := db.Save(&record).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.KindExternalService, "Failed to update verification code!")
	}

	db.Model(&models.User{}).Where("id = ?", userID).Update("is_mobile_verified", true)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Code verified successfully!", nil)
}
