package main

import (
	"lms/config"
	"lms/database"
	"lms/models"
	courseModels "lms/models/course"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds a development database: the protected admin, one approved
// instructor with a live course, and a student with sample enrollments
// (including the ABANDONED state, which has no live endpoint).
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	// Bulk reset of enrollments before reseeding. This is the only place
	// enrollments are ever bulk-deleted.
	if err := db.Unscoped().Where("1 = 1").Delete(&courseModels.Enrollment{}).Error; err != nil {
		log.Fatalf("Failed to clear enrollments: %v", err)
	}

	admin := seedUser(db, models.User{
		Name:           "Platform Admin",
		Email:          config.AppConfig.AdminEmail,
		Role:           models.RoleAdmin,
		Status:         models.UserActive,
		ApprovalStatus: models.ApprovalApproved,
		IsProtected:    true,
	}, "admin12345")

	instructor := seedUser(db, models.User{
		Name:           "Demo Instructor",
		Email:          "instructor@learnx.io",
		Role:           models.RoleInstructor,
		Status:         models.UserActive,
		ApprovalStatus: models.ApprovalApproved,
	}, "teach12345")

	student := seedUser(db, models.User{
		Name:           "Demo Student",
		Email:          "student@learnx.io",
		Role:           models.RoleStudent,
		Status:         models.UserActive,
		ApprovalStatus: models.ApprovalApproved,
	}, "learn12345")

	now := time.Now()
	course := courseModels.Course{
		InstructorID: instructor.ID,
		Title:        "Introduction to Backend Engineering",
		Description:  "A hands-on walk through HTTP services, databases and deployment basics.",
		Category:     "engineering",
		Level:        courseModels.LevelBeginner,
		Price:        0,
		Duration:     12,
		Status:       courseModels.StatusApproved,
		ApprovedAt:   &now,
		Chapters: []courseModels.Chapter{
			{Title: "Getting Started", ContentType: courseModels.ChapterText, Body: "Welcome to the course.", OrderIndex: 0},
			{Title: "HTTP Basics", ContentType: courseModels.ChapterText, Body: "Requests, responses, and status codes.", OrderIndex: 1},
		},
	}
	if err := db.Create(&course).Error; err != nil {
		log.Fatalf("Failed to seed course: %v", err)
	}

	// One stale enrollment in the ABANDONED state
	enrollment := courseModels.Enrollment{
		UserID:         student.ID,
		CourseID:       course.ID,
		Status:         courseModels.EnrollmentAbandoned,
		Progress:       40,
		PaymentMethod:  courseModels.PaymentMethodFree,
		PaymentStatus:  courseModels.PaymentPaid,
		EnrolledAt:     now.AddDate(0, -3, 0),
		LastActivityAt: now.AddDate(0, -2, 0),
	}
	if err := db.Create(&enrollment).Error; err != nil {
		log.Fatalf("Failed to seed enrollment: %v", err)
	}
	db.Model(&courseModels.Course{}).Where("id = ?", course.ID).
		UpdateColumn("enrolled_count", gorm.Expr("enrolled_count + 1"))

	log.Printf("Seed complete: admin=%d instructor=%d student=%d course=%d", admin.ID, instructor.ID, student.ID, course.ID)
}

func seedUser(db *gorm.DB, user models.User, password string) models.User {
	var existing models.User
	if err := db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return existing
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("Failed to hash password for %s: %v", user.Email, err)
	}
	user.Password = string(hashed)

	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Failed to seed user %s: %v", user.Email, err)
	}
	return user
}
