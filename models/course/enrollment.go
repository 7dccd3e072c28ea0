package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment status enum
const (
	EnrollmentInProgress = "IN_PROGRESS"
	EnrollmentCompleted  = "COMPLETED"
	EnrollmentAbandoned  = "ABANDONED" // seeded data only, no live transition
)

// Payment method enum
const (
	PaymentMethodCard    = "CARD"
	PaymentMethodGateway = "GATEWAY"
	PaymentMethodFree    = "FREE"
)

// Payment status enum
const (
	PaymentPending  = "PENDING"
	PaymentPaid     = "PAID"
	PaymentFailed   = "FAILED"
	PaymentRefunded = "REFUNDED"
)

// Enrollment links one student to one course with payment metadata and
// progress. The composite unique index is the authoritative backstop
// against double enrollment; the application-level existence check alone
// is a race.
type Enrollment struct {
	gorm.Model
	UserID   uint `gorm:"not null;uniqueIndex:idx_enrollment_user_course" json:"userId"`
	CourseID uint `gorm:"not null;uniqueIndex:idx_enrollment_user_course" json:"courseId"`

	Status   string `gorm:"type:varchar(20);default:'IN_PROGRESS'" json:"status"`
	Progress int    `gorm:"default:0" json:"progress"` // 0-100

	PaymentMethod string  `gorm:"type:varchar(20);not null" json:"paymentMethod"`
	PaymentStatus string  `gorm:"type:varchar(20);default:'PENDING'" json:"paymentStatus"`
	TransactionID string  `gorm:"default:''" json:"transactionId"`
	AmountPaid    float64 `gorm:"default:0" json:"amountPaid"`

	EnrolledAt     time.Time `gorm:"not null" json:"enrolledAt"`
	LastActivityAt time.Time `gorm:"not null" json:"lastActivityAt"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

// ComputeProgress converts a lesson position into a 0-100 percentage.
// totalLessons must be positive and lessonIndex non-negative.
func ComputeProgress(lessonIndex, totalLessons int) (int, bool) {
	if totalLessons <= 0 || lessonIndex < 0 {
		return 0, false
	}
	progress := int(float64(lessonIndex+1)/float64(totalLessons)*100 + 0.5)
	if progress > 100 {
		progress = 100
	}
	return progress, true
}

// DeriveStatus maps a progress percentage onto the enrollment status.
// Progress 100 always means COMPLETED.
func DeriveStatus(progress int) string {
	if progress >= 100 {
		return EnrollmentCompleted
	}
	return EnrollmentInProgress
}
