package models

import (
	"time"

	"gorm.io/gorm"
)

// SmsVerificationCode binds a phone number + user + course to a 6-digit
// code. At most one unverified code stays active per (mobile, user) pair;
// older ones are deleted before a new code is issued. Expired rows are
// swept by the cleanup scheduler.
type SmsVerificationCode struct {
	gorm.Model
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CourseID  uint      `gorm:"not null" json:"course_id"`
	Mobile    string    `gorm:"size:15;not null;index" json:"mobile"`
	Code      string    `gorm:"size:6;not null" json:"code"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Verified  bool      `gorm:"default:false" json:"verified"`
}

func (SmsVerificationCode) TableName() string {
	return "sms_verification_codes"
}
