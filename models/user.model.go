package models

import (
	"time"

	"gorm.io/gorm"
)

// Role enum
const (
	RoleStudent    = "STUDENT"
	RoleInstructor = "INSTRUCTOR"
	RoleAdmin      = "ADMIN"
)

// Account status enum
const (
	UserActive    = "ACTIVE"
	UserSuspended = "SUSPENDED"
)

// Instructor approval enum
const (
	ApprovalPending  = "PENDING"
	ApprovalApproved = "APPROVED"
)

type User struct {
	gorm.Model
	Name         string `gorm:"default:''" json:"name"`
	Email        string `gorm:"unique;not null" json:"email"`
	Mobile       string `gorm:"default:''" json:"mobile"`
	Password     string `gorm:"not null" json:"-"`
	Role         string `gorm:"type:varchar(20);default:'STUDENT'" json:"role"`
	Status       string `gorm:"type:varchar(20);default:'ACTIVE'" json:"status"`
	ProfileImage string `gorm:"default:''" json:"profileImage"`

	// Instructor-only fields. ApprovalStatus gates course creation and
	// visibility of the instructor's catalogue.
	ApprovalStatus string `gorm:"type:varchar(20);default:'APPROVED'" json:"approvalStatus"`
	CVFile         string `gorm:"default:''" json:"cvFile"`

	// Protected accounts (the primary admin) cannot be suspended or demoted.
	// Set at seed time, never derived from configuration.
	IsProtected bool `gorm:"default:false" json:"isProtected"`

	IsMobileVerified bool       `gorm:"default:false" json:"isMobileVerified"`
	LastLogin        *time.Time `json:"lastLogin"`
	IsDeleted        bool       `gorm:"default:false" json:"-"`
}
