package models

import (
	"gorm.io/gorm"
)

// Severity enum
const (
	SeverityInfo    = "info"
	SeveritySuccess = "success"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Notification is a side-effect artifact of another entity's state
// transition (course approval/rejection, instructor approval). It is
// written by the async notification worker, never inline.
type Notification struct {
	gorm.Model
	UserID   uint   `gorm:"not null;index" json:"userId"`
	Title    string `gorm:"not null" json:"title"`
	Message  string `gorm:"type:text;not null" json:"message"`
	Severity string `gorm:"type:varchar(10);default:'info'" json:"severity"`
	IsRead   bool   `gorm:"default:false" json:"isRead"`
	Data     string `gorm:"type:text;default:''" json:"data,omitempty"` // optional JSON payload
}

func (Notification) TableName() string {
	return "notifications"
}
