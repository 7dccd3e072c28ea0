package course

import (
	"time"

	"gorm.io/gorm"
)

// Course status enum
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Level enum
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Chapter content type enum
const (
	ChapterText  = "TEXT"
	ChapterVideo = "VIDEO"
	ChapterPdf   = "PDF"
)

// Course represents a learning course owned by exactly one instructor.
// Only APPROVED courses are visible to non-admin browse queries.
type Course struct {
	gorm.Model
	InstructorID uint       `gorm:"not null;index" json:"instructorId"`
	Title        string     `gorm:"not null" json:"title"`
	Description  string     `gorm:"type:text;not null" json:"description"`
	Category     string     `gorm:"default:''" json:"category"`
	Level        string     `gorm:"type:varchar(20);default:'beginner'" json:"level"`
	Price        float64    `gorm:"default:0" json:"price"`
	Duration     int64      `gorm:"default:0" json:"duration"` // duration in hours
	Status       string     `gorm:"type:varchar(20);default:'PENDING'" json:"status"`
	ApprovedAt   *time.Time `json:"approvedAt"`
	Rating       float64    `gorm:"default:0" json:"rating"`
	Thumbnail    string     `gorm:"default:''" json:"thumbnail"`

	// Denormalized size of the enrolled-student set. The enrollments
	// unique index keeps this an at-most-once increment per student.
	EnrolledCount int64 `gorm:"default:0" json:"enrolledCount"`

	Chapters []Chapter `gorm:"foreignKey:CourseID" json:"chapters,omitempty"`
}

// Chapter is one ordered content unit within a course: inline text, a
// video file, or a pdf file, plus optional resource links.
type Chapter struct {
	gorm.Model
	CourseID      uint   `gorm:"not null;index" json:"courseId"`
	Title         string `gorm:"not null" json:"title"`
	ContentType   string `gorm:"type:varchar(10);not null" json:"contentType"` // TEXT, VIDEO, PDF
	Body          string `gorm:"type:text;default:''" json:"body,omitempty"`
	FilePath      string `gorm:"default:''" json:"filePath,omitempty"`
	OrderIndex    int    `gorm:"default:0" json:"orderIndex"`
	ResourceLinks string `gorm:"type:text;default:''" json:"resourceLinks,omitempty"` // JSON array string
}

func (Course) TableName() string {
	return "courses"
}

func (Chapter) TableName() string {
	return "chapters"
}
