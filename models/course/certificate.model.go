package course

import (
	"time"

	"gorm.io/gorm"
)

// Certificate represents an issued certificate of completion
type Certificate struct {
	gorm.Model
	UserID            uint      `json:"user_id" gorm:"index;not null"`
	CourseID          uint      `json:"course_id" gorm:"index;not null"`
	EnrollmentID      uint      `json:"enrollment_id" gorm:"index;not null"`
	CertificateNumber string    `json:"certificate_number" gorm:"unique"`
	CertificateURL    string    `json:"certificate_url"`
	IssuedAt          time.Time `json:"issued_at"`
	IsDeleted         bool      `json:"is_deleted" gorm:"default:false"`
}
