package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment tracks a learner's registration in a course.
// CompletionPercentage is only ever written by the progress engine; every other
// path treats it as read-only.
type Enrollment struct {
	gorm.Model
	UserID               uint      `json:"user_id" gorm:"index;not null"`
	CourseID             uint      `json:"course_id" gorm:"index;not null"`
	CompletionPercentage int       `json:"completion_percentage" gorm:"default:0"` // 0-100, rounded
	IsKicked             bool      `json:"is_kicked" gorm:"default:false"`
	EnrolledAt           time.Time `json:"enrolled_at"`
	IsDeleted            bool      `json:"is_deleted" gorm:"default:false"`
}
