package course

import "gorm.io/gorm"

// CourseReview is a learner's rating of a marketplace or external course.
// Exactly one of CourseID / ExternalReferenceNumber identifies the course.
type CourseReview struct {
	gorm.Model
	UserID                  uint   `json:"user_id" gorm:"index;not null"`
	CourseID                *uint  `json:"course_id" gorm:"index"`
	ExternalReferenceNumber string `json:"external_reference_number" gorm:"index;default:''"`
	Rating                  int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment                 string `json:"comment" gorm:"type:text;default:''"`
	IsDeleted               bool   `json:"is_deleted" gorm:"default:false"`
}
