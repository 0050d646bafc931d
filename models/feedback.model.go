package models

import "gorm.io/gorm"

// ContactFeedback stores messages submitted through the contact-us form
type ContactFeedback struct {
	gorm.Model
	Name       string `json:"name"`
	Email      string `json:"email"`
	Subject    string `json:"subject" gorm:"default:''"`
	Message    string `json:"message" gorm:"type:text"`
	IsResolved bool   `json:"is_resolved" gorm:"default:false"`
	IsDeleted  bool   `json:"is_deleted" gorm:"default:false"`
}
