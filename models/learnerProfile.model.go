package models

import "gorm.io/gorm"

// LearnerProfile holds learner-facing profile details, created at registration
type LearnerProfile struct {
	gorm.Model
	UserID          uint   `json:"user_id" gorm:"index;not null"`
	CoverImageURL   string `json:"cover_image_url" gorm:"default:''"`
	ProfileImageURL string `json:"profile_image_url" gorm:"default:''"`
	Occupation      string `json:"occupation" gorm:"default:''"`
	CompanyName     string `json:"company_name" gorm:"default:''"`
	AboutMyself     string `json:"about_myself" gorm:"type:text;default:''"`
	IsDeleted       bool   `json:"is_deleted" gorm:"default:false"`
}
