package models

import "gorm.io/gorm"

// ProviderProfile holds training-provider details, created at registration
type ProviderProfile struct {
	gorm.Model
	UserID           uint   `json:"user_id" gorm:"index;not null"`
	LectureTeamID    *uint  `json:"lecture_team_id"`
	OrganizationName string `json:"organization_name" gorm:"default:''"`
	PhoneNumber      string `json:"phone_number" gorm:"default:''"`
	Address          string `json:"address" gorm:"default:''"`
	IsDeleted        bool   `json:"is_deleted" gorm:"default:false"`
}
