package models

import (
	"time"

	"gorm.io/gorm"
)

type UserAccount struct {
	gorm.Model
	Username        string    `json:"username" gorm:"uniqueIndex;not null"`
	Email           string    `json:"email" gorm:"uniqueIndex;not null"`
	Password        string    `json:"-" gorm:"not null"`
	FirstName       string    `json:"first_name" gorm:"default:''"`
	LastName        string    `json:"last_name" gorm:"default:''"`
	PhoneNumber     string    `json:"phone_number" gorm:"default:''"`
	Role            string    `json:"role" gorm:"default:'learner'"` // learner, provider, admin
	IsEmailVerified bool      `json:"is_email_verified" gorm:"default:false"`
	LastLogin       time.Time `json:"last_login" gorm:"default:NULL"`
	IsDeleted       bool      `json:"is_deleted" gorm:"default:false"`
}
