package models

import (
	"time"

	"gorm.io/gorm"
)

// SessionHistory records one row per successful login
type SessionHistory struct {
	gorm.Model
	UserID    uint       `json:"user_id" gorm:"index;not null"`
	TokenID   string     `json:"token_id"` // jti claim of the issued JWT
	IPAddress string     `json:"ip_address"`
	Device    string     `json:"device"`
	LoginAt   time.Time  `json:"login_at"`
	LogoutAt  *time.Time `json:"logout_at"`
	IsDeleted bool       `gorm:"default:false"`
}
