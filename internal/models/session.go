package models

import "time"

// UserSession tracks signed-in JWT sessions so tokens can be revoked.
type UserSession struct {
	Base
	UserID    string     `json:"user_id" gorm:"index;not null"`
	IP        string     `json:"ip"`
	UA        string     `json:"ua"      gorm:"type:varchar(512)"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at"`
}

func (UserSession) TableName() string { return "user_sessions" }
