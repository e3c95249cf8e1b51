package models

import "time"

// UserModel is a traveler profile. Admins are plain users that carry an
// "admin" row in user_roles.
type UserModel struct {
	Base
	Email               string       `json:"email"          gorm:"uniqueIndex;not null"`
	Password            string       `json:"-"              gorm:"not null"`
	FirstName           string       `json:"first_name"`
	LastName            string       `json:"last_name"`
	MiddleInitial       string       `json:"middle_initial" gorm:"type:varchar(4)"`
	Suffix              string       `json:"suffix"         gorm:"type:varchar(16)"`
	AvatarURL           string       `json:"avatar_url"`
	Preferences         *Preferences `json:"preferences,omitempty" gorm:"type:json;serializer:json"`
	OnboardingCompleted bool         `json:"onboarding_completed"  gorm:"default:false"`
	LastLoginTime       *time.Time   `json:"last_login_time"`
	LastLoginIP         string       `json:"last_login_ip"`
	Roles               []RoleModel  `json:"roles,omitempty" gorm:"foreignKey:UserID"`
}

func (UserModel) TableName() string { return "profiles" }

// RoleModel assigns a role to a user. A user is admin iff a row with
// role "admin" exists. Removing every role deactivates the account,
// mirroring the original product behavior.
type RoleModel struct {
	Base
	UserID string `json:"user_id" gorm:"index:idx_user_role,unique;not null"`
	Role   string `json:"role"    gorm:"index:idx_user_role,unique;not null"`
}

func (RoleModel) TableName() string { return "user_roles" }

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)
