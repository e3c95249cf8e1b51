package models

// ReviewModel is a user's review of a tourist spot.
// At most one review per (user, spot) pair is allowed; the service layer
// checks before insert and the unique index backstops concurrent clients.
type ReviewModel struct {
	Base
	SpotID  string     `json:"spot_id" gorm:"index:idx_spot_user,unique;not null"`
	UserID  string     `json:"user_id" gorm:"index:idx_spot_user,unique;not null"`
	Rating  int        `json:"rating"  gorm:"not null"`
	Comment string     `json:"comment" gorm:"type:text"`
	User    *UserModel `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (ReviewModel) TableName() string { return "reviews" }
