package models

// FavoriteModel marks a catalog entity as saved by a user.
type FavoriteModel struct {
	Base
	UserID   string            `json:"user_id"   gorm:"index:idx_user_entity,unique;not null"`
	EntityID string            `json:"entity_id" gorm:"index:idx_user_entity,unique;not null"`
	Kind     ItineraryItemKind `json:"kind"      gorm:"type:varchar(16)"`
}

func (FavoriteModel) TableName() string { return "favorites" }
