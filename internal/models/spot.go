package models

// BudgetLevel buckets an entity's typical cost.
type BudgetLevel string

const (
	BudgetLow      BudgetLevel = "budget"
	BudgetModerate BudgetLevel = "moderate"
	BudgetPremium  BudgetLevel = "premium"
)

// SpotModel is a tourist spot in the provincial catalog.
type SpotModel struct {
	Base
	Name                  string      `json:"name"                   gorm:"not null;index"`
	Description           string      `json:"description"            gorm:"type:text"`
	Location              string      `json:"location"`
	Municipality          string      `json:"municipality"           gorm:"index"`
	Category              StringArray `json:"category"               gorm:"type:json;serializer:json"`
	SceneryTypes          StringArray `json:"scenery_types"          gorm:"type:json;serializer:json"`
	BudgetLevel           BudgetLevel `json:"budget_level"           gorm:"type:varchar(16);index"`
	AccessibilityFriendly bool        `json:"accessibility_friendly" gorm:"default:false"`
	IsHiddenGem           bool        `json:"is_hidden_gem"          gorm:"default:false;index"`
	Rating                float64     `json:"rating"                 gorm:"default:0"`
	ReviewCount           int         `json:"review_count"           gorm:"default:0"`
	Latitude              *float64    `json:"latitude"`
	Longitude             *float64    `json:"longitude"`
	ImageURL              string      `json:"image_url"`
	EntranceFee           string      `json:"entrance_fee"`
	OpeningHours          string      `json:"opening_hours"`
}

func (SpotModel) TableName() string { return "tourist_spots" }
