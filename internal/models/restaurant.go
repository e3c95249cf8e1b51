package models

// RestaurantModel is a dining entry in the catalog.
type RestaurantModel struct {
	Base
	Name         string      `json:"name"         gorm:"not null;index"`
	Description  string      `json:"description"  gorm:"type:text"`
	Location     string      `json:"location"`
	Municipality string      `json:"municipality" gorm:"index"`
	Cuisine      StringArray `json:"cuisine"      gorm:"type:json;serializer:json"`
	PriceRange   string      `json:"price_range"`
	Rating       float64     `json:"rating"       gorm:"default:0"`
	Latitude     *float64    `json:"latitude"`
	Longitude    *float64    `json:"longitude"`
	ImageURL     string      `json:"image_url"`
	ContactInfo  string      `json:"contact_info"`
}

func (RestaurantModel) TableName() string { return "restaurants" }
