package models

// AccommodationModel is a hotel, resort or lodging entry in the catalog.
// PriceRange is free text maintained by admins and loosely matched against
// the budget buckets during scoring.
type AccommodationModel struct {
	Base
	Name         string      `json:"name"          gorm:"not null;index"`
	Description  string      `json:"description"   gorm:"type:text"`
	Location     string      `json:"location"`
	Municipality string      `json:"municipality"  gorm:"index"`
	Category     StringArray `json:"category"      gorm:"type:json;serializer:json"`
	PriceRange   string      `json:"price_range"`
	Amenities    StringArray `json:"amenities"     gorm:"type:json;serializer:json"`
	Rating       float64     `json:"rating"        gorm:"default:0"`
	Latitude     *float64    `json:"latitude"`
	Longitude    *float64    `json:"longitude"`
	ImageURL     string      `json:"image_url"`
	ContactInfo  string      `json:"contact_info"`
}

func (AccommodationModel) TableName() string { return "accommodations" }
