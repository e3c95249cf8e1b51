package models

import "time"

// EventModel is a festival or happening promoted on the discovery feed.
// Date is stored date-only; the CSV importer accepts YYYY-MM-DD.
type EventModel struct {
	Base
	Name         string      `json:"name"         gorm:"not null;index"`
	Description  string      `json:"description"  gorm:"type:text"`
	Location     string      `json:"location"`
	Municipality string      `json:"municipality" gorm:"index"`
	Category     StringArray `json:"category"     gorm:"type:json;serializer:json"`
	Date         *time.Time  `json:"date"         gorm:"type:date;index"`
	ImageURL     string      `json:"image_url"`
}

func (EventModel) TableName() string { return "events" }
