package models

// ItineraryItemKind distinguishes snapshot sources.
type ItineraryItemKind string

const (
	ItemKindSpot          ItineraryItemKind = "spot"
	ItemKindAccommodation ItineraryItemKind = "accommodation"
)

// ItineraryItem is an immutable snapshot of a catalog entity taken at
// add time. Later edits to the catalog do not propagate into saved
// itineraries.
type ItineraryItem struct {
	EntityID     string            `json:"entity_id"`
	Kind         ItineraryItemKind `json:"kind"`
	Name         string            `json:"name"`
	Location     string            `json:"location,omitempty"`
	Municipality string            `json:"municipality,omitempty"`
	Category     []string          `json:"category,omitempty"`
	ImageURL     string            `json:"image_url,omitempty"`
	Rating       float64           `json:"rating,omitempty"`
}

// ItineraryModel is a user-owned, named, ordered collection of snapshots.
type ItineraryModel struct {
	Base
	UserID       string          `json:"user_id"       gorm:"index;not null"`
	Name         string          `json:"name"          gorm:"not null"`
	Items        []ItineraryItem `json:"items"         gorm:"type:json;serializer:json"`
	CategoryTags StringArray     `json:"category_tags" gorm:"type:json;serializer:json"`
}

func (ItineraryModel) TableName() string { return "itineraries" }

// HasEntity reports whether the itinerary already contains a snapshot of
// the given entity.
func (m *ItineraryModel) HasEntity(entityID string) bool {
	for _, item := range m.Items {
		if item.EntityID == entityID {
			return true
		}
	}
	return false
}

// RecomputeCategoryTags derives the tag set from the current items,
// preserving first-seen order and deduplicating case-insensitively.
func (m *ItineraryModel) RecomputeCategoryTags() {
	seen := make(map[string]struct{})
	tags := StringArray{}
	for _, item := range m.Items {
		for _, tag := range item.Category {
			key := normalizeTag(tag)
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			tags = append(tags, tag)
		}
	}
	m.CategoryTags = tags
}
