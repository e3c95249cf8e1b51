package models

// PlacePreference selects between lesser-known and well-known spots.
type PlacePreference string

const (
	PlaceHiddenGems PlacePreference = "Hidden Gems"
	PlacePopular    PlacePreference = "Popular"
	PlaceBoth       PlacePreference = "Both"
)

// Preferences is the onboarding survey result embedded in a profile.
// Every field is optional; an absent field means "no opinion" and
// contributes nothing to recommendation scores.
type Preferences struct {
	District            string          `json:"district,omitempty"`
	TravelerTypes       []string        `json:"traveler_types,omitempty"`
	Activities          []string        `json:"activities,omitempty"`
	Scenery             []string        `json:"scenery,omitempty"`
	BudgetRange         string          `json:"budget_range,omitempty"`
	PlacePreference     PlacePreference `json:"place_preference,omitempty"`
	AccessibilityNeeded bool            `json:"accessibility_needed,omitempty"`
	TravelPace          string          `json:"travel_pace,omitempty"`
	Companions          string          `json:"companions,omitempty"`
	AutoRecommendations bool            `json:"auto_recommendations"`
}
