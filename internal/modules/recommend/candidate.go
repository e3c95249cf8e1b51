package recommend

import "github.com/wandererhq/wanderer-core/internal/models"

// Candidate is the scoring view of a catalog entity. Spots and
// accommodations adapt into it so one engine serves every surface.
type Candidate struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	Location              string   `json:"location,omitempty"`
	Municipality          string   `json:"municipality,omitempty"`
	Category              []string `json:"category,omitempty"`
	SceneryTypes          []string `json:"scenery_types,omitempty"`
	BudgetLevel           string   `json:"budget_level,omitempty"` // spot budget bucket, empty for accommodations
	PriceRange            string   `json:"price_range,omitempty"`  // accommodation free text, empty for spots
	AccessibilityFriendly bool     `json:"accessibility_friendly,omitempty"`
	IsHiddenGem           bool     `json:"is_hidden_gem,omitempty"`
	Rating                float64  `json:"rating,omitempty"`
}

// Scored pairs a candidate with its computed score.
type Scored struct {
	Candidate
	Score float64 `json:"score"`
}

// FromSpot adapts a tourist spot for scoring.
func FromSpot(s *models.SpotModel) Candidate {
	return Candidate{
		ID:                    s.ID,
		Name:                  s.Name,
		Location:              s.Location,
		Municipality:          s.Municipality,
		Category:              s.Category,
		SceneryTypes:          s.SceneryTypes,
		BudgetLevel:           string(s.BudgetLevel),
		AccessibilityFriendly: s.AccessibilityFriendly,
		IsHiddenGem:           s.IsHiddenGem,
		Rating:                s.Rating,
	}
}

// FromAccommodation adapts an accommodation for scoring. Accommodations
// have no hidden-gem or accessibility flags of their own, so those signals
// stay silent for them.
func FromAccommodation(a *models.AccommodationModel) Candidate {
	return Candidate{
		ID:           a.ID,
		Name:         a.Name,
		Location:     a.Location,
		Municipality: a.Municipality,
		Category:     a.Category,
		PriceRange:   a.PriceRange,
		Rating:       a.Rating,
	}
}
