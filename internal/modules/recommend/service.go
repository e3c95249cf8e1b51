package recommend

import (
	"errors"

	"github.com/wandererhq/wanderer-core/internal/models"
	"gorm.io/gorm"
)

// Default top-N per surface.
const (
	DefaultSpotLimit          = 8
	DefaultAccommodationLimit = 6
	DefaultFeedLimit          = 12
	DefaultNearbyLimit        = 10
)

type Service struct {
	db      *gorm.DB
	weights Weights
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, weights: DefaultWeights()}
}

// preferencesFor loads the user's survey record. Users who skipped
// onboarding, or switched auto recommendations off, get no personalized
// results rather than an error.
func (s *Service) preferencesFor(userID string) (*models.Preferences, error) {
	var u models.UserModel
	if err := s.db.Select("id, preferences, onboarding_completed").First(&u, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !u.OnboardingCompleted || u.Preferences == nil || !u.Preferences.AutoRecommendations {
		return nil, nil
	}
	return u.Preferences, nil
}

// Spots returns the top scored tourist spots for a user.
func (s *Service) Spots(userID string, limit int) ([]Scored, error) {
	prefs, err := s.preferencesFor(userID)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		return []Scored{}, nil
	}

	var spots []models.SpotModel
	if err := s.db.Find(&spots).Error; err != nil {
		return nil, err
	}
	candidates := make([]Candidate, 0, len(spots))
	for i := range spots {
		candidates = append(candidates, FromSpot(&spots[i]))
	}

	if limit <= 0 {
		limit = DefaultSpotLimit
	}
	return Rank(s.weights, prefs, candidates, Options{Limit: limit}), nil
}

// Accommodations returns the top scored accommodations for a user.
func (s *Service) Accommodations(userID string, limit int) ([]Scored, error) {
	prefs, err := s.preferencesFor(userID)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		return []Scored{}, nil
	}

	var stays []models.AccommodationModel
	if err := s.db.Find(&stays).Error; err != nil {
		return nil, err
	}
	candidates := make([]Candidate, 0, len(stays))
	for i := range stays {
		candidates = append(candidates, FromAccommodation(&stays[i]))
	}

	if limit <= 0 {
		limit = DefaultAccommodationLimit
	}
	return Rank(s.weights, prefs, candidates, Options{Limit: limit}), nil
}

// Feed returns the homepage personalized feed: spots only, zero-score
// entries hidden so unsurveyed signals never pad the feed.
func (s *Service) Feed(userID string, limit int) ([]Scored, error) {
	prefs, err := s.preferencesFor(userID)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		return []Scored{}, nil
	}

	var spots []models.SpotModel
	if err := s.db.Find(&spots).Error; err != nil {
		return nil, err
	}
	candidates := make([]Candidate, 0, len(spots))
	for i := range spots {
		candidates = append(candidates, FromSpot(&spots[i]))
	}

	if limit <= 0 {
		limit = DefaultFeedLimit
	}
	return Rank(s.weights, prefs, candidates, Options{Limit: limit, DropZeroScores: true}), nil
}

// Nearby returns spots in the user's preferred district, highest rated
// first. This is the coarse district filter, not the full scorer.
func (s *Service) Nearby(userID string, limit int) ([]models.SpotModel, error) {
	prefs, err := s.preferencesFor(userID)
	if err != nil {
		return nil, err
	}
	if prefs == nil || prefs.District == "" || prefs.District == AnyDistrict {
		return []models.SpotModel{}, nil
	}

	var spots []models.SpotModel
	if err := s.db.Order("rating DESC").Find(&spots).Error; err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultNearbyLimit
	}
	nearby := make([]models.SpotModel, 0, limit)
	for i := range spots {
		if matchesDistrict(prefs.District, spots[i].Municipality) || matchesDistrict(prefs.District, spots[i].Location) {
			nearby = append(nearby, spots[i])
			if len(nearby) == limit {
				break
			}
		}
	}
	return nearby, nil
}
