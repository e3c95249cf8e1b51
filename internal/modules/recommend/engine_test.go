package recommend

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wandererhq/wanderer-core/internal/models"
)

func TestScoreEmptyPreferencesIsZero(t *testing.T) {
	w := DefaultWeights()
	c := Candidate{
		Name:                  "Cagsawa Ruins",
		Municipality:          "Daraga",
		Category:              []string{"History", "Nature"},
		SceneryTypes:          []string{"mountain"},
		BudgetLevel:           "budget",
		AccessibilityFriendly: true,
		IsHiddenGem:           false,
		Rating:                4.7,
	}

	assert.Zero(t, Score(w, &models.Preferences{}, &c))
	assert.Zero(t, Score(w, nil, &c))
}

func TestScoreDistrictMatchIgnoresCasing(t *testing.T) {
	w := DefaultWeights()
	prefs := &models.Preferences{District: "2nd District"}

	for _, municipality := range []string{"Legazpi", "LEGAZPI CITY", "legazpi city", "Brgy. Rawis, Legazpi"} {
		c := Candidate{Municipality: municipality}
		assert.Equal(t, w.District, Score(w, prefs, &c), "municipality %q", municipality)
	}

	c := Candidate{Municipality: "Tabaco"}
	assert.Zero(t, Score(w, prefs, &c))
}

func TestScoreAnyDistrictContributesNothing(t *testing.T) {
	w := DefaultWeights()
	prefs := &models.Preferences{District: AnyDistrict}
	c := Candidate{Municipality: "Legazpi"}
	assert.Zero(t, Score(w, prefs, &c))
}

func TestScoreBudgetMappingIsExact(t *testing.T) {
	w := DefaultWeights()
	prefs := &models.Preferences{BudgetRange: "Moderate"}

	moderate := Candidate{BudgetLevel: "moderate"}
	midRange := Candidate{Category: []string{"Mid-range"}}
	luxury := Candidate{BudgetLevel: "premium"}
	cheap := Candidate{BudgetLevel: "budget"}

	assert.Equal(t, w.Budget, Score(w, prefs, &moderate))
	assert.Equal(t, w.Budget, Score(w, prefs, &midRange))
	assert.Zero(t, Score(w, prefs, &luxury))
	assert.Zero(t, Score(w, prefs, &cheap))
}

func TestScoreActivityCountsPerMatch(t *testing.T) {
	w := DefaultWeights()
	prefs := &models.Preferences{Activities: []string{"Hiking", "Swimming", "Museums"}}
	c := Candidate{Category: []string{"Hiking Trails", "Swimming"}}

	assert.Equal(t, 2*w.Activity, Score(w, prefs, &c))
}

func TestScorePlacePreference(t *testing.T) {
	w := DefaultWeights()
	gem := Candidate{IsHiddenGem: true}
	popular := Candidate{IsHiddenGem: false}

	hidden := &models.Preferences{PlacePreference: models.PlaceHiddenGems}
	assert.Equal(t, w.PlaceMatch, Score(w, hidden, &gem))
	assert.Zero(t, Score(w, hidden, &popular))

	pop := &models.Preferences{PlacePreference: models.PlacePopular}
	assert.Equal(t, w.PlaceMatch, Score(w, pop, &popular))
	assert.Zero(t, Score(w, pop, &gem))

	both := &models.Preferences{PlacePreference: models.PlaceBoth}
	assert.Equal(t, w.PlaceBoth, Score(w, both, &gem))
	assert.Equal(t, w.PlaceBoth, Score(w, both, &popular))
}

func TestScoreRatingBoostProportional(t *testing.T) {
	w := DefaultWeights()
	prefs := &models.Preferences{Scenery: []string{"beach"}}

	rated := Candidate{Rating: 5}
	assert.Equal(t, w.RatingBoost, Score(w, prefs, &rated))

	half := Candidate{Rating: 2.5}
	assert.InDelta(t, w.RatingBoost/2, Score(w, prefs, &half), 1e-9)

	unrated := Candidate{}
	assert.Zero(t, Score(w, prefs, &unrated))
}

func TestScoreAccessibility(t *testing.T) {
	w := DefaultWeights()
	prefs := &models.Preferences{AccessibilityNeeded: true}

	friendly := Candidate{AccessibilityFriendly: true}
	assert.Equal(t, w.Accessibility, Score(w, prefs, &friendly))

	unfriendly := Candidate{}
	assert.Zero(t, Score(w, prefs, &unfriendly))
}

func TestRankStableOnTies(t *testing.T) {
	w := DefaultWeights()
	prefs := &models.Preferences{District: "1st District"}

	candidates := []Candidate{
		{ID: "a", Municipality: "Tiwi"},
		{ID: "b", Municipality: "Tabaco"},
		{ID: "c", Municipality: "Legazpi"}, // no match, sinks
		{ID: "d", Municipality: "Bacacay"},
	}

	ranked := Rank(w, prefs, candidates, Options{})
	require.Len(t, ranked, 4)
	assert.Equal(t, "a", ranked[0].ID)
	assert.Equal(t, "b", ranked[1].ID)
	assert.Equal(t, "d", ranked[2].ID)
	assert.Equal(t, "c", ranked[3].ID)
}

func TestRankTruncation(t *testing.T) {
	w := DefaultWeights()
	prefs := &models.Preferences{PlacePreference: models.PlaceBoth}

	var candidates []Candidate
	for i := 0; i < 20; i++ {
		candidates = append(candidates, Candidate{ID: fmt.Sprintf("c%d", i)})
	}

	ranked := Rank(w, prefs, candidates, Options{Limit: 6})
	assert.Len(t, ranked, 6)

	ranked = Rank(w, prefs, candidates[:3], Options{Limit: 6})
	assert.Len(t, ranked, 3)
}

func TestRankDropZeroScores(t *testing.T) {
	w := DefaultWeights()
	prefs := &models.Preferences{District: "3rd District"}

	candidates := []Candidate{
		{ID: "match", Municipality: "Ligao"},
		{ID: "miss", Municipality: "Tiwi"},
	}

	ranked := Rank(w, prefs, candidates, Options{DropZeroScores: true})
	require.Len(t, ranked, 1)
	assert.Equal(t, "match", ranked[0].ID)

	kept := Rank(w, prefs, candidates, Options{})
	assert.Len(t, kept, 2)
}

func TestScoreIsAdditiveAcrossSignals(t *testing.T) {
	w := DefaultWeights()
	prefs := &models.Preferences{
		District:            "2nd District",
		TravelerTypes:       []string{"Adventure"},
		Scenery:             []string{"mountain"},
		BudgetRange:         "Budget-friendly",
		PlacePreference:     models.PlacePopular,
		AccessibilityNeeded: true,
	}
	c := Candidate{
		Municipality:          "Daraga",
		Category:              []string{"Adventure", "Nature"},
		SceneryTypes:          []string{"mountain", "rural"},
		BudgetLevel:           "budget",
		AccessibilityFriendly: true,
		Rating:                5,
	}

	want := w.District + w.TravelerType + w.Scenery + w.Budget + w.PlaceMatch + w.Accessibility + w.RatingBoost
	assert.InDelta(t, want, Score(w, prefs, &c), 1e-9)
}
