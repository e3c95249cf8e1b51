package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wandererhq/wanderer-core/internal/models"
)

func TestSnapshotSpotCopiesCategory(t *testing.T) {
	spot := &models.SpotModel{
		Name:         "Cagsawa Ruins",
		Location:     "Busay, Daraga",
		Municipality: "Daraga",
		Category:     models.StringArray{"Historical", "Scenic"},
		Rating:       4.6,
	}
	spot.ID = "spot-1"

	item := SnapshotSpot(spot)
	assert.Equal(t, models.ItemKindSpot, item.Kind)
	assert.Equal(t, "spot-1", item.EntityID)
	assert.Equal(t, 4.6, item.Rating)

	// Snapshots must not alias the live catalog row.
	spot.Category[0] = "Changed"
	assert.Equal(t, "Historical", item.Category[0])
}

func TestHasEntityAfterSnapshotAppend(t *testing.T) {
	itinerary := models.ItineraryModel{Items: []models.ItineraryItem{}}
	acc := &models.AccommodationModel{Name: "The Oriental", Municipality: "Legazpi"}
	acc.ID = "acc-1"

	itinerary.Items = append(itinerary.Items, *SnapshotAccommodation(acc))
	assert.True(t, itinerary.HasEntity("acc-1"))
	assert.False(t, itinerary.HasEntity("acc-2"))
}

func TestCategoryTagsFollowItems(t *testing.T) {
	itinerary := models.ItineraryModel{Items: []models.ItineraryItem{
		{EntityID: "a", Category: []string{"Nature", "Adventure"}},
		{EntityID: "b", Category: []string{"nature", "Food"}},
	}}

	itinerary.RecomputeCategoryTags()
	assert.Equal(t, models.StringArray{"Nature", "Adventure", "Food"}, itinerary.CategoryTags)

	itinerary.Items = itinerary.Items[:1]
	itinerary.RecomputeCategoryTags()
	assert.Equal(t, models.StringArray{"Nature", "Adventure"}, itinerary.CategoryTags)
}
