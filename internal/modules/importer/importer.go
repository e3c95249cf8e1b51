package importer

import (
	"fmt"
	"time"

	"github.com/wandererhq/wanderer-core/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BatchSize is the number of rows inserted per batch.
const BatchSize = 50

// Target selects which catalog collection an import feeds.
type Target string

const (
	TargetSpots          Target = "spots"
	TargetAccommodations Target = "accommodations"
	TargetRestaurants    Target = "restaurants"
	TargetEvents         Target = "events"
)

// Report aggregates the outcome of one bulk import. Imports are
// at-least-effort: a failed batch is counted and skipped, never aborts
// the remaining batches.
type Report struct {
	SuccessCount int      `json:"success_count"`
	ErrorCount   int      `json:"error_count"`
	Errors       []string `json:"errors,omitempty"`
}

type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewService(db *gorm.DB, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

// Import maps parsed records onto the target collection's model and
// inserts them in batches.
func (s *Service) Import(target Target, records []Record) (Report, error) {
	switch target {
	case TargetSpots:
		return importBatches(mapRecords(records, toSpot), BatchSize, s.insertFn()), nil
	case TargetAccommodations:
		return importBatches(mapRecords(records, toAccommodation), BatchSize, s.insertFn()), nil
	case TargetRestaurants:
		return importBatches(mapRecords(records, toRestaurant), BatchSize, s.insertFn()), nil
	case TargetEvents:
		return importBatches(mapRecords(records, toEvent), BatchSize, s.insertFn()), nil
	default:
		return Report{}, fmt.Errorf("unknown import target %q", target)
	}
}

func (s *Service) insertFn() func(batch interface{}) error {
	return func(batch interface{}) error {
		return s.db.Create(batch).Error
	}
}

func mapRecords[T any](records []Record, convert func(Record) T) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		out = append(out, convert(rec))
	}
	return out
}

// importBatches inserts rows in fixed-size batches, tolerating per-batch
// failures and reporting aggregate counts.
func importBatches[T any](rows []T, batchSize int, insert func(batch interface{}) error) Report {
	if batchSize <= 0 {
		batchSize = BatchSize
	}
	report := Report{}
	for start := 0; start < len(rows); start += batchSize {
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		batch := rows[start:end]
		if err := insert(&batch); err != nil {
			report.ErrorCount += len(batch)
			report.Errors = append(report.Errors, fmt.Sprintf("rows %d-%d: %v", start+1, end, err))
			continue
		}
		report.SuccessCount += len(batch)
	}
	return report
}

func toSpot(rec Record) models.SpotModel {
	spot := models.SpotModel{
		Name:                  stringField(rec, "name"),
		Description:           stringField(rec, "description"),
		Location:              stringField(rec, "location"),
		Municipality:          stringField(rec, "municipality"),
		Category:              stringsField(rec, "category"),
		SceneryTypes:          stringsField(rec, "scenery_types", "scenery"),
		BudgetLevel:           models.BudgetLevel(stringField(rec, "budget_level", "budget")),
		AccessibilityFriendly: boolField(rec, "accessibility_friendly"),
		IsHiddenGem:           boolField(rec, "is_hidden_gem"),
		ImageURL:              stringField(rec, "image_url", "image"),
		EntranceFee:           stringField(rec, "entrance_fee"),
		OpeningHours:          stringField(rec, "opening_hours"),
	}
	if v, ok := floatField(rec, "rating"); ok {
		spot.Rating = v
	}
	if v, ok := floatField(rec, "latitude", "lat"); ok {
		spot.Latitude = &v
	}
	if v, ok := floatField(rec, "longitude", "lng", "lon"); ok {
		spot.Longitude = &v
	}
	return spot
}

func toAccommodation(rec Record) models.AccommodationModel {
	stay := models.AccommodationModel{
		Name:         stringField(rec, "name"),
		Description:  stringField(rec, "description"),
		Location:     stringField(rec, "location"),
		Municipality: stringField(rec, "municipality"),
		Category:     stringsField(rec, "category"),
		PriceRange:   stringField(rec, "price_range"),
		Amenities:    stringsField(rec, "amenities"),
		ImageURL:     stringField(rec, "image_url", "image"),
		ContactInfo:  stringField(rec, "contact_info"),
	}
	if v, ok := floatField(rec, "rating"); ok {
		stay.Rating = v
	}
	if v, ok := floatField(rec, "latitude", "lat"); ok {
		stay.Latitude = &v
	}
	if v, ok := floatField(rec, "longitude", "lng", "lon"); ok {
		stay.Longitude = &v
	}
	return stay
}

func toRestaurant(rec Record) models.RestaurantModel {
	row := models.RestaurantModel{
		Name:         stringField(rec, "name"),
		Description:  stringField(rec, "description"),
		Location:     stringField(rec, "location"),
		Municipality: stringField(rec, "municipality"),
		Cuisine:      stringsField(rec, "cuisine", "category"),
		PriceRange:   stringField(rec, "price_range"),
		ImageURL:     stringField(rec, "image_url", "image"),
		ContactInfo:  stringField(rec, "contact_info"),
	}
	if v, ok := floatField(rec, "rating"); ok {
		row.Rating = v
	}
	if v, ok := floatField(rec, "latitude", "lat"); ok {
		row.Latitude = &v
	}
	if v, ok := floatField(rec, "longitude", "lng", "lon"); ok {
		row.Longitude = &v
	}
	return row
}

func toEvent(rec Record) models.EventModel {
	row := models.EventModel{
		Name:         stringField(rec, "name"),
		Description:  stringField(rec, "description"),
		Location:     stringField(rec, "location"),
		Municipality: stringField(rec, "municipality"),
		Category:     stringsField(rec, "category"),
		ImageURL:     stringField(rec, "image_url", "image"),
	}
	if raw := stringField(rec, "date"); raw != "" {
		if d, err := time.Parse("2006-01-02", raw); err == nil {
			row.Date = &d
		}
	}
	return row
}
