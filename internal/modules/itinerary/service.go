package itinerary

import (
	"errors"

	"github.com/wandererhq/wanderer-core/internal/models"
	"github.com/wandererhq/wanderer-core/internal/pkg/pagination"
	"github.com/wandererhq/wanderer-core/internal/pkg/response"
	"gorm.io/gorm"
)

// ErrDuplicateEntity is returned when an itinerary already holds a
// snapshot of the entity being added. The itinerary is left untouched.
var ErrDuplicateEntity = errors.New("entity already in itinerary")

type CreateItineraryDTO struct {
	Name string `json:"name" binding:"required"`
}

type UpdateItineraryDTO struct {
	Name *string `json:"name"`
}

type AddItemDTO struct {
	EntityID string `json:"entity_id" binding:"required"`
	Kind     string `json:"kind"      binding:"required,oneof=spot accommodation"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) List(userID string, q pagination.Query) ([]models.ItineraryModel, response.Pagination, error) {
	query := s.db.Model(&models.ItineraryModel{}).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	var itineraries []models.ItineraryModel
	page, err := pagination.Paginate(query, q, &itineraries)
	return itineraries, page, err
}

// GetByID returns the itinerary only when it belongs to userID. A
// mismatched owner looks the same as a missing row to the caller.
func (s *Service) GetByID(userID, id string) (*models.ItineraryModel, error) {
	var itinerary models.ItineraryModel
	err := s.db.First(&itinerary, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

func (s *Service) Create(userID string, dto *CreateItineraryDTO) (*models.ItineraryModel, error) {
	itinerary := models.ItineraryModel{
		UserID:       userID,
		Name:         dto.Name,
		Items:        []models.ItineraryItem{},
		CategoryTags: models.StringArray{},
	}
	return &itinerary, s.db.Create(&itinerary).Error
}

func (s *Service) Update(userID, id string, dto *UpdateItineraryDTO) (*models.ItineraryModel, error) {
	itinerary, err := s.GetByID(userID, id)
	if err != nil || itinerary == nil {
		return itinerary, err
	}
	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if len(updates) == 0 {
		return itinerary, nil
	}
	return itinerary, s.db.Model(itinerary).Updates(updates).Error
}

func (s *Service) Delete(userID, id string) error {
	return s.db.Delete(&models.ItineraryModel{}, "id = ? AND user_id = ?", id, userID).Error
}

// AddItem copies the live catalog entity into the itinerary as an
// immutable snapshot. Later catalog edits do not reach saved items.
func (s *Service) AddItem(userID, id string, dto *AddItemDTO) (*models.ItineraryModel, error) {
	itinerary, err := s.GetByID(userID, id)
	if err != nil || itinerary == nil {
		return itinerary, err
	}
	if itinerary.HasEntity(dto.EntityID) {
		return itinerary, ErrDuplicateEntity
	}

	item, err := s.snapshot(dto)
	if err != nil {
		return itinerary, err
	}
	if item == nil {
		return nil, nil
	}

	itinerary.Items = append(itinerary.Items, *item)
	itinerary.RecomputeCategoryTags()
	return itinerary, s.saveItems(itinerary)
}

func (s *Service) RemoveItem(userID, id, entityID string) (*models.ItineraryModel, error) {
	itinerary, err := s.GetByID(userID, id)
	if err != nil || itinerary == nil {
		return itinerary, err
	}
	if !itinerary.HasEntity(entityID) {
		return nil, nil
	}

	items := itinerary.Items[:0]
	for _, item := range itinerary.Items {
		if item.EntityID != entityID {
			items = append(items, item)
		}
	}
	itinerary.Items = items
	itinerary.RecomputeCategoryTags()
	return itinerary, s.saveItems(itinerary)
}

func (s *Service) saveItems(itinerary *models.ItineraryModel) error {
	return s.db.Model(itinerary).Updates(map[string]interface{}{
		"items":         itinerary.Items,
		"category_tags": itinerary.CategoryTags,
	}).Error
}

func (s *Service) snapshot(dto *AddItemDTO) (*models.ItineraryItem, error) {
	switch models.ItineraryItemKind(dto.Kind) {
	case models.ItemKindSpot:
		var spot models.SpotModel
		if err := s.db.First(&spot, "id = ?", dto.EntityID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return SnapshotSpot(&spot), nil
	case models.ItemKindAccommodation:
		var acc models.AccommodationModel
		if err := s.db.First(&acc, "id = ?", dto.EntityID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return SnapshotAccommodation(&acc), nil
	default:
		return nil, errors.New("unknown item kind")
	}
}

// SnapshotSpot copies the fields an itinerary keeps from a tourist spot.
func SnapshotSpot(spot *models.SpotModel) *models.ItineraryItem {
	return &models.ItineraryItem{
		EntityID:     spot.ID,
		Kind:         models.ItemKindSpot,
		Name:         spot.Name,
		Location:     spot.Location,
		Municipality: spot.Municipality,
		Category:     append([]string(nil), spot.Category...),
		ImageURL:     spot.ImageURL,
		Rating:       spot.Rating,
	}
}

// SnapshotAccommodation copies the fields an itinerary keeps from an
// accommodation.
func SnapshotAccommodation(acc *models.AccommodationModel) *models.ItineraryItem {
	return &models.ItineraryItem{
		EntityID:     acc.ID,
		Kind:         models.ItemKindAccommodation,
		Name:         acc.Name,
		Location:     acc.Location,
		Municipality: acc.Municipality,
		Category:     append([]string(nil), acc.Category...),
		ImageURL:     acc.ImageURL,
		Rating:       acc.Rating,
	}
}
