package spot

import (
	"errors"
	"fmt"

	"github.com/wandererhq/wanderer-core/internal/models"
	"github.com/wandererhq/wanderer-core/internal/pkg/pagination"
	"github.com/wandererhq/wanderer-core/internal/pkg/response"
	"gorm.io/gorm"
)

type CreateSpotDTO struct {
	Name                  string   `json:"name" binding:"required"`
	Description           string   `json:"description"`
	Location              string   `json:"location"`
	Municipality          string   `json:"municipality"`
	Category              []string `json:"category"`
	SceneryTypes          []string `json:"scenery_types"`
	BudgetLevel           string   `json:"budget_level"`
	AccessibilityFriendly bool     `json:"accessibility_friendly"`
	IsHiddenGem           bool     `json:"is_hidden_gem"`
	Latitude              *float64 `json:"latitude"`
	Longitude             *float64 `json:"longitude"`
	ImageURL              string   `json:"image_url"`
	EntranceFee           string   `json:"entrance_fee"`
	OpeningHours          string   `json:"opening_hours"`
}

type UpdateSpotDTO struct {
	Name                  *string   `json:"name"`
	Description           *string   `json:"description"`
	Location              *string   `json:"location"`
	Municipality          *string   `json:"municipality"`
	Category              *[]string `json:"category"`
	SceneryTypes          *[]string `json:"scenery_types"`
	BudgetLevel           *string   `json:"budget_level"`
	AccessibilityFriendly *bool     `json:"accessibility_friendly"`
	IsHiddenGem           *bool     `json:"is_hidden_gem"`
	Latitude              *float64  `json:"latitude"`
	Longitude             *float64  `json:"longitude"`
	ImageURL              *string   `json:"image_url"`
	EntranceFee           *string   `json:"entrance_fee"`
	OpeningHours          *string   `json:"opening_hours"`
}

// ListFilter narrows the public catalog listing.
type ListFilter struct {
	Search       string
	Municipality string
	Category     string
	BudgetLevel  string
	HiddenGem    *bool
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) List(q pagination.Query, filter ListFilter) ([]models.SpotModel, response.Pagination, error) {
	query := s.db.Model(&models.SpotModel{})
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR municipality LIKE ? OR location LIKE ?", like, like, like)
	}
	if filter.Municipality != "" {
		query = query.Where("municipality LIKE ?", "%"+filter.Municipality+"%")
	}
	if filter.Category != "" {
		query = query.Where("category LIKE ?", "%"+filter.Category+"%")
	}
	if filter.BudgetLevel != "" {
		query = query.Where("budget_level = ?", filter.BudgetLevel)
	}
	if filter.HiddenGem != nil {
		query = query.Where("is_hidden_gem = ?", *filter.HiddenGem)
	}
	query = query.Order("rating DESC, created_at ASC")

	var spots []models.SpotModel
	page, err := pagination.Paginate(query, q, &spots)
	return spots, page, err
}

func (s *Service) GetByID(id string) (*models.SpotModel, error) {
	var spot models.SpotModel
	if err := s.db.First(&spot, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &spot, nil
}

func (s *Service) Create(dto *CreateSpotDTO) (*models.SpotModel, error) {
	var count int64
	s.db.Model(&models.SpotModel{}).Where("name = ? AND municipality = ?", dto.Name, dto.Municipality).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("spot already exists in this municipality")
	}

	spot := models.SpotModel{
		Name:                  dto.Name,
		Description:           dto.Description,
		Location:              dto.Location,
		Municipality:          dto.Municipality,
		Category:              dto.Category,
		SceneryTypes:          dto.SceneryTypes,
		BudgetLevel:           models.BudgetLevel(dto.BudgetLevel),
		AccessibilityFriendly: dto.AccessibilityFriendly,
		IsHiddenGem:           dto.IsHiddenGem,
		Latitude:              dto.Latitude,
		Longitude:             dto.Longitude,
		ImageURL:              dto.ImageURL,
		EntranceFee:           dto.EntranceFee,
		OpeningHours:          dto.OpeningHours,
	}
	return &spot, s.db.Create(&spot).Error
}

func (s *Service) Update(id string, dto *UpdateSpotDTO) (*models.SpotModel, error) {
	spot, err := s.GetByID(id)
	if err != nil || spot == nil {
		return spot, err
	}
	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.Location != nil {
		updates["location"] = *dto.Location
	}
	if dto.Municipality != nil {
		updates["municipality"] = *dto.Municipality
	}
	if dto.Category != nil {
		updates["category"] = models.StringArray(*dto.Category)
	}
	if dto.SceneryTypes != nil {
		updates["scenery_types"] = models.StringArray(*dto.SceneryTypes)
	}
	if dto.BudgetLevel != nil {
		updates["budget_level"] = *dto.BudgetLevel
	}
	if dto.AccessibilityFriendly != nil {
		updates["accessibility_friendly"] = *dto.AccessibilityFriendly
	}
	if dto.IsHiddenGem != nil {
		updates["is_hidden_gem"] = *dto.IsHiddenGem
	}
	if dto.Latitude != nil {
		updates["latitude"] = *dto.Latitude
	}
	if dto.Longitude != nil {
		updates["longitude"] = *dto.Longitude
	}
	if dto.ImageURL != nil {
		updates["image_url"] = *dto.ImageURL
	}
	if dto.EntranceFee != nil {
		updates["entrance_fee"] = *dto.EntranceFee
	}
	if dto.OpeningHours != nil {
		updates["opening_hours"] = *dto.OpeningHours
	}
	return spot, s.db.Model(spot).Updates(updates).Error
}

func (s *Service) Delete(id string) error {
	return s.db.Delete(&models.SpotModel{}, "id = ?", id).Error
}
