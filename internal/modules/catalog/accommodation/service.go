package accommodation

import (
	"errors"
	"fmt"

	"github.com/wandererhq/wanderer-core/internal/models"
	"github.com/wandererhq/wanderer-core/internal/pkg/pagination"
	"github.com/wandererhq/wanderer-core/internal/pkg/response"
	"gorm.io/gorm"
)

type CreateAccommodationDTO struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	Municipality string   `json:"municipality"`
	Category     []string `json:"category"`
	PriceRange   string   `json:"price_range"`
	Amenities    []string `json:"amenities"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	ImageURL     string   `json:"image_url"`
	ContactInfo  string   `json:"contact_info"`
}

type UpdateAccommodationDTO struct {
	Name         *string   `json:"name"`
	Description  *string   `json:"description"`
	Location     *string   `json:"location"`
	Municipality *string   `json:"municipality"`
	Category     *[]string `json:"category"`
	PriceRange   *string   `json:"price_range"`
	Amenities    *[]string `json:"amenities"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	ImageURL     *string   `json:"image_url"`
	ContactInfo  *string   `json:"contact_info"`
}

type ListFilter struct {
	Search       string
	Municipality string
	Category     string
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) List(q pagination.Query, filter ListFilter) ([]models.AccommodationModel, response.Pagination, error) {
	query := s.db.Model(&models.AccommodationModel{})
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
	query = query.Order("rating DESC, created_at ASC")

	var stays []models.AccommodationModel
	page, err := pagination.Paginate(query, q, &stays)
	return stays, page, err
}

func (s *Service) GetByID(id string) (*models.AccommodationModel, error) {
	var stay models.AccommodationModel
	if err := s.db.First(&stay, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stay, nil
}

func (s *Service) Create(dto *CreateAccommodationDTO) (*models.AccommodationModel, error) {
	var count int64
	s.db.Model(&models.AccommodationModel{}).Where("name = ? AND municipality = ?", dto.Name, dto.Municipality).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("accommodation already exists in this municipality")
	}

	stay := models.AccommodationModel{
		Name:         dto.Name,
		Description:  dto.Description,
		Location:     dto.Location,
		Municipality: dto.Municipality,
		Category:     dto.Category,
		PriceRange:   dto.PriceRange,
		Amenities:    dto.Amenities,
		Latitude:     dto.Latitude,
		Longitude:    dto.Longitude,
		ImageURL:     dto.ImageURL,
		ContactInfo:  dto.ContactInfo,
	}
	return &stay, s.db.Create(&stay).Error
}

func (s *Service) Update(id string, dto *UpdateAccommodationDTO) (*models.AccommodationModel, error) {
	stay, err := s.GetByID(id)
	if err != nil || stay == nil {
		return stay, err
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
	if dto.PriceRange != nil {
		updates["price_range"] = *dto.PriceRange
	}
	if dto.Amenities != nil {
		updates["amenities"] = models.StringArray(*dto.Amenities)
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
	if dto.ContactInfo != nil {
		updates["contact_info"] = *dto.ContactInfo
	}
	return stay, s.db.Model(stay).Updates(updates).Error
}

func (s *Service) Delete(id string) error {
	return s.db.Delete(&models.AccommodationModel{}, "id = ?", id).Error
}
