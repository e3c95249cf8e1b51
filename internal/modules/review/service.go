package review

import (
	"errors"

	"github.com/wandererhq/wanderer-core/internal/models"
	"github.com/wandererhq/wanderer-core/internal/pkg/pagination"
	"github.com/wandererhq/wanderer-core/internal/pkg/response"
	"gorm.io/gorm"
)

// ErrAlreadyReviewed is returned when the user has already reviewed the
// spot. Reviews are one per (user, spot); edits go through Update.
var ErrAlreadyReviewed = errors.New("spot already reviewed by this user")

type CreateReviewDTO struct {
	SpotID  string `json:"spot_id" binding:"required"`
	Rating  int    `json:"rating"  binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type UpdateReviewDTO struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) ListBySpot(spotID string, q pagination.Query) ([]models.ReviewModel, response.Pagination, error) {
	query := s.db.Model(&models.ReviewModel{}).
		Where("spot_id = ?", spotID).
		Preload("User").
		Order("created_at DESC")

	var reviews []models.ReviewModel
	page, err := pagination.Paginate(query, q, &reviews)
	return reviews, page, err
}

func (s *Service) GetByID(id string) (*models.ReviewModel, error) {
	var review models.ReviewModel
	if err := s.db.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (s *Service) Create(userID string, dto *CreateReviewDTO) (*models.ReviewModel, error) {
	var spot models.SpotModel
	if err := s.db.First(&spot, "id = ?", dto.SpotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var count int64
	s.db.Model(&models.ReviewModel{}).
		Where("spot_id = ? AND user_id = ?", dto.SpotID, userID).
		Count(&count)
	if count > 0 {
		return nil, ErrAlreadyReviewed
	}

	review := models.ReviewModel{
		SpotID:  dto.SpotID,
		UserID:  userID,
		Rating:  dto.Rating,
		Comment: dto.Comment,
	}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, err
	}
	if err := s.RecomputeSpotRating(dto.SpotID); err != nil {
		return &review, err
	}
	return &review, nil
}

// Update edits the caller's own review. Other users' reviews are
// invisible to it.
func (s *Service) Update(userID, id string, dto *UpdateReviewDTO) (*models.ReviewModel, error) {
	var review models.ReviewModel
	err := s.db.First(&review, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Rating != nil {
		updates["rating"] = *dto.Rating
	}
	if dto.Comment != nil {
		updates["comment"] = *dto.Comment
	}
	if len(updates) == 0 {
		return &review, nil
	}
	if err := s.db.Model(&review).Updates(updates).Error; err != nil {
		return &review, err
	}
	if dto.Rating != nil {
		if err := s.RecomputeSpotRating(review.SpotID); err != nil {
			return &review, err
		}
	}
	return &review, nil
}

// Delete removes the caller's own review. Admins may remove any review.
func (s *Service) Delete(userID, id string) (bool, error) {
	var review models.ReviewModel
	err := s.db.First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if review.UserID != userID {
		var admin int64
		s.db.Model(&models.RoleModel{}).
			Where("user_id = ? AND role = ?", userID, models.RoleAdmin).
			Count(&admin)
		if admin == 0 {
			return false, nil
		}
	}
	if err := s.db.Delete(&review).Error; err != nil {
		return false, err
	}
	return true, s.RecomputeSpotRating(review.SpotID)
}

// RecomputeSpotRating refreshes the spot's cached average and count from
// its reviews. Called synchronously on every write and swept by the
// aggregation cron job in case a write raced.
func (s *Service) RecomputeSpotRating(spotID string) error {
	var agg struct {
		Avg   float64
		Count int64
	}
	err := s.db.Model(&models.ReviewModel{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("spot_id = ?", spotID).
		Scan(&agg).Error
	if err != nil {
		return err
	}
	return s.db.Model(&models.SpotModel{}).
		Where("id = ?", spotID).
		Updates(map[string]interface{}{
			"rating":       agg.Avg,
			"review_count": agg.Count,
		}).Error
}

// RecomputeAllRatings refreshes every reviewed spot. Used by the
// scheduled aggregation job.
func (s *Service) RecomputeAllRatings() error {
	var spotIDs []string
	err := s.db.Model(&models.ReviewModel{}).
		Distinct("spot_id").
		Pluck("spot_id", &spotIDs).Error
	if err != nil {
		return err
	}
	for _, id := range spotIDs {
		if err := s.RecomputeSpotRating(id); err != nil {
			return err
		}
	}
	return nil
}
