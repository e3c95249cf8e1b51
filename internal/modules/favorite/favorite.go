package favorite

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/wandererhq/wanderer-core/internal/middleware"
	"github.com/wandererhq/wanderer-core/internal/models"
	"github.com/wandererhq/wanderer-core/internal/pkg/pagination"
	"github.com/wandererhq/wanderer-core/internal/pkg/response"
	"gorm.io/gorm"
)

// ErrAlreadyFavorited is returned when the entity is already in the
// user's favorites.
var ErrAlreadyFavorited = errors.New("entity already favorited")

type AddFavoriteDTO struct {
	EntityID string `json:"entity_id" binding:"required"`
	Kind     string `json:"kind"      binding:"required,oneof=spot accommodation"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) List(userID string, q pagination.Query) ([]models.FavoriteModel, response.Pagination, error) {
	query := s.db.Model(&models.FavoriteModel{}).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	var favorites []models.FavoriteModel
	page, err := pagination.Paginate(query, q, &favorites)
	return favorites, page, err
}

func (s *Service) Add(userID string, dto *AddFavoriteDTO) (*models.FavoriteModel, error) {
	var count int64
	s.db.Model(&models.FavoriteModel{}).
		Where("user_id = ? AND entity_id = ?", userID, dto.EntityID).
		Count(&count)
	if count > 0 {
		return nil, ErrAlreadyFavorited
	}

	favorite := models.FavoriteModel{
		UserID:   userID,
		EntityID: dto.EntityID,
		Kind:     models.ItineraryItemKind(dto.Kind),
	}
	return &favorite, s.db.Create(&favorite).Error
}

func (s *Service) Remove(userID, entityID string) (bool, error) {
	res := s.db.Delete(&models.FavoriteModel{}, "user_id = ? AND entity_id = ?", userID, entityID)
	return res.RowsAffected > 0, res.Error
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	favorites := rg.Group("/favorites", authMW)
	favorites.GET("", h.list)
	favorites.POST("", h.add)
	favorites.DELETE("/:entityId", h.remove)
}

func (h *Handler) list(c *gin.Context) {
	favorites, page, err := h.svc.List(middleware.CurrentUserID(c), pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, favorites, page)
}

func (h *Handler) add(c *gin.Context) {
	var dto AddFavoriteDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	favorite, err := h.svc.Add(middleware.CurrentUserID(c), &dto)
	if err != nil {
		if errors.Is(err, ErrAlreadyFavorited) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, favorite)
}

func (h *Handler) remove(c *gin.Context) {
	removed, err := h.svc.Remove(middleware.CurrentUserID(c), c.Param("entityId"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !removed {
		response.NotFound(c)
		return
	}
	response.NoContent(c)
}
