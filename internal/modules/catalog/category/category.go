package category

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/wandererhq/wanderer-core/internal/models"
	"github.com/wandererhq/wanderer-core/internal/pkg/response"
	"gorm.io/gorm"
)

type CreateCategoryDTO struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
	Icon string `json:"icon"`
}

type UpdateCategoryDTO struct {
	Name *string `json:"name"`
	Slug *string `json:"slug"`
	Icon *string `json:"icon"`
}

type CreateSubcategoryDTO struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) List() ([]models.CategoryModel, error) {
	var cats []models.CategoryModel
	return cats, s.db.Preload("Subcategories").Order("created_at ASC").Find(&cats).Error
}

func (s *Service) GetByQuery(query string) (*models.CategoryModel, error) {
	var cat models.CategoryModel
	err := s.db.Preload("Subcategories").
		Where("id = ? OR slug = ? OR name = ?", query, query, query).
		First(&cat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cat, nil
}

func (s *Service) Create(dto *CreateCategoryDTO) (*models.CategoryModel, error) {
	var count int64
	s.db.Model(&models.CategoryModel{}).Where("slug = ? OR name = ?", dto.Slug, dto.Name).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("name or slug already exists")
	}

	cat := models.CategoryModel{Name: dto.Name, Slug: dto.Slug, Icon: dto.Icon}
	return &cat, s.db.Create(&cat).Error
}

func (s *Service) Update(id string, dto *UpdateCategoryDTO) (*models.CategoryModel, error) {
	var cat models.CategoryModel
	if err := s.db.First(&cat, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.Slug != nil {
		updates["slug"] = *dto.Slug
	}
	if dto.Icon != nil {
		updates["icon"] = *dto.Icon
	}
	return &cat, s.db.Model(&cat).Updates(updates).Error
}

func (s *Service) Delete(id string) error {
	if err := s.db.Delete(&models.SubcategoryModel{}, "category_id = ?", id).Error; err != nil {
		return err
	}
	return s.db.Delete(&models.CategoryModel{}, "id = ?", id).Error
}

func (s *Service) AddSubcategory(categoryID string, dto *CreateSubcategoryDTO) (*models.SubcategoryModel, error) {
	var count int64
	s.db.Model(&models.CategoryModel{}).Where("id = ?", categoryID).Count(&count)
	if count == 0 {
		return nil, nil
	}
	sub := models.SubcategoryModel{CategoryID: categoryID, Name: dto.Name, Slug: dto.Slug}
	return &sub, s.db.Create(&sub).Error
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW ...gin.HandlerFunc) {
	cats := rg.Group("/categories")
	cats.GET("", h.list)
	cats.GET("/:query", h.getByQuery)

	admin := cats.Group("", adminMW...)
	admin.POST("", h.create)
	admin.PUT("/:query", h.update)
	admin.PATCH("/:query", h.update)
	admin.DELETE("/:query", h.delete)
	admin.POST("/:query/subcategories", h.addSubcategory)
}

func (h *Handler) list(c *gin.Context) {
	cats, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, cats)
}

func (h *Handler) getByQuery(c *gin.Context) {
	cat, err := h.svc.GetByQuery(c.Param("query"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if cat == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, cat)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateCategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cat, err := h.svc.Create(&dto)
	if err != nil {
		if err.Error() == "name or slug already exists" {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, cat)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateCategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cat, err := h.svc.Update(c.Param("query"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if cat == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, cat)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("query")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) addSubcategory(c *gin.Context) {
	var dto CreateSubcategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	sub, err := h.svc.AddSubcategory(c.Param("query"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if sub == nil {
		response.NotFound(c)
		return
	}
	response.Created(c, sub)
}
