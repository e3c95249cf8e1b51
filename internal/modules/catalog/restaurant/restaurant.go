package restaurant

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/wandererhq/wanderer-core/internal/models"
	"github.com/wandererhq/wanderer-core/internal/pkg/pagination"
	"github.com/wandererhq/wanderer-core/internal/pkg/response"
	"gorm.io/gorm"
)

type CreateRestaurantDTO struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	Municipality string   `json:"municipality"`
	Cuisine      []string `json:"cuisine"`
	PriceRange   string   `json:"price_range"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	ImageURL     string   `json:"image_url"`
	ContactInfo  string   `json:"contact_info"`
}

type UpdateRestaurantDTO struct {
	Name         *string   `json:"name"`
	Description  *string   `json:"description"`
	Location     *string   `json:"location"`
	Municipality *string   `json:"municipality"`
	Cuisine      *[]string `json:"cuisine"`
	PriceRange   *string   `json:"price_range"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	ImageURL     *string   `json:"image_url"`
	ContactInfo  *string   `json:"contact_info"`
}

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW ...gin.HandlerFunc) {
	r := rg.Group("/restaurants")
	r.GET("", h.list)
	r.GET("/:id", h.get)

	admin := r.Group("", adminMW...)
	admin.POST("", h.create)
	admin.PUT("/:id", h.update)
	admin.PATCH("/:id", h.update)
	admin.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	query := h.db.Model(&models.RestaurantModel{})
	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where("name LIKE ? OR municipality LIKE ?", like, like)
	}
	if m := c.Query("municipality"); m != "" {
		query = query.Where("municipality LIKE ?", "%"+m+"%")
	}
	query = query.Order("rating DESC, created_at ASC")

	var rows []models.RestaurantModel
	page, err := pagination.Paginate(query, pagination.FromContext(c), &rows)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, rows, page)
}

func (h *Handler) get(c *gin.Context) {
	var row models.RestaurantModel
	if err := h.db.First(&row, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, row)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateRestaurantDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	row := models.RestaurantModel{
		Name:         dto.Name,
		Description:  dto.Description,
		Location:     dto.Location,
		Municipality: dto.Municipality,
		Cuisine:      dto.Cuisine,
		PriceRange:   dto.PriceRange,
		Latitude:     dto.Latitude,
		Longitude:    dto.Longitude,
		ImageURL:     dto.ImageURL,
		ContactInfo:  dto.ContactInfo,
	}
	if err := h.db.Create(&row).Error; err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, row)
}

func (h *Handler) update(c *gin.Context) {
	var row models.RestaurantModel
	if err := h.db.First(&row, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}

	var dto UpdateRestaurantDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
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
	if dto.Cuisine != nil {
		updates["cuisine"] = models.StringArray(*dto.Cuisine)
	}
	if dto.PriceRange != nil {
		updates["price_range"] = *dto.PriceRange
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
	if err := h.db.Model(&row).Updates(updates).Error; err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, row)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.db.Delete(&models.RestaurantModel{}, "id = ?", c.Param("id")).Error; err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
