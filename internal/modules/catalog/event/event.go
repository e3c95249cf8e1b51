package event

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wandererhq/wanderer-core/internal/models"
	"github.com/wandererhq/wanderer-core/internal/pkg/pagination"
	"github.com/wandererhq/wanderer-core/internal/pkg/response"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type CreateEventDTO struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	Municipality string   `json:"municipality"`
	Category     []string `json:"category"`
	Date         string   `json:"date"` // YYYY-MM-DD
	ImageURL     string   `json:"image_url"`
}

type UpdateEventDTO struct {
	Name         *string   `json:"name"`
	Description  *string   `json:"description"`
	Location     *string   `json:"location"`
	Municipality *string   `json:"municipality"`
	Category     *[]string `json:"category"`
	Date         *string   `json:"date"`
	ImageURL     *string   `json:"image_url"`
}

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW ...gin.HandlerFunc) {
	events := rg.Group("/events")
	events.GET("", h.list)
	events.GET("/upcoming", h.upcoming)
	events.GET("/:id", h.get)

	admin := events.Group("", adminMW...)
	admin.POST("", h.create)
	admin.PUT("/:id", h.update)
	admin.PATCH("/:id", h.update)
	admin.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	query := h.db.Model(&models.EventModel{}).Order("date ASC")
	if m := c.Query("municipality"); m != "" {
		query = query.Where("municipality LIKE ?", "%"+m+"%")
	}

	var rows []models.EventModel
	page, err := pagination.Paginate(query, pagination.FromContext(c), &rows)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, rows, page)
}

func (h *Handler) upcoming(c *gin.Context) {
	var rows []models.EventModel
	err := h.db.Where("date >= ?", time.Now().Format(dateLayout)).
		Order("date ASC").Limit(10).Find(&rows).Error
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, rows)
}

func (h *Handler) get(c *gin.Context) {
	var row models.EventModel
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
	var dto CreateEventDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	row := models.EventModel{
		Name:         dto.Name,
		Description:  dto.Description,
		Location:     dto.Location,
		Municipality: dto.Municipality,
		Category:     dto.Category,
		ImageURL:     dto.ImageURL,
	}
	if dto.Date != "" {
		d, err := time.Parse(dateLayout, dto.Date)
		if err != nil {
			response.BadRequest(c, "date must be YYYY-MM-DD")
			return
		}
		row.Date = &d
	}
	if err := h.db.Create(&row).Error; err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, row)
}

func (h *Handler) update(c *gin.Context) {
	var row models.EventModel
	if err := h.db.First(&row, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}

	var dto UpdateEventDTO
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
	if dto.Category != nil {
		updates["category"] = models.StringArray(*dto.Category)
	}
	if dto.Date != nil {
		d, err := time.Parse(dateLayout, *dto.Date)
		if err != nil {
			response.BadRequest(c, "date must be YYYY-MM-DD")
			return
		}
		updates["date"] = d
	}
	if dto.ImageURL != nil {
		updates["image_url"] = *dto.ImageURL
	}
	if err := h.db.Model(&row).Updates(updates).Error; err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, row)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.db.Delete(&models.EventModel{}, "id = ?", c.Param("id")).Error; err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
