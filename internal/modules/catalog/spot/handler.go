package spot

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wandererhq/wanderer-core/internal/pkg/pagination"
	"github.com/wandererhq/wanderer-core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW ...gin.HandlerFunc) {
	spots := rg.Group("/spots")
	spots.GET("", h.list)
	spots.GET("/:id", h.get)

	admin := spots.Group("", adminMW...)
	admin.POST("", h.create)
	admin.PUT("/:id", h.update)
	admin.PATCH("/:id", h.update)
	admin.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	filter := ListFilter{
		Search:       c.Query("q"),
		Municipality: c.Query("municipality"),
		Category:     c.Query("category"),
		BudgetLevel:  c.Query("budget_level"),
	}
	if raw := c.Query("hidden_gem"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err == nil {
			filter.HiddenGem = &v
		}
	}

	spots, page, err := h.svc.List(pagination.FromContext(c), filter)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, spots, page)
}

func (h *Handler) get(c *gin.Context) {
	spot, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if spot == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, spot)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateSpotDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	spot, err := h.svc.Create(&dto)
	if err != nil {
		if err.Error() == "spot already exists in this municipality" {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, spot)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateSpotDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	spot, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if spot == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, spot)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
