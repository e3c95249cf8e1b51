package accommodation

import (
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
	stays := rg.Group("/accommodations")
	stays.GET("", h.list)
	stays.GET("/:id", h.get)

	admin := stays.Group("", adminMW...)
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
	}
	stays, page, err := h.svc.List(pagination.FromContext(c), filter)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, stays, page)
}

func (h *Handler) get(c *gin.Context) {
	stay, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if stay == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, stay)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateAccommodationDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	stay, err := h.svc.Create(&dto)
	if err != nil {
		if err.Error() == "accommodation already exists in this municipality" {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, stay)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateAccommodationDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	stay, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if stay == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, stay)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
