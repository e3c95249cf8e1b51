package itinerary

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/wandererhq/wanderer-core/internal/middleware"
	"github.com/wandererhq/wanderer-core/internal/pkg/pagination"
	"github.com/wandererhq/wanderer-core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	itineraries := rg.Group("/itineraries", authMW)
	itineraries.GET("", h.list)
	itineraries.POST("", h.create)
	itineraries.GET("/:id", h.get)
	itineraries.PUT("/:id", h.update)
	itineraries.PATCH("/:id", h.update)
	itineraries.DELETE("/:id", h.delete)
	itineraries.POST("/:id/items", h.addItem)
	itineraries.DELETE("/:id/items/:entityId", h.removeItem)
}

func (h *Handler) list(c *gin.Context) {
	itineraries, page, err := h.svc.List(middleware.CurrentUserID(c), pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, itineraries, page)
}

func (h *Handler) get(c *gin.Context) {
	itinerary, err := h.svc.GetByID(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if itinerary == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, itinerary)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateItineraryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	itinerary, err := h.svc.Create(middleware.CurrentUserID(c), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, itinerary)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateItineraryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	itinerary, err := h.svc.Update(middleware.CurrentUserID(c), c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if itinerary == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, itinerary)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(middleware.CurrentUserID(c), c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) addItem(c *gin.Context) {
	var dto AddItemDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	itinerary, err := h.svc.AddItem(middleware.CurrentUserID(c), c.Param("id"), &dto)
	if err != nil {
		if errors.Is(err, ErrDuplicateEntity) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if itinerary == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, itinerary)
}

func (h *Handler) removeItem(c *gin.Context) {
	itinerary, err := h.svc.RemoveItem(middleware.CurrentUserID(c), c.Param("id"), c.Param("entityId"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if itinerary == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, itinerary)
}
