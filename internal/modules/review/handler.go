package review

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
	rg.GET("/spots/:id/reviews", h.listBySpot)

	reviews := rg.Group("/reviews", authMW)
	reviews.POST("", h.create)
	reviews.PUT("/:id", h.update)
	reviews.PATCH("/:id", h.update)
	reviews.DELETE("/:id", h.delete)
}

func (h *Handler) listBySpot(c *gin.Context) {
	reviews, page, err := h.svc.ListBySpot(c.Param("id"), pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, reviews, page)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateReviewDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	review, err := h.svc.Create(middleware.CurrentUserID(c), &dto)
	if err != nil {
		if errors.Is(err, ErrAlreadyReviewed) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if review == nil {
		response.NotFoundMsg(c, "spot not found")
		return
	}
	response.Created(c, review)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateReviewDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	review, err := h.svc.Update(middleware.CurrentUserID(c), c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if review == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, review)
}

func (h *Handler) delete(c *gin.Context) {
	deleted, err := h.svc.Delete(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !deleted {
		response.NotFound(c)
		return
	}
	response.NoContent(c)
}
