package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/wandererhq/wanderer-core/internal/middleware"
	"github.com/wandererhq/wanderer-core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	grp := rg.Group("/auth")
	grp.POST("/register", h.register)
	grp.POST("/login", h.login)

	authed := grp.Group("", authMW)
	authed.POST("/logout", h.logout)
	authed.POST("/logout-all", h.logoutAll)
	authed.GET("/sessions", h.sessions)
	authed.DELETE("/sessions/:id", h.revokeSession)
}

func (h *Handler) register(c *gin.Context) {
	var dto RegisterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.svc.Register(&dto)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, user)
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	result, err := h.svc.Login(&dto, c.ClientIP(), c.GetHeader("User-Agent"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Unauthorized(c)
		case errors.Is(err, ErrAccountDeactivated):
			response.ForbiddenMsg(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, result)
}

func (h *Handler) logout(c *gin.Context) {
	err := h.svc.Logout(middleware.CurrentUserID(c), middleware.CurrentSessionID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) logoutAll(c *gin.Context) {
	if err := h.svc.LogoutAll(middleware.CurrentUserID(c)); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) sessions(c *gin.Context) {
	sessions, err := h.svc.Sessions(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"data": sessions})
}

func (h *Handler) revokeSession(c *gin.Context) {
	err := h.svc.Logout(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
