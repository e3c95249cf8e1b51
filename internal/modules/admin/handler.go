package admin

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/wandererhq/wanderer-core/internal/middleware"
	"github.com/wandererhq/wanderer-core/internal/pkg/cron"
	"github.com/wandererhq/wanderer-core/internal/pkg/pagination"
	redispkg "github.com/wandererhq/wanderer-core/internal/pkg/redis"
	"github.com/wandererhq/wanderer-core/internal/pkg/response"
)

type Handler struct {
	svc   *Service
	sched *cron.Scheduler
	rdb   *redispkg.Client
}

func NewHandler(svc *Service, sched *cron.Scheduler, rdb *redispkg.Client) *Handler {
	return &Handler{svc: svc, sched: sched, rdb: rdb}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW ...gin.HandlerFunc) {
	grp := rg.Group("/admin", adminMW...)

	users := grp.Group("/users")
	users.GET("", h.listUsers)
	users.POST("", h.createUser)
	users.GET("/:id", h.getUser)
	users.POST("/:id/roles", h.grantRole)
	users.DELETE("/:id/roles/:role", h.revokeRole)

	grp.GET("/jobs", h.listJobs)
	grp.POST("/jobs/:name/run", h.runJob)
	grp.POST("/cache/purge", h.purgeCache)
}

func (h *Handler) listUsers(c *gin.Context) {
	users, page, err := h.svc.ListUsers(pagination.FromContext(c), c.Query("q"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, users, page)
}

func (h *Handler) getUser(c *gin.Context) {
	user, err := h.svc.GetUser(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if user == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, user)
}

func (h *Handler) createUser(c *gin.Context) {
	var dto CreateUserDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.svc.CreateUser(&dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			response.Conflict(c, err.Error())
		case errors.Is(err, ErrUnknownRole):
			response.UnprocessableEntity(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Created(c, user)
}

func (h *Handler) grantRole(c *gin.Context) {
	var dto GrantRoleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.svc.GrantRole(c.Param("id"), dto.Role)
	if err != nil {
		switch {
		case errors.Is(err, ErrRoleExists):
			response.Conflict(c, err.Error())
		case errors.Is(err, ErrUnknownRole):
			response.UnprocessableEntity(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	if user == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, user)
}

func (h *Handler) revokeRole(c *gin.Context) {
	user, err := h.svc.RevokeRole(c.Param("id"), c.Param("role"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if user == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, user)
}

func (h *Handler) listJobs(c *gin.Context) {
	if h.sched == nil {
		response.OK(c, gin.H{"data": []cron.ListItem{}})
		return
	}
	response.OK(c, gin.H{"data": h.sched.List()})
}

func (h *Handler) runJob(c *gin.Context) {
	if h.sched == nil {
		response.NotFound(c)
		return
	}
	if err := h.sched.RunNow(c.Request.Context(), c.Param("name")); err != nil {
		response.NotFoundMsg(c, err.Error())
		return
	}
	response.NoContent(c)
}

func (h *Handler) purgeCache(c *gin.Context) {
	if h.rdb == nil {
		response.OK(c, gin.H{"deleted": 0})
		return
	}
	deleted, err := middleware.PurgeHTTPCache(c.Request.Context(), h.rdb.Raw())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": deleted})
}
