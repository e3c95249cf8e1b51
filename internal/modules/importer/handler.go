package importer

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wandererhq/wanderer-core/internal/pkg/response"
	"github.com/wandererhq/wanderer-core/internal/pkg/taskqueue"
	"go.uber.org/zap"
)

type Handler struct {
	svc   *Service
	tasks *taskqueue.Service
	log   *zap.Logger
}

func NewHandler(svc *Service, tasks *taskqueue.Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, tasks: tasks, log: log}
}

// RegisterRoutes mounts the import endpoints; callers gate them behind the
// admin middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/import", h.runImport)
	rg.GET("/import/tasks/:id", h.taskStatus)
}

type importRequest struct {
	Target string `json:"target" binding:"required"`
	Data   string `json:"data"   binding:"required"`
	Async  bool   `json:"async"`
}

func (h *Handler) runImport(c *gin.Context) {
	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	records, err := Parse(strings.NewReader(req.Data), h.log)
	if err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}
	if len(records) == 0 {
		response.UnprocessableEntity(c, "no data rows found")
		return
	}

	target := Target(strings.ToLower(strings.TrimSpace(req.Target)))

	if req.Async && h.tasks != nil {
		task, err := h.tasks.Create(c.Request.Context(), "bulk_import")
		if err != nil {
			response.InternalError(c, err)
			return
		}
		go h.runAsync(task.ID, target, records)
		response.OK(c, gin.H{"task_id": task.ID})
		return
	}

	report, err := h.svc.Import(target, records)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.OK(c, report)
}

func (h *Handler) runAsync(taskID string, target Target, records []Record) {
	ctx := context.Background()
	_ = h.tasks.UpdateStatus(ctx, taskID, taskqueue.TaskRunning, nil, "")

	report, err := h.svc.Import(target, records)
	if err != nil {
		_ = h.tasks.UpdateStatus(ctx, taskID, taskqueue.TaskFailed, nil, err.Error())
		return
	}
	_ = h.tasks.UpdateStatus(ctx, taskID, taskqueue.TaskCompleted, report, "")
}

func (h *Handler) taskStatus(c *gin.Context) {
	task, err := h.tasks.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if task == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, task)
}
