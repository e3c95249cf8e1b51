package onboarding

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wandererhq/wanderer-core/internal/middleware"
	"github.com/wandererhq/wanderer-core/internal/models"
	"github.com/wandererhq/wanderer-core/internal/modules/recommend"
	"github.com/wandererhq/wanderer-core/internal/pkg/response"
	"gorm.io/gorm"
)

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	ob := rg.Group("/onboarding", authMW)
	ob.GET("/steps", h.steps)
	ob.POST("/transition", h.transition)
	ob.POST("/complete", h.complete)
	ob.GET("/preferences", h.preferences)
}

func (h *Handler) steps(c *gin.Context) {
	response.OK(c, Steps)
}

type transitionRequest struct {
	Index     int                 `json:"index"`
	Direction string              `json:"direction" binding:"required"` // "next" | "back"
	Answers   *models.Preferences `json:"answers"`
}

// transition validates a single wizard move so the client cannot walk
// past an unanswered required step.
func (h *Handler) transition(c *gin.Context) {
	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var dir Direction
	switch strings.ToLower(req.Direction) {
	case "next":
		dir = Next
	case "back":
		dir = Back
	default:
		response.BadRequest(c, "direction must be next or back")
		return
	}

	state := Transition(State{Index: req.Index}, dir, req.Answers)
	out := gin.H{"index": state.Index, "done": state.Done(), "moved": state.Index != req.Index}
	if step := state.Current(); step != nil {
		out["step"] = step
	}
	response.OK(c, out)
}

// complete persists the survey. There is no partial save: abandoning the
// wizard records nothing, and re-running onboarding overwrites.
func (h *Handler) complete(c *gin.Context) {
	var answers models.Preferences
	if err := c.ShouldBindJSON(&answers); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// District answers come from a fixed choice list; accept only names the
	// lookup table knows.
	if answers.District != "" && answers.District != recommend.AnyDistrict && !validDistrictName(answers.District) {
		response.UnprocessableEntity(c, "unknown district")
		return
	}

	ok, missing := Complete(&answers)
	if !ok {
		response.UnprocessableEntity(c, "missing required steps: "+strings.Join(missing, ", "))
		return
	}

	userID := middleware.CurrentUserID(c)
	err := h.db.Model(&models.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"preferences":          &answers,
			"onboarding_completed": true,
		}).Error
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"preferences": answers, "onboarding_completed": true})
}

func (h *Handler) preferences(c *gin.Context) {
	var u models.UserModel
	err := h.db.Select("id, preferences, onboarding_completed").
		First(&u, "id = ?", middleware.CurrentUserID(c)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{
		"preferences":          u.Preferences,
		"onboarding_completed": u.OnboardingCompleted,
	})
}

func validDistrictName(name string) bool {
	for _, d := range recommend.Districts() {
		if strings.EqualFold(d, name) {
			return true
		}
	}
	return false
}
