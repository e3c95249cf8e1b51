package user

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/wandererhq/wanderer-core/internal/middleware"
	"github.com/wandererhq/wanderer-core/internal/models"
	"github.com/wandererhq/wanderer-core/internal/pkg/response"
	sessionpkg "github.com/wandererhq/wanderer-core/internal/pkg/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrWrongPassword is returned when the current password check fails.
var ErrWrongPassword = errors.New("current password is incorrect")

type UpdateProfileDTO struct {
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	MiddleInitial *string `json:"middle_initial"`
	Suffix        *string `json:"suffix"`
	AvatarURL     *string `json:"avatar_url"`
}

type ChangePasswordDTO struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password"     binding:"required,min=8"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) GetByID(id string) (*models.UserModel, error) {
	var user models.UserModel
	err := s.db.Preload("Roles").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *Service) UpdateProfile(id string, dto *UpdateProfileDTO) (*models.UserModel, error) {
	user, err := s.GetByID(id)
	if err != nil || user == nil {
		return user, err
	}
	updates := map[string]interface{}{}
	if dto.FirstName != nil {
		updates["first_name"] = *dto.FirstName
	}
	if dto.LastName != nil {
		updates["last_name"] = *dto.LastName
	}
	if dto.MiddleInitial != nil {
		updates["middle_initial"] = *dto.MiddleInitial
	}
	if dto.Suffix != nil {
		updates["suffix"] = *dto.Suffix
	}
	if dto.AvatarURL != nil {
		updates["avatar_url"] = *dto.AvatarURL
	}
	if len(updates) == 0 {
		return user, nil
	}
	return user, s.db.Model(user).Updates(updates).Error
}

// ChangePassword verifies the current password, stores the new hash and
// revokes every session so stolen tokens die with the old password.
func (s *Service) ChangePassword(id string, dto *ChangePasswordDTO) error {
	user, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return gorm.ErrRecordNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(dto.CurrentPassword)) != nil {
		return ErrWrongPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(dto.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.db.Model(user).Update("password", string(hashed)).Error; err != nil {
		return err
	}
	return sessionpkg.RevokeAll(s.db, id)
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	me := rg.Group("/me", authMW)
	me.GET("", h.me)
	me.PUT("", h.updateProfile)
	me.PATCH("", h.updateProfile)
	me.POST("/password", h.changePassword)
}

func (h *Handler) me(c *gin.Context) {
	user, err := h.svc.GetByID(middleware.CurrentUserID(c))
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

func (h *Handler) updateProfile(c *gin.Context) {
	var dto UpdateProfileDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.svc.UpdateProfile(middleware.CurrentUserID(c), &dto)
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

func (h *Handler) changePassword(c *gin.Context) {
	var dto ChangePasswordDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	err := h.svc.ChangePassword(middleware.CurrentUserID(c), &dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrWrongPassword):
			response.BadRequest(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.NotFound(c)
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.NoContent(c)
}
