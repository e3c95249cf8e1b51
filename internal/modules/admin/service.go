package admin

import (
	"errors"
	"strings"

	"github.com/wandererhq/wanderer-core/internal/models"
	"github.com/wandererhq/wanderer-core/internal/pkg/pagination"
	"github.com/wandererhq/wanderer-core/internal/pkg/response"
	sessionpkg "github.com/wandererhq/wanderer-core/internal/pkg/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrEmailTaken is returned when creating a user with an existing email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrRoleExists is returned when granting a role the user already has.
	ErrRoleExists = errors.New("user already has this role")
	// ErrUnknownRole rejects roles outside the known set.
	ErrUnknownRole = errors.New("unknown role")
)

// CreateUserDTO is the privileged user creation payload. Unlike public
// registration it sets the name parts and the initial role directly.
type CreateUserDTO struct {
	Email         string `json:"email"      binding:"required,email"`
	Password      string `json:"password"   binding:"required,min=8"`
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name"  binding:"required"`
	MiddleInitial string `json:"middle_initial"`
	Suffix        string `json:"suffix"`
	Role          string `json:"role"`
}

type GrantRoleDTO struct {
	Role string `json:"role" binding:"required"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func validRole(role string) bool {
	return role == models.RoleAdmin || role == models.RoleUser
}

func (s *Service) ListUsers(q pagination.Query, search string) ([]models.UserModel, response.Pagination, error) {
	query := s.db.Model(&models.UserModel{}).
		Preload("Roles").
		Order("created_at DESC")
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("email LIKE ? OR first_name LIKE ? OR last_name LIKE ?", like, like, like)
	}

	var users []models.UserModel
	page, err := pagination.Paginate(query, q, &users)
	return users, page, err
}

func (s *Service) GetUser(id string) (*models.UserModel, error) {
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

func (s *Service) CreateUser(dto *CreateUserDTO) (*models.UserModel, error) {
	role := dto.Role
	if role == "" {
		role = models.RoleUser
	}
	if !validRole(role) {
		return nil, ErrUnknownRole
	}

	email := strings.ToLower(strings.TrimSpace(dto.Email))
	var count int64
	s.db.Model(&models.UserModel{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.UserModel{
		Email:         email,
		Password:      string(hashed),
		FirstName:     dto.FirstName,
		LastName:      dto.LastName,
		MiddleInitial: dto.MiddleInitial,
		Suffix:        dto.Suffix,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.RoleModel{UserID: user.ID, Role: role}).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetUser(user.ID)
}

func (s *Service) GrantRole(userID, role string) (*models.UserModel, error) {
	if !validRole(role) {
		return nil, ErrUnknownRole
	}
	user, err := s.GetUser(userID)
	if err != nil || user == nil {
		return user, err
	}
	for _, r := range user.Roles {
		if r.Role == role {
			return user, ErrRoleExists
		}
	}
	if err := s.db.Create(&models.RoleModel{UserID: userID, Role: role}).Error; err != nil {
		return user, err
	}
	return s.GetUser(userID)
}

// RevokeRole removes a role row. Revoking "admin" kills the user's
// sessions immediately so stale tokens lose their privileges; a user
// whose last role is removed is deactivated and cannot log in until a
// role is granted again.
func (s *Service) RevokeRole(userID, role string) (*models.UserModel, error) {
	user, err := s.GetUser(userID)
	if err != nil || user == nil {
		return user, err
	}

	res := s.db.Delete(&models.RoleModel{}, "user_id = ? AND role = ?", userID, role)
	if res.Error != nil {
		return user, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	var remaining int64
	s.db.Model(&models.RoleModel{}).Where("user_id = ?", userID).Count(&remaining)
	if role == models.RoleAdmin || remaining == 0 {
		if err := sessionpkg.RevokeAll(s.db, userID); err != nil {
			return user, err
		}
	}
	return s.GetUser(userID)
}
