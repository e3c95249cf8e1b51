package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/wandererhq/wanderer-core/internal/models"
	sessionpkg "github.com/wandererhq/wanderer-core/internal/pkg/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrEmailTaken is returned on registration with an existing email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so login responses do not reveal which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccountDeactivated is returned for users stripped of all roles.
	ErrAccountDeactivated = errors.New("account deactivated")
)

type RegisterDTO struct {
	Email         string `json:"email"      binding:"required,email"`
	Password      string `json:"password"   binding:"required,min=8"`
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name"  binding:"required"`
	MiddleInitial string `json:"middle_initial"`
	Suffix        string `json:"suffix"`
}

type LoginDTO struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResult carries the signed token and the authenticated profile.
type LoginResult struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expires_at"`
	User      *models.UserModel `json:"user"`
}

type Service struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, ttl: sessionpkg.DefaultTTL}
}

func (s *Service) Register(dto *RegisterDTO) (*models.UserModel, error) {
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
		return tx.Create(&models.RoleModel{UserID: user.ID, Role: models.RoleUser}).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) Login(dto *LoginDTO, ip, ua string) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(dto.Email))

	var user models.UserModel
	err := s.db.Preload("Roles").First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(dto.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	// A user with no role rows has been deactivated by an admin.
	if len(user.Roles) == 0 {
		return nil, ErrAccountDeactivated
	}

	token, sess, err := sessionpkg.Issue(s.db, user.ID, ip, ua, s.ttl)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	_ = s.db.Model(&user).Updates(map[string]interface{}{
		"last_login_time": &now,
		"last_login_ip":   ip,
	}).Error

	return &LoginResult{Token: token, ExpiresAt: sess.ExpiresAt, User: &user}, nil
}

// Logout revokes the session the token was bound to.
func (s *Service) Logout(userID, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	err := sessionpkg.Revoke(s.db, userID, sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

// LogoutAll revokes every active session of the user.
func (s *Service) LogoutAll(userID string) error {
	return sessionpkg.RevokeAll(s.db, userID)
}

func (s *Service) Sessions(userID string) ([]models.UserSession, error) {
	var sessions []models.UserSession
	err := s.db.
		Where("user_id = ? AND revoked_at IS NULL AND expires_at > ?", userID, time.Now()).
		Order("updated_at DESC").
		Find(&sessions).Error
	return sessions, err
}
