package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/horizonhomes/horizonhomes-backend/internal/config"
	"github.com/horizonhomes/horizonhomes-backend/internal/dto"
	"github.com/horizonhomes/horizonhomes-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrInvalidRole       = errors.New("role must be admin, agent or fraud")
	ErrDemotionForbidden = errors.New("admin accounts cannot be demoted to fraud")
)

type UserService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewUserService(db *gorm.DB, cfg *config.Config) *UserService {
	return &UserService{db: db, cfg: cfg}
}

// Create is idempotent: posting an existing email is a no-op that
// answers insertedId:null and "user already exists".
func (s *UserService) Create(req *dto.CreateUserRequest) (*dto.InsertResult, error) {
	var existing models.User
	err := s.db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return &dto.InsertResult{InsertedID: nil, Message: "user already exists"}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	role := models.RoleUnassigned
	if req.Role != "" {
		parsed, ok := models.ParseRole(req.Role)
		if !ok {
			return nil, ErrInvalidRole
		}
		role = parsed
	}

	user := models.User{
		ID:    uuid.New(),
		Email: req.Email,
		Name:  req.Name,
		Role:  role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &dto.InsertResult{InsertedID: &user.ID}, nil
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// SetRole assigns admin, agent or fraud. Re-setting the current role
// reports modified=false without erroring. Whether an admin may be
// demoted straight to fraud is a deployment policy, not a hardcoded
// rule.
func (s *UserService) SetRole(id uuid.UUID, role models.Role) (bool, error) {
	if !role.Assignable() {
		return false, ErrInvalidRole
	}

	if role == models.RoleFraud && !s.cfg.AllowAdminFraudDemotion {
		var target models.User
		err := s.db.First(&target, "id = ?", id).Error
		if err == nil && target.Role == models.RoleAdmin {
			return false, ErrDemotionForbidden
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("failed to look up user: %w", err)
		}
	}

	result := s.db.Model(&models.User{}).
		Where("id = ? AND role <> ?", id, role).
		Update("role", role)
	if result.Error != nil {
		return false, fmt.Errorf("failed to set role: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// IsRole probes whether the email belongs to a user holding the role.
// Unknown emails probe false rather than erroring.
func (s *UserService) IsRole(email string, role models.Role) (bool, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up user: %w", err)
	}
	return user.Role == role, nil
}

func (s *UserService) Delete(id uuid.UUID) (int64, error) {
	result := s.db.Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete user: %w", result.Error)
	}
	return result.RowsAffected, nil
}
