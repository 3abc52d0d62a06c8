package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/horizonhomes/horizonhomes-backend/internal/dto"
	"github.com/horizonhomes/horizonhomes-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrPropertyNotFound  = errors.New("property not found")
	ErrInvalidPropStatus = errors.New("verification status must be pending or verified")
)

type PropertyService struct {
	db *gorm.DB
}

func NewPropertyService(db *gorm.DB) *PropertyService {
	return &PropertyService{db: db}
}

func (s *PropertyService) List() ([]models.Property, error) {
	var properties []models.Property
	if err := s.db.Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return properties, nil
}

func (s *PropertyService) Get(id uuid.UUID) (*models.Property, error) {
	var property models.Property
	if err := s.db.First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to fetch property: %w", err)
	}
	return &property, nil
}

func (s *PropertyService) Create(req *dto.PropertyRequest) (*models.Property, error) {
	property := models.Property{
		ID:                 uuid.New(),
		VerificationStatus: models.VerificationPending,
	}
	applyPropertyFields(&property, req)

	if err := s.db.Create(&property).Error; err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}
	return &property, nil
}

// Replace overwrites every descriptive field with the request body.
// The verification status is untouched; it only moves through
// SetVerificationStatus.
func (s *PropertyService) Replace(id uuid.UUID, req *dto.PropertyRequest) (*models.Property, error) {
	property, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	applyPropertyFields(property, req)
	if err := s.db.Save(property).Error; err != nil {
		return nil, fmt.Errorf("failed to replace property: %w", err)
	}
	return property, nil
}

// SetVerificationStatus reports modified=false, not an error, when the
// id is unknown or the status is unchanged.
func (s *PropertyService) SetVerificationStatus(id uuid.UUID, status string) (bool, error) {
	parsed, ok := models.ParseVerificationStatus(status)
	if !ok {
		return false, ErrInvalidPropStatus
	}

	result := s.db.Model(&models.Property{}).
		Where("id = ? AND verification_status <> ?", id, parsed).
		Update("verification_status", parsed)
	if result.Error != nil {
		return false, fmt.Errorf("failed to update verification status: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (s *PropertyService) Delete(id uuid.UUID) (int64, error) {
	result := s.db.Delete(&models.Property{}, "id = ?", id)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete property: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func applyPropertyFields(p *models.Property, req *dto.PropertyRequest) {
	p.PropertyName = req.PropertyName
	p.Location = req.Location
	p.PriceRange = req.PriceRange
	p.Description = req.Description
	p.AgentName = req.AgentName
	p.AgentEmail = req.AgentEmail
	p.AgentImage = req.AgentImage
	if len(req.Media) > 0 {
		p.Media = datatypes.JSON(req.Media)
	}
}
