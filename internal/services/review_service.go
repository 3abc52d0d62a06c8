package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/horizonhomes/horizonhomes-backend/internal/dto"
	"github.com/horizonhomes/horizonhomes-backend/internal/models"
	"gorm.io/gorm"
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

func (s *ReviewService) List() ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

func (s *ReviewService) Create(req *dto.ReviewRequest) (*models.Review, error) {
	review := models.Review{
		ID:            uuid.New(),
		PropertyName:  req.PropertyName,
		ReviewerEmail: req.ReviewerEmail,
		ReviewerName:  req.ReviewerName,
		Comment:       req.Comment,
		Rating:        req.Rating,
	}

	if err := s.db.Create(&review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return &review, nil
}

// ListForProperty resolves the property by id, then filters reviews by
// its name. The name is the join key; reviews never store property ids.
func (s *ReviewService) ListForProperty(propertyID uuid.UUID) ([]models.Review, error) {
	var property models.Property
	if err := s.db.First(&property, "id = ?", propertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to fetch property: %w", err)
	}

	var reviews []models.Review
	if err := s.db.Where("property_name = ?", property.PropertyName).Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews for property: %w", err)
	}
	return reviews, nil
}

func (s *ReviewService) Delete(id uuid.UUID) (int64, error) {
	result := s.db.Delete(&models.Review{}, "id = ?", id)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete review: %w", result.Error)
	}
	return result.RowsAffected, nil
}
