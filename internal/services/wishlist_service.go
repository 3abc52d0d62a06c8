package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/horizonhomes/horizonhomes-backend/internal/dto"
	"github.com/horizonhomes/horizonhomes-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrEntryNotFound     = errors.New("wishlist entry not found")
	ErrInvalidStatus     = errors.New("unknown wishlist status")
	ErrInvalidTransition = errors.New("illegal status transition")
)

// WishlistService owns the offer lifecycle. Status moves only through
// SetStatus and CompleteSale, which enforce the transition graph;
// Create and Replace never touch status or the sale fields.
type WishlistService struct {
	db *gorm.DB
}

func NewWishlistService(db *gorm.DB) *WishlistService {
	return &WishlistService{db: db}
}

// Create inserts a new offer in the pending state. There is no
// uniqueness check: a buyer offering twice on the same property yields
// two independent entries.
func (s *WishlistService) Create(req *dto.WishlistRequest) (*models.WishlistEntry, error) {
	entry := models.WishlistEntry{
		ID:     uuid.New(),
		Status: models.WishlistPending,
	}
	applyWishlistFields(&entry, req)

	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to create wishlist entry: %w", err)
	}
	return &entry, nil
}

func (s *WishlistService) Get(id uuid.UUID) (*models.WishlistEntry, error) {
	var entry models.WishlistEntry
	if err := s.db.First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to fetch wishlist entry: %w", err)
	}
	return &entry, nil
}

func (s *WishlistService) ListByBuyer(email string) ([]models.WishlistEntry, error) {
	var entries []models.WishlistEntry
	if err := s.db.Where("user_email = ?", email).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list wishlist entries: %w", err)
	}
	return entries, nil
}

func (s *WishlistService) ListByAgent(agentEmail string) ([]models.WishlistEntry, error) {
	var entries []models.WishlistEntry
	if err := s.db.Where("agent_email = ?", agentEmail).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list wishlist entries: %w", err)
	}
	return entries, nil
}

// Replace overwrites the descriptive fields; status and the sale
// fields are preserved. Unknown ids are a hard not-found.
func (s *WishlistService) Replace(id uuid.UUID, req *dto.WishlistRequest) (*models.WishlistEntry, error) {
	entry, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	applyWishlistFields(entry, req)
	if err := s.db.Save(entry).Error; err != nil {
		return nil, fmt.Errorf("failed to replace wishlist entry: %w", err)
	}
	return entry, nil
}

// SetStatus applies one guarded transition. A missing id or an
// unchanged value reports modified=false without erroring; an illegal
// transition is rejected.
func (s *WishlistService) SetStatus(id uuid.UUID, status models.WishlistStatus) (bool, error) {
	var entry models.WishlistEntry
	if err := s.db.First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to fetch wishlist entry: %w", err)
	}

	if entry.Status == status {
		return false, nil
	}
	if !entry.Status.CanTransition(status) {
		return false, ErrInvalidTransition
	}

	result := s.db.Model(&entry).Update("status", status)
	if result.Error != nil {
		return false, fmt.Errorf("failed to update status: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// CompleteSale moves an accepted offer to bought and records the
// transaction id and sold price in one update, so a reader never sees
// status=bought with the sale fields missing.
func (s *WishlistService) CompleteSale(id uuid.UUID, transactionID string, soldPrice float64) (bool, error) {
	var entry models.WishlistEntry
	if err := s.db.First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to fetch wishlist entry: %w", err)
	}

	if !entry.Status.CanTransition(models.WishlistBought) {
		return false, ErrInvalidTransition
	}

	result := s.db.Model(&entry).Updates(map[string]interface{}{
		"status":         models.WishlistBought,
		"transaction_id": transactionID,
		"sold_price":     soldPrice,
	})
	if result.Error != nil {
		return false, fmt.Errorf("failed to complete sale: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (s *WishlistService) Delete(id uuid.UUID) (int64, error) {
	result := s.db.Delete(&models.WishlistEntry{}, "id = ?", id)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete wishlist entry: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func applyWishlistFields(e *models.WishlistEntry, req *dto.WishlistRequest) {
	e.PropertyName = req.PropertyName
	e.Location = req.Location
	e.PriceRange = req.PriceRange
	e.AgentName = req.AgentName
	e.AgentEmail = req.AgentEmail
	e.AgentImage = req.AgentImage
	e.UserName = req.UserName
	e.UserEmail = req.UserEmail
	e.OfferedPrice = req.OfferedPrice
}
