package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// VerificationStatus is the admin-controlled flag distinguishing
// listed-but-unverified from verified properties.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
)

func ParseVerificationStatus(s string) (VerificationStatus, bool) {
	switch VerificationStatus(s) {
	case VerificationPending, VerificationVerified:
		return VerificationStatus(s), true
	}
	return "", false
}

// Property is a marketplace listing. PropertyName doubles as the join
// key for reviews and wishlist entries, which reference properties by
// name rather than by id.
type Property struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	PropertyName       string             `gorm:"not null;size:255;index" json:"property_name"`
	Location           string             `gorm:"size:255" json:"location"`
	PriceRange         string             `gorm:"size:100" json:"price_range"`
	Description        string             `gorm:"type:text" json:"description"`
	AgentName          string             `gorm:"size:255" json:"agent_name"`
	AgentEmail         string             `gorm:"size:255;index" json:"agent_email"`
	AgentImage         string             `gorm:"size:512" json:"agent_image"`
	Media              datatypes.JSON     `json:"media"`
	VerificationStatus VerificationStatus `gorm:"size:20;default:'pending'" json:"verification_status"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}
