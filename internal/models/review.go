package models

import (
	"time"

	"github.com/google/uuid"
)

// Review references its property by name, not id. The name is
// denormalized at write time and never back-filled when a property is
// renamed.
type Review struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PropertyName  string    `gorm:"not null;size:255;index" json:"property_name"`
	ReviewerEmail string    `gorm:"size:255;index" json:"reviewer_email"`
	ReviewerName  string    `gorm:"size:255" json:"reviewer_name"`
	Comment       string    `gorm:"type:text" json:"comment"`
	Rating        float64   `json:"rating"`
	CreatedAt     time.Time `json:"created_at"`
}
