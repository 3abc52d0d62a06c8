package models

import (
	"time"

	"github.com/google/uuid"
)

// WishlistStatus is the closed vocabulary for the offer lifecycle.
type WishlistStatus string

const (
	WishlistPending  WishlistStatus = "pending"
	WishlistAccepted WishlistStatus = "accepted"
	WishlistRejected WishlistStatus = "rejected"
	WishlistBought   WishlistStatus = "bought"
)

func ParseWishlistStatus(s string) (WishlistStatus, bool) {
	switch WishlistStatus(s) {
	case WishlistPending, WishlistAccepted, WishlistRejected, WishlistBought:
		return WishlistStatus(s), true
	}
	return "", false
}

// CanTransition encodes the offer lifecycle:
//
//	pending  -> accepted | rejected
//	accepted -> bought
//
// rejected and bought are terminal.
func (s WishlistStatus) CanTransition(to WishlistStatus) bool {
	switch s {
	case WishlistPending:
		return to == WishlistAccepted || to == WishlistRejected
	case WishlistAccepted:
		return to == WishlistBought
	}
	return false
}

// Terminal reports whether no further transition is possible.
func (s WishlistStatus) Terminal() bool {
	return s == WishlistRejected || s == WishlistBought
}

// WishlistEntry is a buyer's offer record against one property.
// (PropertyName, UserEmail) is the natural identity of an offer but is
// deliberately not unique: a buyer may hold several offers on the same
// property and every layer tolerates the duplicates.
type WishlistEntry struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	PropertyName  string         `gorm:"not null;size:255;index" json:"property_name"`
	Location      string         `gorm:"size:255" json:"location"`
	PriceRange    string         `gorm:"size:100" json:"price_range"`
	AgentName     string         `gorm:"size:255" json:"agent_name"`
	AgentEmail    string         `gorm:"size:255;index" json:"agent_email"`
	AgentImage    string         `gorm:"size:512" json:"agent_image"`
	UserName      string         `gorm:"size:255" json:"user_name"`
	UserEmail     string         `gorm:"not null;size:255;index" json:"user_email"`
	OfferedPrice  float64        `json:"offered_price"`
	Status        WishlistStatus `gorm:"size:20;default:'pending'" json:"status"`
	TransactionID string         `gorm:"size:255" json:"transaction_id"`
	SoldPrice     float64        `json:"sold_price"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
