package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role gates which mutations an identity may perform.
type Role string

const (
	RoleUnassigned Role = "unassigned"
	RoleUser       Role = "user"
	RoleAgent      Role = "agent"
	RoleAdmin      Role = "admin"
	RoleFraud      Role = "fraud"
)

// ParseRole maps a wire string onto a known role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUnassigned, RoleUser, RoleAgent, RoleAdmin, RoleFraud:
		return Role(s), true
	}
	return "", false
}

// Assignable reports whether the role can be set through the role
// assignment endpoints. "unassigned" and "user" are only ever set at
// sign-in time.
func (r Role) Assignable() bool {
	return r == RoleAdmin || r == RoleAgent || r == RoleFraud
}

// User is created idempotently on first sign-in; the role is mutated
// only through the role assignment endpoints.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Name      string         `gorm:"size:255" json:"name"`
	Role      Role           `gorm:"size:20;default:'unassigned'" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
