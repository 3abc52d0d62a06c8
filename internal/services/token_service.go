package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/horizonhomes/horizonhomes-backend/internal/config"
)

var ErrMissingIdentity = errors.New("email is required")

// TokenService signs short-lived bearer tokens for an asserted
// identity. There is no credential check here: sign-in happens
// upstream and this endpoint only mints the session token.
type TokenService struct {
	cfg *config.Config
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{cfg: cfg}
}

func (s *TokenService) Issue(email, name string) (string, error) {
	if email == "" {
		return "", ErrMissingIdentity
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"email": email,
		"name":  name,
		"iat":   now.Unix(),
		"exp":   now.Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
