package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/horizonhomes/horizonhomes-backend/internal/config"
	"github.com/horizonhomes/horizonhomes-backend/internal/payments"
)

// MaxIntentMinorUnits is the provider's per-intent ceiling
// ($999,999.99). Amounts above it are capped, not rejected.
const MaxIntentMinorUnits = 99_999_999

var ErrInvalidAmount = errors.New("offered price must be a positive number")

type PaymentService struct {
	cfg      *config.Config
	provider payments.Provider
}

func NewPaymentService(cfg *config.Config, provider payments.Provider) *PaymentService {
	return &PaymentService{cfg: cfg, provider: provider}
}

// CreateIntent validates the offered price, converts it to minor units
// and asks the provider for a payment intent. The provider is never
// called for an invalid amount.
func (s *PaymentService) CreateIntent(ctx context.Context, offeredPrice string) (string, error) {
	amount, err := toMinorUnits(offeredPrice)
	if err != nil {
		return "", err
	}

	secret, err := s.provider.CreateIntent(ctx, amount, s.cfg.PaymentCurrency)
	if err != nil {
		return "", fmt.Errorf("payment provider failed: %w", err)
	}
	return secret, nil
}

func toMinorUnits(offeredPrice string) (int64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(offeredPrice), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return 0, ErrInvalidAmount
	}

	// Clamp before the int64 conversion so absurd inputs cannot
	// overflow.
	cents := math.Round(price * 100)
	if cents >= MaxIntentMinorUnits {
		return MaxIntentMinorUnits, nil
	}
	if cents <= 0 {
		return 0, ErrInvalidAmount
	}
	return int64(cents), nil
}
