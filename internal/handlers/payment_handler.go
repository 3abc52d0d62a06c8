package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/horizonhomes/horizonhomes-backend/internal/dto"
	"github.com/horizonhomes/horizonhomes-backend/internal/services"
)

type PaymentHandler struct {
	payments *services.PaymentService
}

func NewPaymentHandler(payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// CreateIntent handles POST /create-payment-intent - validates the
// offered price and mints a provider-side intent for it.
func (h *PaymentHandler) CreateIntent(c *fiber.Ctx) error {
	var req dto.PaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	secret, err := h.payments.CreateIntent(c.Context(), req.OfferedPrice)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) {
			return badRequest(c, err.Error())
		}
		return serverError(c, "payment intent creation failed", err)
	}

	return c.JSON(dto.PaymentIntentResponse{ClientSecret: secret})
}
