package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/horizonhomes/horizonhomes-backend/internal/dto"
	"github.com/horizonhomes/horizonhomes-backend/internal/services"
)

type TokenHandler struct {
	tokens *services.TokenService
}

func NewTokenHandler(tokens *services.TokenService) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

// Issue handles POST /jwt - signs a one-hour bearer token for the
// posted identity.
func (h *TokenHandler) Issue(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	token, err := h.tokens.Issue(req.Email, req.Name)
	if err != nil {
		if errors.Is(err, services.ErrMissingIdentity) {
			return badRequest(c, err.Error())
		}
		return serverError(c, "token signing failed", err)
	}

	return c.JSON(dto.TokenResponse{Token: token})
}
