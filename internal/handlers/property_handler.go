package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/horizonhomes/horizonhomes-backend/internal/dto"
	"github.com/horizonhomes/horizonhomes-backend/internal/services"
)

type PropertyHandler struct {
	properties *services.PropertyService
}

func NewPropertyHandler(properties *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{properties: properties}
}

// List handles GET /properties.
func (h *PropertyHandler) List(c *fiber.Ctx) error {
	properties, err := h.properties.List()
	if err != nil {
		return serverError(c, "failed to list properties", err)
	}
	return c.JSON(properties)
}

// Get handles GET /properties/:id.
func (h *PropertyHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid property id")
	}

	property, err := h.properties.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			return notFound(c, "Property not found")
		}
		return serverError(c, "failed to fetch property", err)
	}
	return c.JSON(property)
}

// Create handles POST /properties.
func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	var req dto.PropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.PropertyName == "" {
		return badRequest(c, "property_name is required")
	}

	property, err := h.properties.Create(&req)
	if err != nil {
		return serverError(c, "failed to create property", err)
	}
	return c.Status(fiber.StatusCreated).JSON(property)
}

// Replace handles PATCH /properties/:id - a full-field overwrite.
func (h *PropertyHandler) Replace(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid property id")
	}

	var req dto.PropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	property, err := h.properties.Replace(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			return notFound(c, "Property not found")
		}
		return serverError(c, "failed to replace property", err)
	}
	return c.JSON(property)
}

// SetVerification handles PATCH /propertiess/:id - the legacy
// verification-status-only route.
func (h *PropertyHandler) SetVerification(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid property id")
	}

	var req dto.VerificationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	modified, err := h.properties.SetVerificationStatus(id, req.VerificationStatus)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPropStatus) {
			return badRequest(c, err.Error())
		}
		return serverError(c, "failed to update verification status", err)
	}
	return c.JSON(dto.UpdateResult{Modified: modified})
}

// Delete handles DELETE /properties/:id.
func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid property id")
	}

	deleted, err := h.properties.Delete(id)
	if err != nil {
		return serverError(c, "failed to delete property", err)
	}
	return c.JSON(dto.DeleteResult{DeletedCount: deleted})
}
