package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/horizonhomes/horizonhomes-backend/internal/dto"
	"github.com/horizonhomes/horizonhomes-backend/internal/services"
)

type ReviewHandler struct {
	reviews *services.ReviewService
}

func NewReviewHandler(reviews *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// List handles GET /reviews.
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	reviews, err := h.reviews.List()
	if err != nil {
		return serverError(c, "failed to list reviews", err)
	}
	return c.JSON(reviews)
}

// Create handles POST /reviews.
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var req dto.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.PropertyName == "" {
		return badRequest(c, "property_name is required")
	}

	review, err := h.reviews.Create(&req)
	if err != nil {
		return serverError(c, "failed to create review", err)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// ListForProperty handles GET /reviews/:id - the compare endpoint. The
// :id is a property id; the response is every review matching that
// property's name.
func (h *ReviewHandler) ListForProperty(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid property id")
	}

	reviews, err := h.reviews.ListForProperty(id)
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			return notFound(c, "Property not found")
		}
		return serverError(c, "failed to list reviews for property", err)
	}
	return c.JSON(reviews)
}

// Delete handles DELETE /reviews/:id.
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid review id")
	}

	deleted, err := h.reviews.Delete(id)
	if err != nil {
		return serverError(c, "failed to delete review", err)
	}
	return c.JSON(dto.DeleteResult{DeletedCount: deleted})
}
