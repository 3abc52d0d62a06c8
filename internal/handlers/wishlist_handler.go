package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/horizonhomes/horizonhomes-backend/internal/dto"
	"github.com/horizonhomes/horizonhomes-backend/internal/middleware"
	"github.com/horizonhomes/horizonhomes-backend/internal/models"
	"github.com/horizonhomes/horizonhomes-backend/internal/services"
)

type WishlistHandler struct {
	wishlist *services.WishlistService
}

func NewWishlistHandler(wishlist *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist}
}

// Create handles POST /wishlist - records a new offer in the pending
// state. Duplicates for the same buyer and property are allowed.
func (h *WishlistHandler) Create(c *fiber.Ctx) error {
	var req dto.WishlistRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.PropertyName == "" || req.UserEmail == "" {
		return badRequest(c, "property_name and user_email are required")
	}

	entry, err := h.wishlist.Create(&req)
	if err != nil {
		return serverError(c, "failed to create wishlist entry", err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// List handles GET /wishlist - the caller's own entries, keyed by the
// email claim of the bearer token.
func (h *WishlistHandler) List(c *fiber.Ctx) error {
	email, err := middleware.Email(c)
	if err != nil {
		return badRequest(c, "Missing identity")
	}

	entries, err := h.wishlist.ListByBuyer(email)
	if err != nil {
		return serverError(c, "failed to list wishlist entries", err)
	}
	return c.JSON(entries)
}

// ListByAgent handles GET /wishlistt?agent_email= - offers against an
// agent's listings.
func (h *WishlistHandler) ListByAgent(c *fiber.Ctx) error {
	agentEmail := c.Query("agent_email")
	if agentEmail == "" {
		return badRequest(c, "agent_email query parameter is required")
	}

	entries, err := h.wishlist.ListByAgent(agentEmail)
	if err != nil {
		return serverError(c, "failed to list wishlist entries", err)
	}
	return c.JSON(entries)
}

// Get handles GET /wishlist/:id.
func (h *WishlistHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid wishlist id")
	}

	entry, err := h.wishlist.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			return notFound(c, "Wishlist entry not found")
		}
		return serverError(c, "failed to fetch wishlist entry", err)
	}
	return c.JSON(entry)
}

// Replace handles PATCH /wishlist/:id - overwrites descriptive fields
// only; status and sale fields move through UpdateStatus.
func (h *WishlistHandler) Replace(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid wishlist id")
	}

	var req dto.WishlistRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	entry, err := h.wishlist.Replace(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			return notFound(c, "Wishlist entry not found")
		}
		return serverError(c, "failed to replace wishlist entry", err)
	}
	return c.JSON(entry)
}

// UpdateStatus handles PATCH /wishlistt/:id. The body discriminates
// intent: sale fields present means sale completion, otherwise a
// status-only transition. Both legacy routes funnel here.
func (h *WishlistHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid wishlist id")
	}

	var req dto.WishlistStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if req.TransactionID != "" || req.SoldPrice != nil {
		if req.TransactionID == "" || req.SoldPrice == nil {
			return badRequest(c, "sale completion requires transaction_id and sold_price together")
		}
		modified, err := h.wishlist.CompleteSale(id, req.TransactionID, *req.SoldPrice)
		return h.statusResult(c, modified, err, "failed to complete sale")
	}

	return h.setStatus(c, id, req.Status)
}

// SetStatus handles PATCH /wishlistR/:id - the narrower legacy route
// that only ever carries a status.
func (h *WishlistHandler) SetStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid wishlist id")
	}

	var req dto.WishlistStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	return h.setStatus(c, id, req.Status)
}

func (h *WishlistHandler) setStatus(c *fiber.Ctx, id uuid.UUID, status string) error {
	parsed, ok := models.ParseWishlistStatus(status)
	if !ok {
		return badRequest(c, "status must be one of pending, accepted, rejected, bought")
	}

	modified, err := h.wishlist.SetStatus(id, parsed)
	return h.statusResult(c, modified, err, "failed to update status")
}

func (h *WishlistHandler) statusResult(c *fiber.Ctx, modified bool, err error, action string) error {
	if err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			return conflict(c, err.Error())
		}
		return serverError(c, action, err)
	}
	return c.JSON(dto.UpdateResult{Modified: modified})
}

// Delete handles DELETE /wishlist/:id.
func (h *WishlistHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid wishlist id")
	}

	deleted, err := h.wishlist.Delete(id)
	if err != nil {
		return serverError(c, "failed to delete wishlist entry", err)
	}
	return c.JSON(dto.DeleteResult{DeletedCount: deleted})
}
