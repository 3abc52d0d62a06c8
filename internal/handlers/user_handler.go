package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/horizonhomes/horizonhomes-backend/internal/dto"
	"github.com/horizonhomes/horizonhomes-backend/internal/middleware"
	"github.com/horizonhomes/horizonhomes-backend/internal/models"
	"github.com/horizonhomes/horizonhomes-backend/internal/services"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Create handles POST /users - idempotent sign-in upsert. An existing
// email answers insertedId:null and "user already exists".
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Email == "" {
		return badRequest(c, "email is required")
	}

	result, err := h.users.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRole) {
			return badRequest(c, err.Error())
		}
		return serverError(c, "failed to create user", err)
	}
	return c.JSON(result)
}

// List handles GET /users - admin only, gated in the route table.
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List()
	if err != nil {
		return serverError(c, "failed to list users", err)
	}
	return c.JSON(users)
}

// AgentProbe handles GET /users/agent/:email.
func (h *UserHandler) AgentProbe(c *fiber.Ctx) error {
	agent, err := h.users.IsRole(c.Params("email"), models.RoleAgent)
	if err != nil {
		return serverError(c, "failed to probe agent role", err)
	}
	return c.JSON(dto.AgentProbeResponse{Agent: agent})
}

// AdminProbe handles GET /users/admin/:email. A caller may only probe
// its own identity.
func (h *UserHandler) AdminProbe(c *fiber.Ctx) error {
	caller, err := middleware.Email(c)
	if err != nil {
		return badRequest(c, "Missing identity")
	}
	if c.Params("email") != caller {
		return forbidden(c, "You may only probe your own identity")
	}

	admin, err := h.users.IsRole(caller, models.RoleAdmin)
	if err != nil {
		return serverError(c, "failed to probe admin role", err)
	}
	return c.JSON(dto.AdminProbeResponse{Admin: admin})
}

// PromoteAdmin handles PATCH /users/admin/:id.
func (h *UserHandler) PromoteAdmin(c *fiber.Ctx) error {
	return h.setRole(c, models.RoleAdmin)
}

// PromoteAgent handles PATCH /users/agent/:id.
func (h *UserHandler) PromoteAgent(c *fiber.Ctx) error {
	return h.setRole(c, models.RoleAgent)
}

// DemoteFraud handles PATCH /users/agentt/:id - the legacy fraud
// demotion route.
func (h *UserHandler) DemoteFraud(c *fiber.Ctx) error {
	return h.setRole(c, models.RoleFraud)
}

func (h *UserHandler) setRole(c *fiber.Ctx, role models.Role) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	modified, err := h.users.SetRole(id, role)
	if err != nil {
		if errors.Is(err, services.ErrDemotionForbidden) {
			return forbidden(c, err.Error())
		}
		if errors.Is(err, services.ErrInvalidRole) {
			return badRequest(c, err.Error())
		}
		return serverError(c, "failed to set role", err)
	}
	return c.JSON(dto.UpdateResult{Modified: modified})
}

// Delete handles DELETE /users/:id - admin only, unconditional.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	deleted, err := h.users.Delete(id)
	if err != nil {
		return serverError(c, "failed to delete user", err)
	}
	return c.JSON(dto.DeleteResult{DeletedCount: deleted})
}
