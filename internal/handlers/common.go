package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/horizonhomes/horizonhomes-backend/internal/dto"
)

func parseIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Code: dto.CodeInvalidInput, Message: message,
	})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: true, Code: dto.CodeNotFound, Message: message,
	})
}

func forbidden(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
		Error: true, Code: dto.CodeForbidden, Message: message,
	})
}

func conflict(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
		Error: true, Code: dto.CodeInvalidTransition, Message: message,
	})
}

// serverError logs the real failure (the DB sink picks it up) and
// answers a generic 500; store and provider errors never leak to
// callers.
func serverError(c *fiber.Ctx, action string, err error) error {
	slog.Error(action, "error", err, "method", c.Method(), "route", c.Path(),
		"request_id", requestID(c))
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Code: dto.CodeUpstreamFailure, Message: "Internal server error",
	})
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
