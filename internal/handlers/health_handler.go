package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/horizonhomes/horizonhomes-backend/internal/database"
	"github.com/horizonhomes/horizonhomes-backend/internal/dto"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Root is the liveness string legacy clients poll.
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.SendString("HorizonHomes is running")
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
	})
}
