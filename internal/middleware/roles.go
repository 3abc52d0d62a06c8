package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/horizonhomes/horizonhomes-backend/internal/dto"
	"github.com/horizonhomes/horizonhomes-backend/internal/models"
	"gorm.io/gorm"
)

// RoleRequired looks up the caller's stored role and forwards only on
// an exact match. Must run after JWTProtected. The same gate serves
// both the admin and agent policies.
func RoleRequired(db *gorm.DB, role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := Email(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Code: dto.CodeUnauthenticated, Message: "Unauthorized",
			})
		}

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil || user.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Code: dto.CodeForbidden, Message: string(role) + " access required",
			})
		}

		return c.Next()
	}
}
