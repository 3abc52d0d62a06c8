package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/horizonhomes/horizonhomes-backend/internal/config"
	"github.com/horizonhomes/horizonhomes-backend/internal/handlers"
	"github.com/horizonhomes/horizonhomes-backend/internal/middleware"
	"github.com/horizonhomes/horizonhomes-backend/internal/models"
	"gorm.io/gorm"
)

// Setup registers the route table. The misspelled paths (/propertiess,
// /wishlistt, /wishlistR, /users/agentt) are load-bearing: deployed
// clients call them, so they stay and simply funnel into the same
// parameterized handlers as their canonical siblings.
func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	tokenHandler *handlers.TokenHandler,
	healthHandler *handlers.HealthHandler,
	propertyHandler *handlers.PropertyHandler,
	reviewHandler *handlers.ReviewHandler,
	wishlistHandler *handlers.WishlistHandler,
	userHandler *handlers.UserHandler,
	paymentHandler *handlers.PaymentHandler,
) {
	jwt := middleware.JWTProtected(cfg)
	admin := middleware.RoleRequired(db, models.RoleAdmin)

	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.Check)

	app.Post("/jwt", tokenHandler.Issue)

	// Properties
	app.Get("/properties", propertyHandler.List)
	app.Get("/properties/:id", propertyHandler.Get)
	app.Post("/properties", jwt, propertyHandler.Create)
	app.Patch("/properties/:id", propertyHandler.Replace)
	app.Patch("/propertiess/:id", propertyHandler.SetVerification)
	app.Delete("/properties/:id", propertyHandler.Delete)

	// Reviews
	app.Get("/reviews", reviewHandler.List)
	app.Get("/reviews/:id", reviewHandler.ListForProperty)
	app.Post("/reviews", jwt, reviewHandler.Create)
	app.Delete("/reviews/:id", jwt, reviewHandler.Delete)

	// Wishlist
	app.Post("/wishlist", jwt, wishlistHandler.Create)
	app.Get("/wishlist", jwt, wishlistHandler.List)
	app.Get("/wishlist/:id", jwt, wishlistHandler.Get)
	app.Patch("/wishlist/:id", wishlistHandler.Replace)
	app.Delete("/wishlist/:id", jwt, wishlistHandler.Delete)
	app.Get("/wishlistt", wishlistHandler.ListByAgent)
	app.Patch("/wishlistt/:id", wishlistHandler.UpdateStatus)
	app.Patch("/wishlistR/:id", wishlistHandler.SetStatus)

	// Users
	app.Post("/users", userHandler.Create)
	app.Get("/users", jwt, admin, userHandler.List)
	app.Get("/users/agent/:email", jwt, userHandler.AgentProbe)
	app.Get("/users/admin/:email", jwt, userHandler.AdminProbe)
	app.Patch("/users/admin/:id", jwt, admin, userHandler.PromoteAdmin)
	app.Patch("/users/agent/:id", jwt, userHandler.PromoteAgent)
	app.Patch("/users/agentt/:id", userHandler.DemoteFraud)
	app.Delete("/users/:id", jwt, admin, userHandler.Delete)

	// Payments
	app.Post("/create-payment-intent", jwt, paymentHandler.CreateIntent)
}
