package handler

import (
	"go-catalog-api/internal/middleware"
	"go-catalog-api/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the HTTP API on router. The websocket route is
// mounted separately by the server.
func RegisterRoutes(router fiber.Router, catalog *CatalogHandler, orders *OrderHandler, auth *AuthHandler, userRepo repository.UserRepository) {
	optionalAuth := middleware.OptionalAuth()

	router.Get("/health", Health)

	// Auth
	router.Post("/auth/login", auth.Login)
	router.Get("/auth/me", middleware.RequireAuth(userRepo), auth.Me)

	// Catalog, priced for the token's user when no userId is given
	router.Get("/products", optionalAuth, catalog.GetProducts)
	router.Get("/products/:id", optionalAuth, catalog.GetProduct)
	router.Get("/category/:id/products", optionalAuth, catalog.GetCategoryProducts)
	router.Get("/filtered-products", optionalAuth, catalog.GetFilteredProducts)

	// Orders
	router.Post("/orders/new", optionalAuth, orders.CreateOrder)
}
