package middleware

import (
	"strings"

	"go-catalog-api/internal/repository"
	"go-catalog-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

const localUserID = "user_id"

// RequireAuth validates the bearer token, checks the user still exists and
// sets the user info in context
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		claims, err := jwt.ValidateToken(tokenString)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		if _, err := userRepo.FindByID(c.UserContext(), claims.UserID); err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "User not found"})
		}

		setUser(c, claims)
		return c.Next()
	}
}

// OptionalAuth lets anonymous requests through but rejects a token that is
// present and invalid
func OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get(fiber.HeaderAuthorization) == "" {
			return c.Next()
		}

		tokenString, ok := bearerToken(c)
		if !ok {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(tokenString)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		setUser(c, claims)
		return c.Next()
	}
}

// UserID returns the authenticated user id, 0 for anonymous requests
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals(localUserID).(uint)
	return id
}

// Extract token from "Bearer <token>"
func bearerToken(c *fiber.Ctx) (string, bool) {
	parts := strings.Split(c.Get(fiber.HeaderAuthorization), " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func setUser(c *fiber.Ctx, claims *jwt.Claims) {
	c.Locals(localUserID, claims.UserID)
	c.Locals("user_email", claims.Email)
	c.Locals("user_name", claims.Name)
}
