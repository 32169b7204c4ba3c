package handler

import (
	"go-catalog-api/internal/middleware"
	"go-catalog-api/internal/service"
	"go-catalog-api/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles customer authentication
// POST /auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req service.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, errBadRequest)
	}

	if err := validator.ValidateStruct(&req); err != nil {
		return writeError(c, err)
	}

	response, err := h.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(response)
}

// Me returns the profile of the authenticated customer
// GET /auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	profile, err := h.authService.Profile(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(profile)
}

// Health reports that the process is serving requests
// GET /health
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
