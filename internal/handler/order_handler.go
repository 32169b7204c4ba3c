package handler

import (
	"go-catalog-api/internal/middleware"
	"go-catalog-api/internal/service"
	"go-catalog-api/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

// CreateOrder prices and stores a new order
// POST /orders/new
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req service.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, errBadRequest)
	}

	if err := validator.ValidateStruct(&req); err != nil {
		return writeError(c, err)
	}

	if _, err := h.service.CreateOrder(c.UserContext(), req, middleware.UserID(c)); err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Order created successfully"})
}
