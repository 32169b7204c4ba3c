package handler

import (
	"errors"
	"log"

	"go-catalog-api/internal/service"
	"go-catalog-api/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

const msgInvalidRequest = "Invalid request data."

// writeError maps service and validation errors to HTTP responses
func writeError(c *fiber.Ctx, err error) error {
	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": verr.Errors})
	}

	var nf *service.NotFoundError
	if errors.As(err, &nf) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": nf.Error()})
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}

	switch {
	case errors.Is(err, service.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	log.Printf("Error: %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}

var errBadRequest = fiber.NewError(fiber.StatusBadRequest, msgInvalidRequest)

func validationError(field, message string) error {
	verr := validator.NewValidationError()
	verr.Add(field, message)
	return verr
}

// pathID parses a positive integer route parameter
func pathID(c *fiber.Ctx, param, field string) (uint, error) {
	n, ok := validator.ParsePositiveInt(c.Params(param))
	if !ok {
		return 0, validationError(field, validator.MsgPositiveInt)
	}
	return uint(n), nil
}
