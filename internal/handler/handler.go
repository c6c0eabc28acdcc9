package handler

import (
	"errors"

	"github.com/hardikkaaccount/chat-app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// serviceError maps the service taxonomy to HTTP statuses. Anything outside
// the taxonomy is an internal failure; driver errors never reach the body.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrUserExists):
		return c.Status(400).JSON(fiber.Map{"error": "User already exists with this username or email"})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.Status(401).JSON(fiber.Map{"error": "Invalid email or password"})
	case errors.Is(err, service.ErrUnknownReference):
		return c.Status(400).JSON(fiber.Map{"error": "unknown group or user"})
	case errors.Is(err, service.ErrInvalidToken):
		return c.Status(401).JSON(fiber.Map{"error": "invalid or expired token"})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}
}
