package handler

import (
	"github.com/hardikkaaccount/chat-app/internal/model"
	"github.com/hardikkaaccount/chat-app/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	chatSvc *service.ChatService
}

func NewAuthHandler(chatSvc *service.ChatService) *AuthHandler {
	return &AuthHandler{chatSvc: chatSvc}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req model.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "username, email and password are required"})
	}

	resp, err := h.chatSvc.Register(c.Context(), &req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(201).JSON(resp)
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req model.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "email and password are required"})
	}

	resp, err := h.chatSvc.Login(c.Context(), &req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(resp)
}

// Me handles GET /api/me for callers holding a session token.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(int64)
	if userID == 0 {
		return c.Status(401).JSON(fiber.Map{"error": "invalid or expired token"})
	}

	user, err := h.chatSvc.GetUser(c.Context(), userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(user)
}
