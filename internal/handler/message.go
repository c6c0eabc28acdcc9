package handler

import (
	"github.com/hardikkaaccount/chat-app/internal/model"
	"github.com/hardikkaaccount/chat-app/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type MessageHandler struct {
	chatSvc *service.ChatService
}

func NewMessageHandler(chatSvc *service.ChatService) *MessageHandler {
	return &MessageHandler{chatSvc: chatSvc}
}

// List handles GET /api/messages/:groupId. History comes back oldest first;
// an unknown group is an empty history, matching what the polling client
// expects.
func (h *MessageHandler) List(c *fiber.Ctx) error {
	groupID, err := c.ParamsInt("groupId")
	if err != nil || groupID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "groupId must be a positive integer"})
	}

	msgs, err := h.chatSvc.ListMessages(c.Context(), int64(groupID))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(lo.Ternary(msgs == nil, []model.Message{}, msgs))
}

// Post handles POST /api/messages.
func (h *MessageHandler) Post(c *fiber.Ctx) error {
	var req model.PostMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "groupId, senderId and content are required"})
	}

	msg, err := h.chatSvc.PostMessage(c.Context(), &req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(msg)
}
