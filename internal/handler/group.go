package handler

import (
	"github.com/hardikkaaccount/chat-app/internal/model"
	"github.com/hardikkaaccount/chat-app/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type GroupHandler struct {
	chatSvc *service.ChatService
}

func NewGroupHandler(chatSvc *service.ChatService) *GroupHandler {
	return &GroupHandler{chatSvc: chatSvc}
}

// List handles GET /api/groups.
func (h *GroupHandler) List(c *fiber.Ctx) error {
	groups, err := h.chatSvc.ListGroups(c.Context())
	if err != nil {
		return serviceError(c, err)
	}

	// [] rather than null when there are no groups
	return c.JSON(lo.Ternary(groups == nil, []model.Group{}, groups))
}

// Create handles POST /api/groups.
func (h *GroupHandler) Create(c *fiber.Ctx) error {
	var req model.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "name and created_by are required"})
	}

	group, err := h.chatSvc.CreateGroup(c.Context(), &req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(201).JSON(group)
}
