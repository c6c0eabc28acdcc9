//go:generate go run go.uber.org/mock/mockgen -source=chat.go -destination=mocks/mock_stores.go -package=mocks
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hardikkaaccount/chat-app/internal/model"
	"github.com/hardikkaaccount/chat-app/internal/repository"

	"github.com/samber/lo"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUserExists         = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownReference   = errors.New("unknown group or user")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

type UserStore interface {
	Create(ctx context.Context, username, email, passwordHash string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error)
}

type GroupStore interface {
	List(ctx context.Context) ([]model.Group, error)
	Create(ctx context.Context, name, description string, createdBy int64) (*model.Group, error)
}

type MessageStore interface {
	Insert(ctx context.Context, groupID, senderID int64, content string) (*model.Message, error)
	ListByGroup(ctx context.Context, groupID int64) ([]model.Message, error)
}

// ChatService composes the three stores behind every API operation. It holds
// no per-request state; the stores are the only shared handles and each call
// is a single independent operation against the database.
type ChatService struct {
	users     UserStore
	groups    GroupStore
	messages  MessageStore
	jwtSecret []byte
	log       *slog.Logger
}

func NewChatService(users UserStore, groups GroupStore, messages MessageStore, jwtSecret string, log *slog.Logger) *ChatService {
	if log == nil {
		log = slog.Default()
	}
	return &ChatService{
		users:     users,
		groups:    groups,
		messages:  messages,
		jwtSecret: []byte(jwtSecret),
		log:       log,
	}
}

func (s *ChatService) ListGroups(ctx context.Context) ([]model.Group, error) {
	return s.groups.List(ctx)
}

// CreateGroup inserts the group, then posts an announcement message into it
// authored by the creator. The announcement is best-effort: its failure is
// logged and never fails the creation it trails.
func (s *ChatService) CreateGroup(ctx context.Context, req *model.CreateGroupRequest) (*model.Group, error) {
	group, err := s.groups.Create(ctx, strings.TrimSpace(req.Name), req.Description, req.CreatedBy)
	if err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, ErrUnknownReference
		}
		return nil, fmt.Errorf("create group: %w", err)
	}

	if _, err := s.messages.Insert(ctx, group.ID, group.CreatedBy, "Create group "+group.Name); err != nil {
		s.log.Warn("group announcement failed", "group_id", group.ID, "error", err)
	}

	return group, nil
}

// PostMessage appends to a group's ledger. Content that is empty after
// trimming is rejected before any store is touched. The response's username
// is echoed from the request, matching what the client already displays.
func (s *ChatService) PostMessage(ctx context.Context, req *model.PostMessageRequest) (*model.Message, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("%w: content must not be empty", ErrInvalidInput)
	}

	msg, err := s.messages.Insert(ctx, req.GroupID, req.SenderID, req.Content)
	if err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, ErrUnknownReference
		}
		return nil, fmt.Errorf("insert message: %w", err)
	}

	msg.Username = lo.ToPtr(req.Username)
	return msg, nil
}

// ListMessages returns a group's history ascending by created_at, enriched
// with each sender's username. An unknown group yields an empty history, not
// an error.
func (s *ChatService) ListMessages(ctx context.Context, groupID int64) ([]model.Message, error) {
	return s.messages.ListByGroup(ctx, groupID)
}
