package service

import (
	"context"
	"testing"

	"github.com/hardikkaaccount/chat-app/internal/model"
	"github.com/hardikkaaccount/chat-app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestChatService_Register(t *testing.T) {
	t.Run("hashes the password and returns a token", func(t *testing.T) {
		svc, stores := newTestService(t)

		stores.users.EXPECT().
			FindByUsernameOrEmail(gomock.Any(), "alice", "alice@example.com").
			Return(nil, repository.ErrNotFound)
		stores.users.EXPECT().
			Create(gomock.Any(), "alice", "alice@example.com", gomock.Any()).
			DoAndReturn(func(_ context.Context, username, email, passwordHash string) (*model.User, error) {
				require.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("s3cret!")))
				return &model.User{ID: 1, Username: username, Email: email, PasswordHash: passwordHash}, nil
			})

		resp, err := svc.Register(context.Background(), &model.RegisterRequest{
			Username: "alice", Email: "Alice@Example.com ", Password: "s3cret!",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "alice", resp.Username)
		assert.Equal(t, "alice@example.com", resp.Email)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("duplicate found by pre-check", func(t *testing.T) {
		svc, stores := newTestService(t)

		stores.users.EXPECT().
			FindByUsernameOrEmail(gomock.Any(), "alice", "a2@x.com").
			Return(&model.User{ID: 1, Username: "alice"}, nil)

		_, err := svc.Register(context.Background(), &model.RegisterRequest{
			Username: "alice", Email: "a2@x.com", Password: "s3cret!",
		})
		assert.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("race lost at the store still reports a conflict", func(t *testing.T) {
		// The pre-check saw no user, but a concurrent registration won the
		// unique-index race. Exactly one caller gets the row.
		svc, stores := newTestService(t)

		stores.users.EXPECT().
			FindByUsernameOrEmail(gomock.Any(), "alice", "a1@x.com").
			Return(nil, repository.ErrNotFound)
		stores.users.EXPECT().
			Create(gomock.Any(), "alice", "a1@x.com", gomock.Any()).
			Return(nil, repository.ErrDuplicate)

		_, err := svc.Register(context.Background(), &model.RegisterRequest{
			Username: "alice", Email: "a1@x.com", Password: "s3cret!",
		})
		assert.ErrorIs(t, err, ErrUserExists)
	})
}

func TestChatService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &model.User{ID: 4, Username: "bob", Email: "bob@x.com", PasswordHash: string(hash)}

	t.Run("valid credentials", func(t *testing.T) {
		svc, stores := newTestService(t)
		stores.users.EXPECT().GetByEmail(gomock.Any(), "bob@x.com").Return(stored, nil)

		resp, err := svc.Login(context.Background(), &model.LoginRequest{
			Email: "Bob@X.com", Password: "correct-horse",
		})
		require.NoError(t, err)
		assert.Equal(t, "bob", resp.Username)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		svc, stores := newTestService(t)

		stores.users.EXPECT().GetByEmail(gomock.Any(), "bob@x.com").Return(stored, nil)
		_, errWrongPassword := svc.Login(context.Background(), &model.LoginRequest{
			Email: "bob@x.com", Password: "wrong",
		})

		stores.users.EXPECT().GetByEmail(gomock.Any(), "nobody@x.com").Return(nil, repository.ErrNotFound)
		_, errUnknownUser := svc.Login(context.Background(), &model.LoginRequest{
			Email: "nobody@x.com", Password: "whatever",
		})

		assert.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
		assert.ErrorIs(t, errUnknownUser, ErrInvalidCredentials)
		assert.Equal(t, errWrongPassword, errUnknownUser)
	})
}

func TestChatService_GetUser(t *testing.T) {
	svc, stores := newTestService(t)

	stores.users.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, repository.ErrNotFound)

	_, err := svc.GetUser(context.Background(), 9)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
