package repository

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/hardikkaaccount/chat-app/internal/database"
	"github.com/hardikkaaccount/chat-app/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/crypto/bcrypt"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("chatapp"),
		postgres.WithUsername("chatapp"),
		postgres.WithPassword("chatapp"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}
	defer func() {
		if err := container.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Printf("failed to get connection string: %v", err)
		return
	}

	testPool, err = pgxpool.New(ctx, connStr)
	if err != nil {
		log.Fatalf("failed to open pool: %v", err)
	}

	if err := database.RunMigrations(ctx, testPool); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	code := m.Run()

	testPool.Close()

	os.Exit(code)
}

func truncateAll(t *testing.T) {
	t.Cleanup(func() {
		_, err := testPool.Exec(context.Background(),
			`TRUNCATE TABLE messages, groups, users RESTART IDENTITY CASCADE`)
		require.NoError(t, err)
	})
}

func mustCreateUser(t *testing.T, username, email string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)
	user, err := NewUserRepository(testPool).Create(context.Background(), username, email, string(hash))
	require.NoError(t, err)
	return user
}

func Test_UserRepository_DuplicateInsert(t *testing.T) {
	truncateAll(t)

	mustCreateUser(t, "alice", "alice@x.com")

	repo := NewUserRepository(testPool)
	_, err := repo.Create(context.Background(), "alice", "a2@x.com", "hash")
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = repo.Create(context.Background(), "alice2", "alice@x.com", "hash")
	assert.ErrorIs(t, err, ErrDuplicate)
}

func Test_UserRepository_ConcurrentRegistration(t *testing.T) {
	truncateAll(t)

	repo := NewUserRepository(testPool)
	emails := []string{"a1@x.com", "a2@x.com"}
	errs := make([]error, len(emails))

	var wg sync.WaitGroup
	for i, email := range emails {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = repo.Create(context.Background(), "alice", email, "hash")
		}()
	}
	wg.Wait()

	var conflicts, successes int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		default:
			require.ErrorIs(t, err, ErrDuplicate)
			conflicts++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)

	var count int
	require.NoError(t, testPool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM users WHERE username = 'alice'`).Scan(&count))
	assert.Equal(t, 1, count)
}

func Test_UserRepository_Lookups(t *testing.T) {
	truncateAll(t)

	created := mustCreateUser(t, "bob", "bob@x.com")
	repo := NewUserRepository(testPool)

	byEmail, err := repo.GetByEmail(context.Background(), "bob@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	_, err = repo.GetByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, ErrNotFound)

	// exact match only, no normalization
	_, err = repo.FindByUsernameOrEmail(context.Background(), "BOB", "none@x.com")
	assert.ErrorIs(t, err, ErrNotFound)

	found, err := repo.FindByUsernameOrEmail(context.Background(), "bob", "other@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func Test_GroupRepository_Create(t *testing.T) {
	truncateAll(t)

	user := mustCreateUser(t, "carol", "carol@x.com")
	repo := NewGroupRepository(testPool)

	group, err := repo.Create(context.Background(), "General", "chit-chat", user.ID)
	require.NoError(t, err)
	assert.NotZero(t, group.ID)
	assert.Equal(t, user.ID, group.CreatedBy)
	assert.False(t, group.CreatedAt.IsZero())

	_, err = repo.Create(context.Background(), "Orphan", "", user.ID+1000)
	assert.ErrorIs(t, err, ErrForeignKey)

	groups, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "General", groups[0].Name)
}

func Test_MessageRepository_RoundTrip(t *testing.T) {
	truncateAll(t)

	user := mustCreateUser(t, "dave", "dave@x.com")
	group, err := NewGroupRepository(testPool).Create(context.Background(), "General", "", user.ID)
	require.NoError(t, err)

	repo := NewMessageRepository(testPool)
	posted, err := repo.Insert(context.Background(), group.ID, user.ID, "hello")
	require.NoError(t, err)
	assert.NotZero(t, posted.ID)
	assert.False(t, posted.CreatedAt.IsZero())

	msgs, err := repo.ListByGroup(context.Background(), group.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "hello", msgs[0].Content)
	assert.Equal(t, user.ID, msgs[0].SenderID)
	require.NotNil(t, msgs[0].Username)
	assert.Equal(t, "dave", *msgs[0].Username)
}

func Test_MessageRepository_ForeignKeys(t *testing.T) {
	truncateAll(t)

	user := mustCreateUser(t, "erin", "erin@x.com")
	group, err := NewGroupRepository(testPool).Create(context.Background(), "General", "", user.ID)
	require.NoError(t, err)

	repo := NewMessageRepository(testPool)

	_, err = repo.Insert(context.Background(), group.ID+1000, user.ID, "hi")
	assert.ErrorIs(t, err, ErrForeignKey)

	_, err = repo.Insert(context.Background(), group.ID, user.ID+1000, "hi")
	assert.ErrorIs(t, err, ErrForeignKey)

	msgs, err := repo.ListByGroup(context.Background(), group.ID)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func Test_MessageRepository_StableOrdering(t *testing.T) {
	truncateAll(t)

	user := mustCreateUser(t, "frank", "frank@x.com")
	group, err := NewGroupRepository(testPool).Create(context.Background(), "General", "", user.ID)
	require.NoError(t, err)

	repo := NewMessageRepository(testPool)
	for _, content := range []string{"first", "second", "third"} {
		_, err := repo.Insert(context.Background(), group.ID, user.ID, content)
		require.NoError(t, err)
	}

	// Collapse every created_at to one instant: ordering must fall back to
	// insertion (id) order.
	_, err = testPool.Exec(context.Background(),
		`UPDATE messages SET created_at = $1 WHERE group_id = $2`,
		time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), group.ID)
	require.NoError(t, err)

	msgs, err := repo.ListByGroup(context.Background(), group.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "first", msgs[0].Content)
	assert.Equal(t, "second", msgs[1].Content)
	assert.Equal(t, "third", msgs[2].Content)
	for i := 1; i < len(msgs); i++ {
		assert.False(t, msgs[i].CreatedAt.Before(msgs[i-1].CreatedAt))
	}
}
