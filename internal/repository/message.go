package repository

import (
	"context"

	"github.com/hardikkaaccount/chat-app/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type MessageRepository struct {
	pool *pgxpool.Pool
}

func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{pool: pool}
}

// Insert appends a message to a group's ledger. The database assigns id and
// created_at; group and sender foreign keys are enforced by the store and
// surface as ErrForeignKey.
func (r *MessageRepository) Insert(ctx context.Context, groupID, senderID int64, content string) (*model.Message, error) {
	m := &model.Message{}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO messages (group_id, sender_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, group_id, sender_id, content, created_at
	`, groupID, senderID, content).Scan(
		&m.ID, &m.GroupID, &m.SenderID, &m.Content, &m.CreatedAt,
	)
	if err != nil {
		return nil, constraintError(err)
	}
	return m, nil
}

// ListByGroup returns a group's messages ascending by created_at, ties broken
// by id so insertion order is stable. The sender's username is joined in at
// read time; a LEFT JOIN keeps the read alive if a sender ever fails to
// resolve, reporting a null username instead.
func (r *MessageRepository) ListByGroup(ctx context.Context, groupID int64) ([]model.Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT m.id, m.group_id, m.sender_id, m.content, m.created_at, u.username
		FROM messages m
		LEFT JOIN users u ON m.sender_id = u.id
		WHERE m.group_id = $1
		ORDER BY m.created_at ASC, m.id ASC
	`, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.GroupID, &m.SenderID, &m.Content, &m.CreatedAt, &m.Username); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
