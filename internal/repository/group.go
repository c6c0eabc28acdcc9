package repository

import (
	"context"

	"github.com/hardikkaaccount/chat-app/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type GroupRepository struct {
	pool *pgxpool.Pool
}

func NewGroupRepository(pool *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{pool: pool}
}

// List returns every group. No pagination; the set is expected to stay small.
func (r *GroupRepository) List(ctx context.Context) ([]model.Group, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, created_by, created_at
		FROM groups
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []model.Group
	for rows.Next() {
		var g model.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.CreatedBy, &g.CreatedAt); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// Create inserts a group. The created_by foreign key is enforced here, not
// by the caller; a dangling creator surfaces as ErrForeignKey.
func (r *GroupRepository) Create(ctx context.Context, name, description string, createdBy int64) (*model.Group, error) {
	g := &model.Group{}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO groups (name, description, created_by)
		VALUES ($1, $2, $3)
		RETURNING id, name, description, created_by, created_at
	`, name, description, createdBy).Scan(
		&g.ID, &g.Name, &g.Description, &g.CreatedBy, &g.CreatedAt,
	)
	if err != nil {
		return nil, constraintError(err)
	}
	return g, nil
}
