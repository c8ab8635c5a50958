package postgres

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/Antonmish822/SHORT-HACKX5/internal/errs"
	"github.com/Antonmish822/SHORT-HACKX5/internal/model"
)

// QuestRepo implements QuestRepository using PostgreSQL.
type QuestRepo struct{ db *DB }

// NewQuestRepo constructs a quest repository.
func NewQuestRepo(db *DB) *QuestRepo { return &QuestRepo{db: db} }

// Create inserts a new quest row.
func (r *QuestRepo) Create(ctx context.Context, q *model.Quest) error {
	const sql = `
INSERT INTO quests (id, title, description, reward_points, quest_type)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Pool.Exec(ctx, sql, q.ID, q.Title, q.Description, q.RewardPoints, q.QuestType)
	return err
}

// GetByID selects a quest by ID.
func (r *QuestRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Quest, error) {
	const sql = `
SELECT id, title, description, reward_points, quest_type, created_at
FROM quests WHERE id=$1`
	row := r.db.Pool.QueryRow(ctx, sql, id)
	var q model.Quest
	if err := row.Scan(&q.ID, &q.Title, &q.Description, &q.RewardPoints, &q.QuestType, &q.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrQuestNotFound
		}
		return nil, err
	}
	return &q, nil
}

// List returns all quests ordered by creation time.
func (r *QuestRepo) List(ctx context.Context) ([]model.Quest, error) {
	const sql = `
SELECT id, title, description, reward_points, quest_type, created_at
FROM quests ORDER BY created_at`
	rows, err := r.db.Pool.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Quest
	for rows.Next() {
		var q model.Quest
		if err := rows.Scan(&q.ID, &q.Title, &q.Description, &q.RewardPoints, &q.QuestType, &q.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}
