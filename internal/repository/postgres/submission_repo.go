package postgres

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/Antonmish822/SHORT-HACKX5/internal/errs"
	"github.com/Antonmish822/SHORT-HACKX5/internal/model"
)

// SubmissionRepo implements SubmissionRepository using PostgreSQL.
type SubmissionRepo struct{ db *DB }

// NewSubmissionRepo constructs a submission repository.
func NewSubmissionRepo(db *DB) *SubmissionRepo { return &SubmissionRepo{db: db} }

// Submit inserts the submission and awards reward points in one transaction.
// The user row is locked first so concurrent submissions for the same user
// serialize; the (user_id, quest_id) unique constraint turns a duplicate into
// ErrAlreadySubmitted with nothing persisted.
func (r *SubmissionRepo) Submit(
	ctx context.Context, sub *model.Submission, reward int,
) (result *model.Submission, err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = e
			result = nil
		}
	}()

	const sel = `SELECT points FROM users WHERE id=$1 FOR UPDATE`
	var points int
	if err = tx.QueryRow(ctx, sel, sub.UserID).Scan(&points); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	const ins = `
INSERT INTO quest_submissions (id, user_id, quest_id, status, metadata)
VALUES ($1, $2, $3, $4, $5)
RETURNING submitted_at`
	created := *sub
	if err = tx.QueryRow(ctx, ins, sub.ID, sub.UserID, sub.QuestID, string(sub.Status), sub.Metadata).
		Scan(&created.SubmittedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, errs.ErrAlreadySubmitted
		}
		return nil, err
	}

	points += reward
	const upd = `UPDATE users SET points=$2, level=$3 WHERE id=$1`
	if _, err = tx.Exec(ctx, upd, sub.UserID, points, string(model.LevelFor(points))); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByUserAndQuest selects the submission for (user, quest).
func (r *SubmissionRepo) GetByUserAndQuest(ctx context.Context, userID, questID uuid.UUID) (*model.Submission, error) {
	const q = `
SELECT id, user_id, quest_id, status, metadata, submitted_at
FROM quest_submissions WHERE user_id=$1 AND quest_id=$2`
	row := r.db.Pool.QueryRow(ctx, q, userID, questID)
	var s model.Submission
	var status string
	if err := row.Scan(&s.ID, &s.UserID, &s.QuestID, &status, &s.Metadata, &s.SubmittedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	s.Status = model.SubmissionStatus(status)
	return &s, nil
}

// CountCompleted returns the number of completed submissions for the user.
func (r *SubmissionRepo) CountCompleted(ctx context.Context, userID uuid.UUID) (int, error) {
	const q = `SELECT COUNT(*) FROM quest_submissions WHERE user_id=$1 AND status='completed'`
	var n int
	if err := r.db.Pool.QueryRow(ctx, q, userID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
