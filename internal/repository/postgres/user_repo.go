package postgres

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/Antonmish822/SHORT-HACKX5/internal/errs"
	"github.com/Antonmish822/SHORT-HACKX5/internal/model"
)

// UserRepo implements UserRepository using PostgreSQL.
type UserRepo struct{ db *DB }

// NewUserRepo constructs a user repository.
func NewUserRepo(db *DB) *UserRepo { return &UserRepo{db: db} }

const userColumns = `id, contact, pwd_hash, consent, points, level, interests, role, created_at`

// Create inserts a new user row. A duplicate contact maps to ErrContactTaken.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	const q = `
INSERT INTO users (id, contact, pwd_hash, consent, points, level, interests, role)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Pool.Exec(ctx, q, u.ID, u.Contact, u.PwdHash, u.Consent, u.Points, string(u.Level), u.Interests, u.Role)
	if isUniqueViolation(err) {
		return errs.ErrContactTaken
	}
	return err
}

// GetByID selects a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return r.scanOne(r.db.Pool.QueryRow(ctx, q, id))
}

// GetByContact selects a user by contact.
func (r *UserRepo) GetByContact(ctx context.Context, contact string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE contact=$1`
	return r.scanOne(r.db.Pool.QueryRow(ctx, q, contact))
}

func (r *UserRepo) scanOne(row pgx.Row) (*model.User, error) {
	var u model.User
	var level string
	if err := row.Scan(&u.ID, &u.Contact, &u.PwdHash, &u.Consent, &u.Points, &level, &u.Interests, &u.Role, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	u.Level = model.Level(level)
	return &u, nil
}

// UpdateInterests replaces the interests string for the user.
func (r *UserRepo) UpdateInterests(ctx context.Context, id uuid.UUID, interests string) error {
	const q = `UPDATE users SET interests=$2 WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id, interests)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// SetRole updates the role of the user with the given contact.
func (r *UserRepo) SetRole(ctx context.Context, contact, role string) error {
	const q = `UPDATE users SET role=$2 WHERE contact=$1`
	tag, err := r.db.Pool.Exec(ctx, q, contact, role)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// List returns all users ordered by creation time.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users ORDER BY created_at`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		var level string
		if err := rows.Scan(&u.ID, &u.Contact, &u.PwdHash, &u.Consent, &u.Points, &level, &u.Interests, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		u.Level = model.Level(level)
		out = append(out, u)
	}
	return out, rows.Err()
}
