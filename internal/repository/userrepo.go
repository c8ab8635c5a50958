// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/Antonmish822/SHORT-HACKX5/internal/model"
)

// UserRepository provides account storage.
type UserRepository interface {
	// Create inserts a new user; ErrContactTaken if the contact exists.
	Create(ctx context.Context, u *model.User) error
	// GetByID loads a user by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	// GetByContact loads a user by normalized contact.
	GetByContact(ctx context.Context, contact string) (*model.User, error)
	// UpdateInterests replaces the user's interests string.
	UpdateInterests(ctx context.Context, id uuid.UUID, interests string) error
	// SetRole updates the role of the user with the given contact.
	SetRole(ctx context.Context, contact, role string) error
	// List returns all users ordered by creation time.
	List(ctx context.Context) ([]model.User, error)
}
