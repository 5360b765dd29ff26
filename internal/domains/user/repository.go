package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for user accounts.
type Repository interface {
	// CreateUser inserts an account.
	// Errors: ErrEmailTaken
	CreateUser(ctx context.Context, u *User) (*User, error)

	// GetByEmail returns the account for a login attempt.
	// Errors: ErrUserNotFound
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByID returns the account behind a session.
	// Errors: ErrUserNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
}
