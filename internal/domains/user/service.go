package user

import (
	"context"

	"github.com/google/uuid"
)

// Service defines auth business logic.
type Service interface {
	// Register creates an account with the default user role.
	// Errors: ErrEmailTaken, validation errors
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)

	// Login verifies credentials and issues session tokens.
	// Failures collapse to a single ErrInvalidCredentials; callers never
	// learn whether the email or the password was wrong.
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)

	// Me returns the profile behind a session
	Me(ctx context.Context, userID uuid.UUID) (*User, error)
}
