package user

import (
	"time"

	"github.com/google/uuid"
)

// Role values
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account. Admin accounts unlock the dashboard routes.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Name         string    `json:"name" db:"name"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
