package contact

import (
	"time"

	"github.com/google/uuid"
)

// Submission is one contact-form entry, kept for the admin inbox.
type Submission struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Email      string    `json:"email" db:"email"`
	Phone      string    `json:"phone" db:"phone"`
	Location   string    `json:"location" db:"location"`
	GradeLevel string    `json:"grade_level" db:"grade_level"`
	Message    string    `json:"message" db:"message"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
