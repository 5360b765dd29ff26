package careers

import (
	"time"

	"github.com/google/uuid"
)

// Job type values
const (
	TypeFullTime = "Full-time"
	TypePartTime = "Part-time"
	TypeContract = "Contract"
)

// Job status values
const (
	StatusActive = "active"
	StatusFilled = "filled"
	StatusDraft  = "draft"
)

// JobPosting is one opening on the careers page. The public listing shows
// active postings only; drafts and filled roles are admin-only.
type JobPosting struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Type         string    `json:"type" db:"type"`
	Location     string    `json:"location" db:"location"`
	Description  string    `json:"description" db:"description"`
	Requirements []string  `json:"requirements" db:"requirements"`
	SalaryRange  *string   `json:"salary_range" db:"salary_range"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
