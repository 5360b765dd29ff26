package careers

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for job postings.
type Repository interface {
	// ListJobs returns postings newest first. When activeOnly is true,
	// only active postings are returned (the public careers page).
	ListJobs(ctx context.Context, activeOnly bool) ([]JobPosting, error)

	// GetJob returns one posting.
	// Errors: ErrJobNotFound
	GetJob(ctx context.Context, id uuid.UUID) (*JobPosting, error)

	// CreateJob inserts a posting
	CreateJob(ctx context.Context, j *JobPosting) (*JobPosting, error)

	// UpdateJob saves a full edit.
	// Errors: ErrJobNotFound
	UpdateJob(ctx context.Context, j *JobPosting) (*JobPosting, error)

	// DeleteJob removes a posting.
	// Errors: ErrJobNotFound
	DeleteJob(ctx context.Context, id uuid.UUID) error
}
