package careers

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic for job postings.
type Service interface {
	// ListPublicJobs returns active postings for the careers page
	ListPublicJobs(ctx context.Context) ([]JobPosting, error)

	// ListAllJobs returns every posting for the admin panel
	ListAllJobs(ctx context.Context) ([]JobPosting, error)

	GetJob(ctx context.Context, id uuid.UUID) (*JobPosting, error)
	CreateJob(ctx context.Context, req *CreateJobRequest) (*JobPosting, error)
	UpdateJob(ctx context.Context, id uuid.UUID, req *UpdateJobRequest) (*JobPosting, error)
	DeleteJob(ctx context.Context, id uuid.UUID) error
}
