package contact

import "context"

// Repository defines data access for contact submissions.
type Repository interface {
	// CreateSubmission persists a validated submission
	CreateSubmission(ctx context.Context, s *Submission) (*Submission, error)

	// ListSubmissions returns submissions newest first for the admin inbox
	ListSubmissions(ctx context.Context) ([]Submission, error)
}
