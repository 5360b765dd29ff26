package contact

import "context"

// Service defines business logic for the contact form.
type Service interface {
	// Submit validates the form, persists a row and enqueues the admin
	// notification task (best-effort).
	Submit(ctx context.Context, req *SubmitRequest) (*Submission, error)

	// ListSubmissions returns the admin inbox, newest first
	ListSubmissions(ctx context.Context) ([]Submission, error)
}
