package event

import (
	"context"

	"github.com/google/uuid"
)

// Attendee identifies the registering user, taken from the JWT claims.
type Attendee struct {
	UserID uuid.UUID
	Email  string
	Name   string
}

// Service defines business logic for events and registration.
type Service interface {
	ListEvents(ctx context.Context) ([]Event, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*Event, error)
	CreateEvent(ctx context.Context, req *CreateEventRequest) (*Event, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, req *UpdateEventRequest) (*Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error

	ListTags(ctx context.Context) ([]Tag, error)
	CreateTag(ctx context.Context, req *CreateTagRequest) (*Tag, error)

	// DeleteTag removes a tag after verifying no event references it.
	// Errors: ErrTagNotFound, ErrTagInUse
	DeleteTag(ctx context.Context, id uuid.UUID) error

	// ListRegistrations returns an event's registrations for the admin panel
	ListRegistrations(ctx context.Context, eventID uuid.UUID) ([]Registration, error)

	// Register runs the registration orchestration:
	//   1. Look up the event; unknown id aborts with no side effects.
	//   2. Register the webinar attendee if the event has a zoom_webinar_id.
	//      Runs before payment so a failed webinar call cannot strand a
	//      payment intent.
	//   3. Create a payment intent if the event is paid.
	//   4. Insert the registration row with the collected external ids;
	//      status is awaiting_payment for paid events, confirmed otherwise.
	// A confirmation email task is enqueued best-effort on success.
	Register(ctx context.Context, attendee Attendee, eventID uuid.UUID) (*RegisterResponse, error)
}
