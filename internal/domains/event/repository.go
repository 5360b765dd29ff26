package event

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for events, event tags and registrations.
type Repository interface {
	// ListEvents returns all events ordered by date asc, tag joined
	ListEvents(ctx context.Context) ([]Event, error)

	// GetEvent returns one event with tag joined.
	// Errors: ErrEventNotFound
	GetEvent(ctx context.Context, id uuid.UUID) (*Event, error)

	// CreateEvent inserts an event.
	// Errors: ErrTagNotFound (FK)
	CreateEvent(ctx context.Context, e *Event) (*Event, error)

	// UpdateEvent saves a full event edit.
	// Errors: ErrEventNotFound, ErrTagNotFound
	UpdateEvent(ctx context.Context, e *Event) (*Event, error)

	// DeleteEvent removes an event and its registrations in one transaction.
	// Errors: ErrEventNotFound
	DeleteEvent(ctx context.Context, id uuid.UUID) error

	// ListTags returns all event tags ordered by name
	ListTags(ctx context.Context) ([]Tag, error)

	// CreateTag inserts a tag
	CreateTag(ctx context.Context, t *Tag) (*Tag, error)

	// DeleteTag removes a tag.
	// Errors: ErrTagNotFound, ErrTagInUse
	DeleteTag(ctx context.Context, id uuid.UUID) error

	// CountTagReferences returns how many events carry the tag
	CountTagReferences(ctx context.Context, tagID uuid.UUID) (int, error)

	// CreateRegistration inserts a registration row.
	// Errors: ErrAlreadyRegistered (unique event_id+user_id)
	CreateRegistration(ctx context.Context, r *Registration) (*Registration, error)

	// ListRegistrations returns registrations for an event, newest first
	ListRegistrations(ctx context.Context, eventID uuid.UUID) ([]Registration, error)
}
