package event

import "errors"

var (
	// Validation errors
	ErrInvalidTitle    = errors.New("event title is required")
	ErrInvalidPrice    = errors.New("event price must be zero or positive")
	ErrInvalidFormat   = errors.New("event format must be in-person, online or hybrid")
	ErrInvalidCapacity = errors.New("max participants must be zero or positive")

	// Business rule errors
	ErrEventNotFound    = errors.New("event not found")
	ErrTagNotFound      = errors.New("event tag not found")
	ErrTagInUse         = errors.New("cannot delete a tag that is assigned to events")
	ErrAlreadyRegistered = errors.New("you are already registered for this event")

	// Orchestration errors, surfaced as a single banner string
	ErrWebinarRegistration = errors.New("could not register you for the webinar")
	ErrPaymentSetup        = errors.New("could not set up the payment for this event")
)

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrEventNotFound), errors.Is(err, ErrTagNotFound):
		return 404
	case errors.Is(err, ErrTagInUse), errors.Is(err, ErrAlreadyRegistered):
		return 409
	case errors.Is(err, ErrInvalidTitle), errors.Is(err, ErrInvalidPrice),
		errors.Is(err, ErrInvalidFormat), errors.Is(err, ErrInvalidCapacity),
		errors.Is(err, ErrWebinarRegistration), errors.Is(err, ErrPaymentSetup):
		return 400
	default:
		return 500
	}
}
