package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event format values
const (
	FormatInPerson = "in-person"
	FormatOnline   = "online"
	FormatHybrid   = "hybrid"
)

// Registration status values
const (
	StatusPending         = "pending"
	StatusConfirmed       = "confirmed"
	StatusCancelled       = "cancelled"
	StatusAwaitingPayment = "awaiting_payment"
)

// Event is a workshop or info session. Price is zero for free events;
// paid events go through the Stripe payment intent flow on registration.
type Event struct {
	ID                   uuid.UUID       `json:"id" db:"id"`
	Title                string          `json:"title" db:"title"`
	Description          string          `json:"description" db:"description"`
	Date                 time.Time       `json:"date" db:"date"`
	Time                 string          `json:"time" db:"time"` // display text, e.g. "6:00 PM - 8:00 PM"
	Location             string          `json:"location" db:"location"`
	Price                decimal.Decimal `json:"price" db:"price"`
	MaxParticipants      *int            `json:"max_participants" db:"max_participants"`
	Format               string          `json:"format" db:"format"`
	ZoomWebinarID        *string         `json:"zoom_webinar_id" db:"zoom_webinar_id"`
	RegistrationDeadline *time.Time      `json:"registration_deadline" db:"registration_deadline"`
	CancellationPolicy   string          `json:"cancellation_policy" db:"cancellation_policy"`
	TagID                *uuid.UUID      `json:"tag_id" db:"tag_id"`
	CreatedAt            time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at" db:"updated_at"`

	// Joined from event_tags; nil when the event has no tag
	Tag *Tag `json:"tag,omitempty" db:"-"`
}

// IsFree reports whether registration skips the payment flow
func (e *Event) IsFree() bool {
	return e.Price.IsZero()
}

// PriceCents returns the price in minor units for the payment gateway
func (e *Event) PriceCents() int64 {
	return e.Price.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// Tag is an event category badge
type Tag struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Color     string    `json:"color" db:"color"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Registration links a user to an event, carrying the external ids
// collected during the registration orchestration.
type Registration struct {
	ID               uuid.UUID `json:"id" db:"id"`
	EventID          uuid.UUID `json:"event_id" db:"event_id"`
	UserID           uuid.UUID `json:"user_id" db:"user_id"`
	Status           string    `json:"status" db:"status"`
	StripePaymentID  *string   `json:"stripe_payment_id" db:"stripe_payment_id"`
	ZoomRegistrantID *string   `json:"zoom_registrant_id" db:"zoom_registrant_id"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}
