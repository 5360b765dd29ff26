package event

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateEventRequest - POST /admin/events
type CreateEventRequest struct {
	Title                string          `json:"title" binding:"required"`
	Description          string          `json:"description"`
	Date                 time.Time       `json:"date" binding:"required"`
	Time                 string          `json:"time"`
	Location             string          `json:"location"`
	Price                decimal.Decimal `json:"price"`
	MaxParticipants      *int            `json:"max_participants"`
	Format               string          `json:"format" binding:"required"`
	ZoomWebinarID        *string         `json:"zoom_webinar_id"`
	RegistrationDeadline *time.Time      `json:"registration_deadline"`
	CancellationPolicy   string          `json:"cancellation_policy"`
	TagID                *uuid.UUID      `json:"tag_id"`
}

func (r CreateEventRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 500),
		),
		validation.Field(&r.Format,
			validation.Required.Error("format is required"),
			validation.In(FormatInPerson, FormatOnline, FormatHybrid).
				Error("format must be in-person, online or hybrid"),
		),
		validation.Field(&r.Price,
			validation.By(func(value interface{}) error {
				if p, ok := value.(decimal.Decimal); ok && p.IsNegative() {
					return ErrInvalidPrice
				}
				return nil
			}),
		),
		validation.Field(&r.MaxParticipants,
			validation.By(func(value interface{}) error {
				if n, ok := value.(*int); ok && n != nil && *n < 0 {
					return ErrInvalidCapacity
				}
				return nil
			}),
		),
	)
}

// UpdateEventRequest - PUT /admin/events/:id
type UpdateEventRequest struct {
	Title                string          `json:"title" binding:"required"`
	Description          string          `json:"description"`
	Date                 time.Time       `json:"date" binding:"required"`
	Time                 string          `json:"time"`
	Location             string          `json:"location"`
	Price                decimal.Decimal `json:"price"`
	MaxParticipants      *int            `json:"max_participants"`
	Format               string          `json:"format" binding:"required"`
	ZoomWebinarID        *string         `json:"zoom_webinar_id"`
	RegistrationDeadline *time.Time      `json:"registration_deadline"`
	CancellationPolicy   string          `json:"cancellation_policy"`
	TagID                *uuid.UUID      `json:"tag_id"`
}

func (r UpdateEventRequest) Validate() error {
	return CreateEventRequest(r).Validate()
}

// CreateTagRequest - POST /admin/events/tags
type CreateTagRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

func (r CreateTagRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100),
		),
	)
}

// RegisterRequest - POST /api/v1/events/register
// User identity comes from the JWT. Name is the display name passed to
// the webinar registration; the email local part is used when absent.
type RegisterRequest struct {
	EventID uuid.UUID `json:"event_id" binding:"required"`
	Name    string    `json:"name"`
}

// PaymentIntentInfo is returned for paid events so the front end can
// complete the Stripe payment with the client secret.
type PaymentIntentInfo struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// RegisterResponse - 200 body of the register endpoint
type RegisterResponse struct {
	Registration  *Registration      `json:"registration"`
	PaymentIntent *PaymentIntentInfo `json:"payment_intent,omitempty"`
}

// EventListResponse wraps the date-ordered list
type EventListResponse struct {
	Events []Event `json:"events"`
	Total  int     `json:"total"`
}

// ToEntity converts CreateEventRequest to an Event entity
func (r *CreateEventRequest) ToEntity() *Event {
	return &Event{
		Title:                r.Title,
		Description:          r.Description,
		Date:                 r.Date,
		Time:                 r.Time,
		Location:             r.Location,
		Price:                r.Price,
		MaxParticipants:      r.MaxParticipants,
		Format:               r.Format,
		ZoomWebinarID:        r.ZoomWebinarID,
		RegistrationDeadline: r.RegistrationDeadline,
		CancellationPolicy:   r.CancellationPolicy,
		TagID:                r.TagID,
	}
}

// ApplyToEntity applies UpdateEventRequest onto an existing event
func (r *UpdateEventRequest) ApplyToEntity(e *Event) {
	e.Title = r.Title
	e.Description = r.Description
	e.Date = r.Date
	e.Time = r.Time
	e.Location = r.Location
	e.Price = r.Price
	e.MaxParticipants = r.MaxParticipants
	e.Format = r.Format
	e.ZoomWebinarID = r.ZoomWebinarID
	e.RegistrationDeadline = r.RegistrationDeadline
	e.CancellationPolicy = r.CancellationPolicy
	e.TagID = r.TagID
}
