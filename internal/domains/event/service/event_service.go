package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"edubright-backend/internal/domains/event"
	"edubright-backend/internal/domains/event/gateway"
	"edubright-backend/internal/shared"
	"edubright-backend/pkg/logger"
)

// Enqueuer is the slice of asynq.Client the service needs.
// Satisfied by *asynq.Client, mockable in tests.
type Enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type eventService struct {
	repo     event.Repository
	payments gateway.PaymentGateway
	webinars gateway.WebinarGateway
	enqueuer Enqueuer
	currency string
}

// NewEventService wires the registration orchestration. payments, webinars
// and enqueuer may be nil when the corresponding credential is not
// configured; the affected step is then reported as a setup error (paid
// events, webinar events) or skipped (confirmation email).
func NewEventService(
	repo event.Repository,
	payments gateway.PaymentGateway,
	webinars gateway.WebinarGateway,
	enqueuer Enqueuer,
	currency string,
) event.Service {
	return &eventService{
		repo:     repo,
		payments: payments,
		webinars: webinars,
		enqueuer: enqueuer,
		currency: currency,
	}
}

func (s *eventService) ListEvents(ctx context.Context) ([]event.Event, error) {
	return s.repo.ListEvents(ctx)
}

func (s *eventService) GetEvent(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	return s.repo.GetEvent(ctx, id)
}

func (s *eventService) CreateEvent(ctx context.Context, req *event.CreateEventRequest) (*event.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.CreateEvent(ctx, req.ToEntity())
}

func (s *eventService) UpdateEvent(ctx context.Context, id uuid.UUID, req *event.UpdateEventRequest) (*event.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyToEntity(existing)

	return s.repo.UpdateEvent(ctx, existing)
}

func (s *eventService) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteEvent(ctx, id)
}

func (s *eventService) ListTags(ctx context.Context) ([]event.Tag, error) {
	return s.repo.ListTags(ctx)
}

func (s *eventService) CreateTag(ctx context.Context, req *event.CreateTagRequest) (*event.Tag, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.CreateTag(ctx, &event.Tag{Name: req.Name, Color: req.Color})
}

func (s *eventService) DeleteTag(ctx context.Context, id uuid.UUID) error {
	refs, err := s.repo.CountTagReferences(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return event.ErrTagInUse
	}

	return s.repo.DeleteTag(ctx, id)
}

func (s *eventService) ListRegistrations(ctx context.Context, eventID uuid.UUID) ([]event.Registration, error) {
	return s.repo.ListRegistrations(ctx, eventID)
}

// Register runs the registration orchestration. Step order matters:
// the webinar registrant is created before the payment intent so a
// failed webinar call cannot strand an intent the user never pays.
// Every failure is terminal for the whole action, no retries.
func (s *eventService) Register(ctx context.Context, attendee event.Attendee, eventID uuid.UUID) (*event.RegisterResponse, error) {
	// Step 1: Look up the event. Unknown id aborts before any side effect.
	evt, err := s.repo.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	// Step 2: Zoom registrant for webinar events
	var zoomRegistrantID *string
	if evt.ZoomWebinarID != nil && *evt.ZoomWebinarID != "" {
		if s.webinars == nil {
			return nil, event.ErrWebinarRegistration
		}

		firstName, lastName := splitName(attendee.Name)
		reg, err := s.webinars.RegisterAttendee(ctx, gateway.WebinarRegistrationRequest{
			WebinarID: *evt.ZoomWebinarID,
			Email:     attendee.Email,
			FirstName: firstName,
			LastName:  lastName,
		})
		if err != nil {
			logger.Error("zoom registration failed", err)
			return nil, event.ErrWebinarRegistration
		}
		zoomRegistrantID = &reg.RegistrantID
	}

	// Step 3: Payment intent for paid events
	var stripePaymentID *string
	var intentInfo *event.PaymentIntentInfo
	if !evt.IsFree() {
		if s.payments == nil {
			return nil, event.ErrPaymentSetup
		}

		intent, err := s.payments.CreatePaymentIntent(ctx, gateway.PaymentIntentRequest{
			AmountCents: evt.PriceCents(),
			Currency:    s.currency,
			Metadata: map[string]string{
				"event_id": evt.ID.String(),
				"user_id":  attendee.UserID.String(),
			},
		})
		if err != nil {
			logger.Error("payment intent creation failed", err)
			return nil, event.ErrPaymentSetup
		}
		stripePaymentID = &intent.ID
		intentInfo = &event.PaymentIntentInfo{
			ID:           intent.ID,
			ClientSecret: intent.ClientSecret,
		}
	}

	// Step 4: Insert the registration row
	status := event.StatusConfirmed
	if !evt.IsFree() {
		status = event.StatusAwaitingPayment
	}

	created, err := s.repo.CreateRegistration(ctx, &event.Registration{
		EventID:          evt.ID,
		UserID:           attendee.UserID,
		Status:           status,
		StripePaymentID:  stripePaymentID,
		ZoomRegistrantID: zoomRegistrantID,
	})
	if err != nil {
		return nil, err
	}

	s.enqueueConfirmation(created, evt, attendee)

	return &event.RegisterResponse{
		Registration:  created,
		PaymentIntent: intentInfo,
	}, nil
}

// enqueueConfirmation hands the confirmation email to the worker.
// Best-effort: a queue failure never fails the registration.
func (s *eventService) enqueueConfirmation(reg *event.Registration, evt *event.Event, attendee event.Attendee) {
	if s.enqueuer == nil {
		return
	}

	payload, err := json.Marshal(shared.RegistrationConfirmationPayload{
		RegistrationID: reg.ID.String(),
		Email:          attendee.Email,
		EventTitle:     evt.Title,
		EventDate:      evt.Date.Format("2006-01-02"),
		EventTime:      evt.Time,
		Location:       evt.Location,
		Status:         reg.Status,
	})
	if err != nil {
		logger.Error("failed to marshal confirmation payload", err)
		return
	}

	if _, err := s.enqueuer.Enqueue(asynq.NewTask(shared.TypeRegistrationConfirmation, payload)); err != nil {
		logger.Error("failed to enqueue confirmation email", err)
	}
}

func splitName(full string) (string, string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "Attendee", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
