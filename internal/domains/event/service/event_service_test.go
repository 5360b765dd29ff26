package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edubright-backend/internal/domains/event"
	"edubright-backend/internal/domains/event/gateway"
)

type mockRepository struct {
	getEventFunc           func(ctx context.Context, id uuid.UUID) (*event.Event, error)
	createRegistrationFunc func(ctx context.Context, r *event.Registration) (*event.Registration, error)
	createRegistrations    []*event.Registration
}

func (m *mockRepository) ListEvents(ctx context.Context) ([]event.Event, error) { return nil, nil }

func (m *mockRepository) GetEvent(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	return m.getEventFunc(ctx, id)
}

func (m *mockRepository) CreateEvent(ctx context.Context, e *event.Event) (*event.Event, error) {
	return e, nil
}

func (m *mockRepository) UpdateEvent(ctx context.Context, e *event.Event) (*event.Event, error) {
	return e, nil
}

func (m *mockRepository) DeleteEvent(ctx context.Context, id uuid.UUID) error { return nil }

func (m *mockRepository) ListTags(ctx context.Context) ([]event.Tag, error) { return nil, nil }

func (m *mockRepository) CreateTag(ctx context.Context, t *event.Tag) (*event.Tag, error) {
	return t, nil
}

func (m *mockRepository) DeleteTag(ctx context.Context, id uuid.UUID) error { return nil }

func (m *mockRepository) CountTagReferences(ctx context.Context, tagID uuid.UUID) (int, error) {
	return 0, nil
}

func (m *mockRepository) CreateRegistration(ctx context.Context, r *event.Registration) (*event.Registration, error) {
	m.createRegistrations = append(m.createRegistrations, r)
	if m.createRegistrationFunc != nil {
		return m.createRegistrationFunc(ctx, r)
	}
	r.ID = uuid.New()
	r.CreatedAt = time.Now()
	return r, nil
}

func (m *mockRepository) ListRegistrations(ctx context.Context, eventID uuid.UUID) ([]event.Registration, error) {
	return nil, nil
}

type mockPayments struct {
	createFunc func(ctx context.Context, req gateway.PaymentIntentRequest) (*gateway.PaymentIntentResponse, error)
	calls      []gateway.PaymentIntentRequest
}

func (m *mockPayments) CreatePaymentIntent(ctx context.Context, req gateway.PaymentIntentRequest) (*gateway.PaymentIntentResponse, error) {
	m.calls = append(m.calls, req)
	return m.createFunc(ctx, req)
}

type mockWebinars struct {
	registerFunc func(ctx context.Context, req gateway.WebinarRegistrationRequest) (*gateway.WebinarRegistrationResponse, error)
	calls        []gateway.WebinarRegistrationRequest
}

func (m *mockWebinars) RegisterAttendee(ctx context.Context, req gateway.WebinarRegistrationRequest) (*gateway.WebinarRegistrationResponse, error) {
	m.calls = append(m.calls, req)
	return m.registerFunc(ctx, req)
}

type mockEnqueuer struct {
	tasks []*asynq.Task
}

func (m *mockEnqueuer) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	m.tasks = append(m.tasks, task)
	return &asynq.TaskInfo{}, nil
}

func testAttendee() event.Attendee {
	return event.Attendee{
		UserID: uuid.New(),
		Email:  "parent@example.com",
		Name:   "Jamie Rivera",
	}
}

func freeEvent() *event.Event {
	return &event.Event{
		ID:     uuid.New(),
		Title:  "College essay workshop",
		Date:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		Price:  decimal.Zero,
		Format: event.FormatInPerson,
	}
}

func paidWebinarEvent(price string, webinarID string) *event.Event {
	return &event.Event{
		ID:            uuid.New(),
		Title:         "SAT bootcamp",
		Date:          time.Date(2026, 11, 5, 0, 0, 0, 0, time.UTC),
		Price:         decimal.RequireFromString(price),
		Format:        event.FormatOnline,
		ZoomWebinarID: &webinarID,
	}
}

func TestRegister_FreeEvent(t *testing.T) {
	evt := freeEvent()
	repo := &mockRepository{
		getEventFunc: func(ctx context.Context, id uuid.UUID) (*event.Event, error) {
			return evt, nil
		},
	}
	payments := &mockPayments{}
	enq := &mockEnqueuer{}

	svc := NewEventService(repo, payments, nil, enq, "usd")
	result, err := svc.Register(context.Background(), testAttendee(), evt.ID)
	require.NoError(t, err)

	assert.Equal(t, event.StatusConfirmed, result.Registration.Status)
	assert.Nil(t, result.Registration.StripePaymentID)
	assert.Nil(t, result.PaymentIntent)
	// free events never touch the payment gateway
	assert.Empty(t, payments.calls)
	// confirmation email enqueued
	require.Len(t, enq.tasks, 1)
}

func TestRegister_PaidEvent(t *testing.T) {
	evt := paidWebinarEvent("49.99", "")
	evt.ZoomWebinarID = nil

	repo := &mockRepository{
		getEventFunc: func(ctx context.Context, id uuid.UUID) (*event.Event, error) {
			return evt, nil
		},
	}
	payments := &mockPayments{
		createFunc: func(ctx context.Context, req gateway.PaymentIntentRequest) (*gateway.PaymentIntentResponse, error) {
			return &gateway.PaymentIntentResponse{ID: "pi_123", ClientSecret: "pi_123_secret"}, nil
		},
	}

	svc := NewEventService(repo, payments, nil, nil, "usd")
	result, err := svc.Register(context.Background(), testAttendee(), evt.ID)
	require.NoError(t, err)

	assert.Equal(t, event.StatusAwaitingPayment, result.Registration.Status)
	require.NotNil(t, result.Registration.StripePaymentID)
	assert.Equal(t, "pi_123", *result.Registration.StripePaymentID)
	require.NotNil(t, result.PaymentIntent)
	assert.Equal(t, "pi_123_secret", result.PaymentIntent.ClientSecret)

	// $49.99 becomes 4999 minor units
	require.Len(t, payments.calls, 1)
	assert.Equal(t, int64(4999), payments.calls[0].AmountCents)
	assert.Equal(t, "usd", payments.calls[0].Currency)
	assert.Equal(t, evt.ID.String(), payments.calls[0].Metadata["event_id"])
}

func TestRegister_WebinarRunsBeforePayment(t *testing.T) {
	evt := paidWebinarEvent("25.00", "987654321")

	var order []string
	repo := &mockRepository{
		getEventFunc: func(ctx context.Context, id uuid.UUID) (*event.Event, error) {
			return evt, nil
		},
	}
	payments := &mockPayments{
		createFunc: func(ctx context.Context, req gateway.PaymentIntentRequest) (*gateway.PaymentIntentResponse, error) {
			order = append(order, "payment")
			return &gateway.PaymentIntentResponse{ID: "pi_9", ClientSecret: "sec"}, nil
		},
	}
	webinars := &mockWebinars{
		registerFunc: func(ctx context.Context, req gateway.WebinarRegistrationRequest) (*gateway.WebinarRegistrationResponse, error) {
			order = append(order, "zoom")
			return &gateway.WebinarRegistrationResponse{RegistrantID: "reg_1"}, nil
		},
	}

	svc := NewEventService(repo, payments, webinars, nil, "usd")
	result, err := svc.Register(context.Background(), testAttendee(), evt.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{"zoom", "payment"}, order)
	require.NotNil(t, result.Registration.ZoomRegistrantID)
	assert.Equal(t, "reg_1", *result.Registration.ZoomRegistrantID)

	require.Len(t, webinars.calls, 1)
	assert.Equal(t, "987654321", webinars.calls[0].WebinarID)
	assert.Equal(t, "Jamie", webinars.calls[0].FirstName)
	assert.Equal(t, "Rivera", webinars.calls[0].LastName)
}

func TestRegister_WebinarFailureSkipsPayment(t *testing.T) {
	evt := paidWebinarEvent("25.00", "987654321")

	repo := &mockRepository{
		getEventFunc: func(ctx context.Context, id uuid.UUID) (*event.Event, error) {
			return evt, nil
		},
	}
	payments := &mockPayments{}
	webinars := &mockWebinars{
		registerFunc: func(ctx context.Context, req gateway.WebinarRegistrationRequest) (*gateway.WebinarRegistrationResponse, error) {
			return nil, assert.AnError
		},
	}

	svc := NewEventService(repo, payments, webinars, nil, "usd")
	_, err := svc.Register(context.Background(), testAttendee(), evt.ID)

	assert.ErrorIs(t, err, event.ErrWebinarRegistration)
	// the failed webinar call must not strand a payment intent
	assert.Empty(t, payments.calls)
	assert.Empty(t, repo.createRegistrations)
}

func TestRegister_UnknownEventHasNoSideEffects(t *testing.T) {
	repo := &mockRepository{
		getEventFunc: func(ctx context.Context, id uuid.UUID) (*event.Event, error) {
			return nil, event.ErrEventNotFound
		},
	}
	payments := &mockPayments{}
	webinars := &mockWebinars{}
	enq := &mockEnqueuer{}

	svc := NewEventService(repo, payments, webinars, enq, "usd")
	_, err := svc.Register(context.Background(), testAttendee(), uuid.New())

	assert.ErrorIs(t, err, event.ErrEventNotFound)
	assert.Empty(t, payments.calls)
	assert.Empty(t, webinars.calls)
	assert.Empty(t, repo.createRegistrations)
	assert.Empty(t, enq.tasks)
}

func TestRegister_PaymentFailureAbortsInsert(t *testing.T) {
	evt := paidWebinarEvent("10.00", "")
	evt.ZoomWebinarID = nil

	repo := &mockRepository{
		getEventFunc: func(ctx context.Context, id uuid.UUID) (*event.Event, error) {
			return evt, nil
		},
	}
	payments := &mockPayments{
		createFunc: func(ctx context.Context, req gateway.PaymentIntentRequest) (*gateway.PaymentIntentResponse, error) {
			return nil, assert.AnError
		},
	}

	svc := NewEventService(repo, payments, nil, nil, "usd")
	_, err := svc.Register(context.Background(), testAttendee(), evt.ID)

	assert.ErrorIs(t, err, event.ErrPaymentSetup)
	assert.Empty(t, repo.createRegistrations)
}

func TestRegister_DuplicateRegistration(t *testing.T) {
	evt := freeEvent()
	repo := &mockRepository{
		getEventFunc: func(ctx context.Context, id uuid.UUID) (*event.Event, error) {
			return evt, nil
		},
		createRegistrationFunc: func(ctx context.Context, r *event.Registration) (*event.Registration, error) {
			return nil, event.ErrAlreadyRegistered
		},
	}

	svc := NewEventService(repo, nil, nil, nil, "usd")
	_, err := svc.Register(context.Background(), testAttendee(), evt.ID)
	assert.ErrorIs(t, err, event.ErrAlreadyRegistered)
}

func TestCreateEvent_RejectsNegativePrice(t *testing.T) {
	svc := NewEventService(&mockRepository{}, nil, nil, nil, "usd")

	_, err := svc.CreateEvent(context.Background(), &event.CreateEventRequest{
		Title:  "Bad event",
		Date:   time.Now(),
		Format: event.FormatOnline,
		Price:  decimal.RequireFromString("-1"),
	})
	assert.Error(t, err)
}

func TestCreateEvent_RejectsUnknownFormat(t *testing.T) {
	svc := NewEventService(&mockRepository{}, nil, nil, nil, "usd")

	_, err := svc.CreateEvent(context.Background(), &event.CreateEventRequest{
		Title:  "Bad event",
		Date:   time.Now(),
		Format: "metaverse",
	})
	assert.Error(t, err)
}

func TestPriceCents(t *testing.T) {
	cases := []struct {
		price string
		cents int64
	}{
		{"0", 0},
		{"10", 1000},
		{"49.99", 4999},
		{"0.5", 50},
	}

	for _, tc := range cases {
		e := event.Event{Price: decimal.RequireFromString(tc.price)}
		assert.Equal(t, tc.cents, e.PriceCents(), "price %s", tc.price)
	}
}
