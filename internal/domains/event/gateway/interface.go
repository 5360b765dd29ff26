package gateway

import "context"

// =====================================================
// GATEWAY INTERFACES
// =====================================================

// PaymentGateway interface for Stripe payment intent creation
type PaymentGateway interface {
	// CreatePaymentIntent creates a payment intent for a paid registration.
	// Amount is in minor units (cents).
	CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (*PaymentIntentResponse, error)
}

// WebinarGateway interface for Zoom webinar registration
type WebinarGateway interface {
	// RegisterAttendee adds an attendee to a webinar and returns the
	// registrant id Zoom assigns.
	RegisterAttendee(ctx context.Context, req WebinarRegistrationRequest) (*WebinarRegistrationResponse, error)
}

// =====================================================
// COMMON REQUEST/RESPONSE TYPES
// =====================================================

// PaymentIntentRequest request to create a Stripe payment intent
type PaymentIntentRequest struct {
	AmountCents int64             // price in minor units
	Currency    string            // e.g. "usd"
	Metadata    map[string]string // event_id, user_id for reconciliation
}

// PaymentIntentResponse response from the payment intent API
type PaymentIntentResponse struct {
	ID           string // pi_...
	ClientSecret string // handed to the front end to complete payment
}

// WebinarRegistrationRequest request to register a webinar attendee
type WebinarRegistrationRequest struct {
	WebinarID string
	Email     string
	FirstName string
	LastName  string
}

// WebinarRegistrationResponse response from the webinar registration API
type WebinarRegistrationResponse struct {
	RegistrantID string
	JoinURL      string
}
