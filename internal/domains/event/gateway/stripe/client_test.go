package stripe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edubright-backend/internal/domains/event/gateway"
)

func TestCreatePaymentIntent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_abc", r.Header.Get("Authorization"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "4999", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, "evt-1", r.PostForm.Get("metadata[event_id]"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret_xyz"}`))
	}))
	defer server.Close()

	client, err := NewClient(&Config{
		SecretKey: "sk_test_abc",
		APIURL:    server.URL,
		Currency:  "usd",
	})
	require.NoError(t, err)

	intent, err := client.CreatePaymentIntent(context.Background(), gateway.PaymentIntentRequest{
		AmountCents: 4999,
		Currency:    "usd",
		Metadata:    map[string]string{"event_id": "evt-1"},
	})
	require.NoError(t, err)

	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret_xyz", intent.ClientSecret)
}

func TestCreatePaymentIntent_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"message":"Your card was declined."}}`))
	}))
	defer server.Close()

	client, err := NewClient(&Config{SecretKey: "sk_test_abc", APIURL: server.URL})
	require.NoError(t, err)

	_, err = client.CreatePaymentIntent(context.Background(), gateway.PaymentIntentRequest{
		AmountCents: 100,
		Currency:    "usd",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Your card was declined.")
}

func TestNewClient_MissingKey(t *testing.T) {
	_, err := NewClient(&Config{APIURL: "https://api.stripe.com"})
	assert.Error(t, err)
}
