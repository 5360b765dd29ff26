package zoom

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edubright-backend/internal/domains/event/gateway"
)

func TestRegisterAttendee(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/webinars/987654321/registrants", r.URL.Path)
		assert.Equal(t, "Bearer zoom-token", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "parent@example.com", body["email"])
		assert.Equal(t, "Jamie", body["first_name"])
		assert.Equal(t, "Rivera", body["last_name"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"registrant_id":"reg_abc","join_url":"https://zoom.us/j/1"}`))
	}))
	defer server.Close()

	client, err := NewClient(&Config{APIURL: server.URL, JWTToken: "zoom-token"})
	require.NoError(t, err)

	resp, err := client.RegisterAttendee(context.Background(), gateway.WebinarRegistrationRequest{
		WebinarID: "987654321",
		Email:     "parent@example.com",
		FirstName: "Jamie",
		LastName:  "Rivera",
	})
	require.NoError(t, err)

	assert.Equal(t, "reg_abc", resp.RegistrantID)
	assert.Equal(t, "https://zoom.us/j/1", resp.JoinURL)
}

func TestRegisterAttendee_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Webinar not found."}`))
	}))
	defer server.Close()

	client, err := NewClient(&Config{APIURL: server.URL, JWTToken: "zoom-token"})
	require.NoError(t, err)

	_, err = client.RegisterAttendee(context.Background(), gateway.WebinarRegistrationRequest{
		WebinarID: "000",
		Email:     "a@b.com",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Webinar not found.")
}

func TestNewClient_MissingToken(t *testing.T) {
	_, err := NewClient(&Config{APIURL: "https://api.zoom.us"})
	assert.Error(t, err)
}
