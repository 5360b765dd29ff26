package zoom

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"edubright-backend/internal/domains/event/gateway"
)

// =====================================================
// ZOOM CLIENT IMPLEMENTATION
// =====================================================

type Client struct {
	config     *Config
	httpClient *http.Client
}

// NewClient creates new Zoom client
func NewClient(config *Config) (gateway.WebinarGateway, error) {
	if config.JWTToken == "" {
		return nil, fmt.Errorf("zoom token is not configured")
	}
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// RegisterAttendee adds an attendee to a webinar via the Zoom API
func (c *Client) RegisterAttendee(
	ctx context.Context,
	req gateway.WebinarRegistrationRequest,
) (*gateway.WebinarRegistrationResponse, error) {
	// Step 1: Build request body
	requestBody := map[string]interface{}{
		"email":      req.Email,
		"first_name": req.FirstName,
		"last_name":  req.LastName,
	}

	bodyJSON, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	// Step 2: Call Zoom API
	httpReq, err := http.NewRequestWithContext(ctx, "POST",
		c.config.GetRegistrantsURL(req.WebinarID), bytes.NewReader(bodyJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.config.JWTToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call Zoom API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// Step 3: Parse response. Zoom returns 201 on success.
	if resp.StatusCode != http.StatusCreated {
		var errResp struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(bodyBytes, &errResp); err == nil && errResp.Message != "" {
			return nil, fmt.Errorf("Zoom API error: %s", errResp.Message)
		}
		return nil, fmt.Errorf("Zoom API returned status %d", resp.StatusCode)
	}

	var registrant struct {
		RegistrantID string `json:"registrant_id"`
		JoinURL      string `json:"join_url"`
	}
	if err := json.Unmarshal(bodyBytes, &registrant); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &gateway.WebinarRegistrationResponse{
		RegistrantID: registrant.RegistrantID,
		JoinURL:      registrant.JoinURL,
	}, nil
}
